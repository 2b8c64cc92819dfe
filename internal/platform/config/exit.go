package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitFunc             = os.Exit
	stderr     io.Writer = os.Stderr
)

// Exitf reports a fatal startup error on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(1)
}
