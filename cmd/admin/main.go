// Package main provides administrative maintenance utilities.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	admincmd "github.com/louisbranch/translating.space/internal/cmd/admin"
	"github.com/louisbranch/translating.space/internal/platform/config"
)

func main() {
	cfg, err := admincmd.ParseConfig()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := admincmd.Run(ctx, cfg, os.Args[1:]); err != nil {
		config.Exitf("Error: %v", err)
	}
}
