package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer formats catalog messages for one UI language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T localizes key. Without a localizer the key itself is used as the
// format string so pages stay readable in tests and fallbacks.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	switch {
	case !ok:
		return ""
	case len(args) == 0:
		return format
	default:
		return fmt.Sprintf(format, args...)
	}
}
