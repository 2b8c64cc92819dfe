// Package dummy provides a fixed machine translation service for tests and
// local development.
package dummy

import (
	"context"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/mt"
)

// Service answers "Hello, world!" in Czech.
type Service struct{}

// New returns the dummy service.
func New() Service { return Service{} }

// ID returns the registry id.
func (Service) ID() string { return mt.ServiceDummy }

// Name returns the display name.
func (Service) Name() string { return "Dummy" }

// Supports accepts Czech and German targets.
func (Service) Supports(_, target string) bool {
	switch mt.BaseLanguage(target) {
	case "cs", "de":
		return true
	default:
		return false
	}
}

// Translate returns two fixed suggestions for "Hello, world!".
func (s Service) Translate(_ context.Context, req mt.Request) ([]mt.Suggestion, error) {
	if strings.TrimSpace(req.Text) != "Hello, world!" {
		return []mt.Suggestion{}, nil
	}
	return []mt.Suggestion{
		{Text: "Nazdar světe!", Quality: 100, Service: s.Name(), Source: req.Text},
		{Text: "Ahoj světe!", Quality: 100, Service: s.Name(), Source: req.Text},
	}, nil
}
