// Package editor serves the per-unit translation editor.
package editor

import (
	"net/http"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Option configures an editor module.
type Option func(*Module)

// WithGateway sets the unit gateway.
func WithGateway(g EditorGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithSchemePolicy sets the request scheme policy for flash cookies.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.flashMeta = p }
}

// WithLogger sets the logger recording saved translations.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// WithClock overrides the time source stamping changes.
func WithClock(now func() time.Time) Option {
	return func(m *Module) { m.now = now }
}

// Module serves the editor. Reading is public; saving requires a session.
type Module struct {
	gateway   EditorGateway
	base      modulehandler.Base
	flashMeta requestmeta.SchemePolicy
	logger    *zap.Logger
	now       func() time.Time
}

// New returns an editor module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "editor" }

// Healthy reports whether units can be loaded.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the editor routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.logger, m.now)
	registerRoutes(mux, newHandlers(svc, m.base, m.flashMeta))
	return module.Mount{Prefix: routepath.TranslatePrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.TranslatePattern+"{$}", h.handleGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.TranslatePattern+"{$}", h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.TranslatePrefix+"{rest...}", h.WriteNotFound)
}
