// Package accounts provides sign-in and sign-out.
package accounts

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Option configures an accounts module.
type Option func(*Module)

// WithGateway sets the credential gateway.
func WithGateway(g AuthGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSessions sets the session cookie writer.
func WithSessions(s SessionWriter) Option {
	return func(m *Module) { m.sessions = s }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithSchemePolicy sets the request scheme policy for flash cookies.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.flashMeta = p }
}

// WithLogger sets the logger for sign-in events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// Module serves the login and logout routes.
type Module struct {
	gateway   AuthGateway
	sessions  SessionWriter
	base      modulehandler.Base
	flashMeta requestmeta.SchemePolicy
	logger    *zap.Logger
}

// New returns an accounts module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "accounts" }

// Healthy reports whether credentials can be checked and sessions issued.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.sessions == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires account route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.logger)
	registerRoutes(mux, newHandlers(svc, m.sessions, m.base, m.flashMeta))
	return module.Mount{Prefix: routepath.AccountsPrefix, Handler: mux}, nil
}
