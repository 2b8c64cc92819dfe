package contact

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Option configures a contact module.
type Option func(*Module)

// WithGateway sets the contact gateway.
func WithGateway(g ContactGateway) Option {
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

// WithLogger sets the logger that records delivered messages.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// Module provides the public contact form.
type Module struct {
	gateway   ContactGateway
	base      modulehandler.Base
	flashMeta requestmeta.SchemePolicy
	logger    *zap.Logger
}

// New returns a contact module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Healthy reports whether messages can be delivered.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.logger)
	registerRoutes(mux, newHandlers(svc, m.base, m.flashMeta))
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
