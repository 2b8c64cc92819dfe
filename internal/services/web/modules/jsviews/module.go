// Package jsviews serves the fragments and JSON the editor scripts load.
package jsviews

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Option configures a jsviews module.
type Option func(*Module)

// WithGateway sets the unit gateway.
func WithGateway(g UnitGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithTranslator enables machine translation endpoints. Without one they
// answer 404.
func WithTranslator(t Translator) Option {
	return func(m *Module) { m.translator = t }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module serves the editor AJAX endpoints.
type Module struct {
	gateway    UnitGateway
	translator Translator
	base       modulehandler.Base
}

// New returns a jsviews module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "jsviews" }

// Healthy reports whether units can be loaded.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the AJAX routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.translator), m.base))
	return module.Mount{Prefix: routepath.JSPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.JSDetailPattern+"{$}", h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSTranslatePattern+"{$}", h.handleTranslate)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSTranslateAllPattern+"{$}", h.handleTranslateAll)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSUnitChangesPattern+"{$}", h.handleUnitChanges)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSUnitTranslationsPattern+"{$}", h.handleUnitTranslations)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSMTServices+"{$}", h.handleServices)
	mux.HandleFunc(http.MethodGet+" "+routepath.JSPrefix+"{rest...}", h.WriteNotFound)
}
