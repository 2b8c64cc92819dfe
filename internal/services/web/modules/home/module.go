// Package home serves the project overview at the site root.
package home

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module renders the overview page and the site-wide not found page.
type Module struct {
	gateway OverviewGateway
	base    modulehandler.Base
}

// New returns a home module.
func New(gateway OverviewGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the overview can be loaded.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the root route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.gateway, m.base))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
