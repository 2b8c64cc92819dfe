// Package changes serves the public change history.
package changes

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Module lists recorded changes.
type Module struct {
	gateway ChangesGateway
	base    modulehandler.Base
}

// New returns a changes module.
func New(gateway ChangesGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "changes" }

// Healthy reports whether the history can be loaded.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the change listing route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.Changes, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Changes+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.Changes+"{rest...}", h.WriteNotFound)
}
