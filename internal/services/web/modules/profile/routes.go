package profile

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile+"{$}", h.handleGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Profile+"{$}", h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile+"{rest...}", h.WriteNotFound)
}
