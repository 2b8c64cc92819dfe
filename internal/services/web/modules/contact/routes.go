package contact

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact+"{$}", h.handleGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact+"{$}", h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact+"{rest...}", h.WriteNotFound)
}
