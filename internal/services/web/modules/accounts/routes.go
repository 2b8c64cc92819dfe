package accounts

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login+"{$}", h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login+"{$}", h.handleLoginPost)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout+"{$}", h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout+"{$}", httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountsPrefix+"{rest...}", h.WriteNotFound)
}
