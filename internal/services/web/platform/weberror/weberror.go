// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound ||
		statusCode == http.StatusForbidden ||
		statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteErrorPage writes a localized error page for full-page and AJAX requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	var resolveLanguage func(*http.Request) string
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	err := pagerender.WritePage(w, r, resolver, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Body:       webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) && !httpx.IsAJAXRequest(r) {
		WriteErrorPage(w, r, statusCode, resolver)
		return
	}
	var resolveLanguage func(*http.Request) string
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
