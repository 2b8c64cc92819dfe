package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

const (
	errorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	errorPageTitleForbiddenKey = "web.error.page_title_forbidden"
	errorPageTitleServerErrKey = "web.error.page_title_server_error"
	errorHeadingNotFoundKey    = "web.error.title_not_found"
	errorHeadingForbiddenKey   = "web.error.title_forbidden"
	errorHeadingServerErrKey   = "web.error.title_server_error"
	errorMessageNotFoundKey    = "web.error.message_not_found"
	errorMessageForbiddenKey   = "web.error.message_forbidden"
	errorMessageServerErrKey   = "web.error.message_server_error"
	errorBackHomeTextKey       = "web.error.action_back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, errorPageTitleNotFoundKey)
	case http.StatusForbidden:
		return T(loc, errorPageTitleForbiddenKey)
	}
	return T(loc, errorPageTitleServerErrKey)
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("section", at("class", "error-state"))
		m.elem("h1", errorHeading(statusCode, loc))
		m.elem("p", errorMessage(statusCode, loc))
		m.elem("a", T(loc, errorBackHomeTextKey), href(routepath.Root), at("class", "button"))
		m.close("section")
	})
}

func errorHeading(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, errorHeadingNotFoundKey)
	case http.StatusForbidden:
		return T(loc, errorHeadingForbiddenKey)
	}
	return T(loc, errorHeadingServerErrKey)
}

func errorMessage(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, errorMessageNotFoundKey)
	case http.StatusForbidden:
		return T(loc, errorMessageForbiddenKey)
	}
	return T(loc, errorMessageServerErrKey)
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusForbidden:
		return statusCode
	}
	return http.StatusInternalServerError
}
