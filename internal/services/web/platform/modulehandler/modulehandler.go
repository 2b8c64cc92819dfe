// Package modulehandler provides a composable base for web module handlers.
//
// Feature modules share handler infrastructure for user resolution,
// localization, page rendering and error handling. Modules embed Base rather
// than duplicating that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/translating.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with no resolvers, as seen by an
// anonymous visitor.
func NewTestBase() Base {
	return Base{}
}

// ResolveRequestViewer resolves chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// ResolveRequestSignedIn reports whether the request carries a valid session.
func (b Base) ResolveRequestSignedIn(r *http.Request) bool {
	if r == nil {
		return false
	}
	if b.deps.ResolveSignedIn != nil {
		return b.deps.ResolveSignedIn(r)
	}
	return b.RequestUserID(r) > 0
}

// ResolveRequestLanguage returns the stored UI language of the request user.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.deps.ResolveLanguage == nil {
		return ""
	}
	return b.deps.ResolveLanguage(r)
}

// SiteTitle returns the configured site name.
func (b Base) SiteTitle() string {
	if b.deps.SiteTitle == "" {
		return webtemplates.DefaultSiteTitle
	}
	return b.deps.SiteTitle
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.deps.ResolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the site layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, b)
}

// RequestUserID returns the authenticated user id, or zero.
func (b Base) RequestUserID(r *http.Request) int64 {
	if r == nil || b.deps.ResolveUserID == nil {
		return 0
	}
	userID := b.deps.ResolveUserID(r)
	if userID < 0 {
		return 0
	}
	return userID
}

// WritePage renders a full page with the given title and body. AJAX
// requests receive the body only.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	if err := pagerender.WritePage(w, r, b, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Body:       body,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare HTML fragment.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}
