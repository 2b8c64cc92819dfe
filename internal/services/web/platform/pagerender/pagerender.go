// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// RequestResolver resolves viewer, session and language state from a request.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestSignedIn(r *http.Request) bool
	ResolveRequestLanguage(r *http.Request) string
	SiteTitle() string
}

// Page describes a module page response for both full-page and fragment flows.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// WritePage writes a page inside the site layout. AJAX requests receive the
// body only.
func WritePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsAJAXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
		return writeHTML(w, statusCode, buf.Bytes())
	}

	var resolveLanguage module.ResolveLanguage
	data := webtemplates.LayoutData{Title: page.Title}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		data.Viewer = resolver.ResolveRequestViewer(r)
		data.SignedIn = resolver.ResolveRequestSignedIn(r)
		data.SiteTitle = resolver.SiteTitle()
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	data.Loc = loc
	data.Lang = lang
	data.Toast = resolveFlashToast(w, r, loc)
	data.Languages = languageLinks(r, lang)
	if r != nil && r.URL != nil {
		data.CurrentPath = r.URL.Path
	}

	if err := webtemplates.Layout(data).Render(templ.WithChildren(ctx, body), &buf); err != nil {
		return err
	}
	return writeHTML(w, statusCode, buf.Bytes())
}

// WriteFragment writes a bare HTML fragment.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = templ.NopComponent
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	return writeHTML(w, statusCode, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(body)
	return err
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

func languageLinks(r *http.Request, lang string) []webtemplates.LanguageLink {
	options := webi18n.BuildLanguageOptions(r, lang)
	links := make([]webtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, webtemplates.LanguageLink{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return links
}
