package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// DefaultSiteTitle names the site when no title is configured.
const DefaultSiteTitle = "translating.space"

// Toast is a one-time notice shown at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// LanguageLink is one entry of the UI language switcher.
type LanguageLink struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LayoutData carries the page chrome shared by every full page.
type LayoutData struct {
	Title       string
	SiteTitle   string
	Lang        string
	CurrentPath string
	SignedIn    bool
	Viewer      module.Viewer
	Toast       *Toast
	Languages   []LanguageLink
	Loc         Localizer
}

// Layout renders the document shell around the children carried in ctx.
func Layout(data LayoutData) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		site := strings.TrimSpace(data.SiteTitle)
		if site == "" {
			site = DefaultSiteTitle
		}
		lang := strings.TrimSpace(data.Lang)
		if lang == "" {
			lang = "en"
		}
		title := site
		if t := strings.TrimSpace(data.Title); t != "" {
			title = t + " @ " + site
		}

		m.raw("<!DOCTYPE html>")
		m.open("html", at("lang", lang))
		m.open("head")
		m.open("meta", at("charset", "utf-8"))
		m.open("meta", at("name", "viewport"), at("content", "width=device-width, initial-scale=1"))
		m.elem("title", title)
		m.open("link", at("rel", "stylesheet"), href(routepath.Static+"style.css"))
		m.open("script", at("src", routepath.Static+"editor.js"), flag("defer", true))
		m.close("script")
		m.close("head")

		m.open("body")
		navigation(m, data, site)
		if data.Toast != nil && strings.TrimSpace(data.Toast.Message) != "" {
			m.elem("div", data.Toast.Message, at("class", "toast toast-"+data.Toast.Kind), at("role", "status"))
		}
		m.open("main", at("id", "main"))
		m.children(ctx)
		m.close("main")
		footer(m, data)
		m.close("body")
		m.close("html")
	})
}

func navigation(m *markup, data LayoutData, site string) {
	m.open("header", at("class", "site-header"))
	m.open("nav")
	m.elem("a", site, href(routepath.Root), at("class", "brand"))
	navLink(m, data, routepath.Changes, T(data.Loc, "nav.changes"))
	navLink(m, data, routepath.Contact, T(data.Loc, "nav.contact"))
	if data.SignedIn {
		name := strings.TrimSpace(data.Viewer.DisplayName)
		if name == "" {
			name = data.Viewer.Username
		}
		profileURL := data.Viewer.ProfileURL
		if profileURL == "" {
			profileURL = routepath.Profile
		}
		navLink(m, data, profileURL, name)
		m.open("form", at("method", "post"), at("action", routepath.Logout), at("class", "inline"))
		m.elem("button", T(data.Loc, "nav.logout"), at("type", "submit"))
		m.close("form")
	} else {
		navLink(m, data, routepath.LoginWithNext(data.CurrentPath), T(data.Loc, "nav.login"))
	}
	m.close("nav")
	m.close("header")
}

func navLink(m *markup, data LayoutData, url, label string) {
	current := strings.TrimSpace(data.CurrentPath) == url
	if current {
		m.elem("a", label, href(url), at("aria-current", "page"))
		return
	}
	m.elem("a", label, href(url))
}

func footer(m *markup, data LayoutData) {
	m.open("footer", at("class", "site-footer"))
	if len(data.Languages) > 0 {
		m.open("ul", at("class", "languages"), at("aria-label", T(data.Loc, "nav.language")))
		for _, option := range data.Languages {
			m.open("li")
			if option.Active {
				m.elem("strong", option.Label, at("lang", option.Tag))
			} else {
				m.elem("a", option.Label, href(option.URL), at("lang", option.Tag), at("hreflang", option.Tag))
			}
			m.close("li")
		}
		m.close("ul")
	}
	m.close("footer")
}
