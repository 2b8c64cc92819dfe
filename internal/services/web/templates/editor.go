package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// EditorView is one unit opened in the translation editor.
type EditorView struct {
	ProjectName    string
	SubprojectName string
	LanguageName   string
	LanguageCode   string
	Direction      string
	UnitID         int64
	Checksum       string
	Source         string
	Target         string
	Fuzzy          bool
	Context        string
	Location       string
	Comment        string
	Position       int
	Total          int
	ActionURL      string
	PrevURL        string
	NextURL        string
	LoginURL       string
	CanEdit        bool
	Errors         FieldErrors

	// Editor AJAX endpoints.
	DetailURL       string
	TranslateURL    string
	TranslateAllURL string
	ChangesURL      string
	OthersURL       string
	ServicesURL     string

	Loc Localizer
}

// EditorPage renders the translation editor of one unit.
func EditorPage(view EditorView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", view.ProjectName+" / "+view.SubprojectName+" / "+view.LanguageName)
		if view.Total == 0 {
			m.elem("p", T(loc, "editor.empty"), at("class", "empty"))
			return
		}

		m.open("nav", at("class", "pager"))
		if view.PrevURL != "" {
			m.elem("a", T(loc, "editor.previous"), href(view.PrevURL), at("rel", "prev"))
		}
		m.elem("span", T(loc, "editor.position", view.Position, view.Total))
		if view.NextURL != "" {
			m.elem("a", T(loc, "editor.next"), href(view.NextURL), at("rel", "next"))
		}
		m.close("nav")

		m.open("div",
			at("class", "editor"),
			at("data-unit-id", strconv.FormatInt(view.UnitID, 10)),
			at("data-checksum", view.Checksum),
			at("data-detail-url", view.DetailURL),
			at("data-translate-url", view.TranslateURL),
			at("data-translate-all-url", view.TranslateAllURL),
			at("data-changes-url", view.ChangesURL),
			at("data-translations-url", view.OthersURL),
			at("data-services-url", view.ServicesURL),
		)
		m.elem("h2", T(loc, "editor.source"))
		m.elem("pre", view.Source, at("class", "source"))

		if view.CanEdit {
			m.open("form", at("method", "post"), at("action", view.ActionURL), at("class", "form"))
			m.formError(view.Errors)
			m.open("input", at("type", "hidden"), at("name", "checksum"), at("value", view.Checksum))
			m.elem("label", T(loc, "editor.target"), at("for", fieldID("target")))
			m.elem("textarea", view.Target,
				at("id", fieldID("target")),
				at("name", "target"),
				at("lang", view.LanguageCode),
				at("dir", view.Direction),
				at("rows", "4"),
			)
			m.open("label", at("class", "checkbox"))
			m.open("input", at("type", "checkbox"), at("name", "fuzzy"), at("value", "1"), flag("checked", view.Fuzzy))
			m.text(T(loc, "editor.fuzzy"))
			m.close("label")
			m.submit(T(loc, "editor.action.save"))
			m.close("form")
		} else {
			m.elem("h2", T(loc, "editor.target"))
			m.elem("pre", view.Target, at("class", "target"), at("lang", view.LanguageCode), at("dir", view.Direction))
			m.open("p", at("class", "hint"))
			m.elem("a", T(loc, "editor.sign_in_to_translate"), href(view.LoginURL))
			m.close("p")
		}

		m.open("section", at("class", "machine-translation"))
		m.elem("h2", T(loc, "editor.machine_translation"))
		m.elem("button", T(loc, "editor.action.suggest"), at("type", "button"), at("class", "button"), at("data-action", "translate-all"))
		m.open("ul", at("class", "suggestions"), at("aria-live", "polite"))
		m.close("ul")
		m.close("section")

		m.open("section", at("class", "unit-detail"), at("data-load", view.DetailURL))
		m.close("section")
		m.open("section", at("class", "unit-translations"), at("data-load", view.OthersURL))
		m.close("section")
		m.open("section", at("class", "unit-changes"), at("data-load", view.ChangesURL))
		m.close("section")
		m.close("div")
	})
}
