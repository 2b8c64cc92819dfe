package templates

import (
	"context"

	"github.com/a-h/templ"
)

// LanguageTarget is the same unit in one language.
type LanguageTarget struct {
	LanguageName string
	LanguageCode string
	Direction    string
	Target       string
	Translated   bool
	Fuzzy        bool
	URL          string
}

// UnitDetailView describes the source string of a unit across languages.
type UnitDetailView struct {
	Source    string
	Context   string
	Location  string
	Comment   string
	Checksum  string
	Languages []LanguageTarget
	Loc       Localizer
}

// UnitDetail renders source information and every language of a unit.
func UnitDetail(view UnitDetailView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.open("dl", at("class", "unit-source"))
		detailRow(m, T(loc, "detail.source"), view.Source)
		detailRow(m, T(loc, "detail.context"), view.Context)
		detailRow(m, T(loc, "detail.location"), view.Location)
		detailRow(m, T(loc, "detail.comment"), view.Comment)
		detailRow(m, T(loc, "detail.checksum"), view.Checksum)
		m.close("dl")
		languageTargets(m, loc, view.Languages)
	})
}

func detailRow(m *markup, label, value string) {
	if value == "" {
		return
	}
	m.elem("dt", label)
	m.elem("dd", value)
}

// UnitTranslationsView lists the same unit in other languages.
type UnitTranslationsView struct {
	Languages []LanguageTarget
	Loc       Localizer
}

// UnitTranslations renders links to the unit in other languages.
func UnitTranslations(view UnitTranslationsView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if len(view.Languages) == 0 {
			m.elem("p", T(view.Loc, "detail.no_other_languages"), at("class", "empty"))
			return
		}
		languageTargets(m, view.Loc, view.Languages)
	})
}

func languageTargets(m *markup, loc Localizer, languages []LanguageTarget) {
	m.open("table", at("class", "translations"))
	m.open("tbody")
	for _, language := range languages {
		m.open("tr")
		m.open("th", at("scope", "row"))
		if language.URL != "" {
			m.elem("a", language.LanguageName, href(language.URL))
		} else {
			m.text(language.LanguageName)
		}
		m.close("th")
		switch {
		case language.Target == "":
			m.elem("td", T(loc, "detail.untranslated"), at("class", "untranslated"))
		case language.Fuzzy:
			m.elem("td", language.Target, at("class", "fuzzy"), at("lang", language.LanguageCode), at("dir", language.Direction))
		default:
			m.elem("td", language.Target, at("lang", language.LanguageCode), at("dir", language.Direction))
		}
		m.close("tr")
	}
	m.close("tbody")
	m.close("table")
}

// UnitChangesView lists recent changes of a unit.
type UnitChangesView struct {
	Rows    []ChangeRow
	MoreURL string
	Loc     Localizer
}

// UnitChanges renders recent unit changes with a link to the full listing.
func UnitChanges(view UnitChangesView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if len(view.Rows) == 0 {
			m.elem("p", T(view.Loc, "changes.empty"), at("class", "empty"))
		} else {
			changesTable(m, view.Loc, view.Rows)
		}
		if view.MoreURL != "" {
			m.elem("a", T(view.Loc, "changes.more"), href(view.MoreURL), at("class", "more"))
		}
	})
}
