package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// TranslationProgress is one language of a subproject on the overview.
type TranslationProgress struct {
	LanguageName string
	LanguageCode string
	Translated   int
	Fuzzy        int
	Total        int
	Percent      int
	URL          string
}

// SubprojectOverview lists the translations of one subproject.
type SubprojectOverview struct {
	Name         string
	Translations []TranslationProgress
}

// ProjectOverview lists the subprojects of one project.
type ProjectOverview struct {
	Name        string
	Web         string
	Subprojects []SubprojectOverview
}

// HomeView is the project overview page.
type HomeView struct {
	Projects []ProjectOverview
	Loc      Localizer
}

// HomePage renders the project overview.
func HomePage(view HomeView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", T(loc, "home.title"))
		if len(view.Projects) == 0 {
			m.elem("p", T(loc, "home.empty"), at("class", "empty"))
			return
		}
		for _, project := range view.Projects {
			m.open("section", at("class", "project"))
			m.open("h2")
			m.text(project.Name)
			if project.Web != "" {
				m.raw(" ")
				m.elem("a", T(loc, "home.project_web"), href(project.Web), at("rel", "noopener"), at("class", "external"))
			}
			m.close("h2")
			for _, subproject := range project.Subprojects {
				m.elem("h3", subproject.Name)
				m.open("table", at("class", "progress"))
				m.open("thead")
				m.open("tr")
				m.elem("th", T(loc, "home.column.language"))
				m.elem("th", T(loc, "home.column.translated"))
				m.elem("th", T(loc, "home.column.progress"))
				m.close("tr")
				m.close("thead")
				m.open("tbody")
				for _, translation := range subproject.Translations {
					m.open("tr")
					m.open("td")
					m.elem("a", translation.LanguageName, href(translation.URL), at("lang", translation.LanguageCode))
					m.close("td")
					m.elem("td", T(loc, "home.units_translated", translation.Translated, translation.Total))
					m.open("td")
					m.elem("meter", strconv.Itoa(translation.Percent)+"%",
						at("min", "0"), at("max", "100"), at("value", strconv.Itoa(translation.Percent)))
					m.close("td")
					m.close("tr")
				}
				m.close("tbody")
				m.close("table")
			}
			m.close("section")
		}
	})
}

// ChangeRow is one audit entry in change listings.
type ChangeRow struct {
	When        string
	User        string
	Action      string
	Target      string
	Translation string
	URL         string
}

// ChangesView is one page of the change listing.
type ChangesView struct {
	Rows    []ChangeRow
	Page    int
	Total   int
	PrevURL string
	NextURL string
	Loc     Localizer
}

// ChangesPage renders the change listing.
func ChangesPage(view ChangesView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.elem("h1", T(loc, "changes.title"))
		if len(view.Rows) == 0 {
			m.elem("p", T(loc, "changes.empty"), at("class", "empty"))
		} else {
			changesTable(m, loc, view.Rows)
		}
		if view.PrevURL == "" && view.NextURL == "" {
			return
		}
		m.open("nav", at("class", "pager"))
		if view.PrevURL != "" {
			m.elem("a", T(loc, "changes.previous"), href(view.PrevURL), at("rel", "prev"))
		}
		m.elem("span", T(loc, "changes.page", view.Page))
		if view.NextURL != "" {
			m.elem("a", T(loc, "changes.next"), href(view.NextURL), at("rel", "next"))
		}
		m.close("nav")
	})
}

func changesTable(m *markup, loc Localizer, rows []ChangeRow) {
	m.open("table", at("class", "changes"))
	m.open("thead")
	m.open("tr")
	m.elem("th", T(loc, "changes.column.when"))
	m.elem("th", T(loc, "changes.column.user"))
	m.elem("th", T(loc, "changes.column.action"))
	m.elem("th", T(loc, "changes.column.translation"))
	m.close("tr")
	m.close("thead")
	m.open("tbody")
	for _, row := range rows {
		m.open("tr")
		m.elem("td", row.When)
		m.elem("td", row.User)
		m.open("td")
		m.text(row.Action)
		if row.Target != "" {
			m.elem("q", row.Target, at("class", "target"))
		}
		m.close("td")
		m.open("td")
		if row.URL != "" {
			m.elem("a", row.Translation, href(row.URL))
		} else {
			m.text(row.Translation)
		}
		m.close("td")
		m.close("tr")
	}
	m.close("tbody")
	m.close("table")
}
