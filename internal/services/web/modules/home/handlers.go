package home

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway OverviewGateway
}

func newHandlers(gateway OverviewGateway, base modulehandler.Base) handlers {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return handlers{Base: base, gateway: gateway}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.gateway.ListTranslationOverviews(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	view := webtemplates.HomeView{Projects: groupOverviews(overviews, lang), Loc: loc}
	h.WritePage(w, r, webtemplates.T(loc, "home.title"), http.StatusOK, webtemplates.HomePage(view))
}

// groupOverviews nests the flat overview rows by project and subproject,
// keeping the store order.
func groupOverviews(overviews []storage.TranslationOverview, lang string) []webtemplates.ProjectOverview {
	var projects []webtemplates.ProjectOverview
	projectIndex := map[int64]int{}
	subprojectIndex := map[int64]int{}
	for _, overview := range overviews {
		p, sp := overview.Project, overview.Subproject
		pi, ok := projectIndex[p.ID]
		if !ok {
			pi = len(projects)
			projectIndex[p.ID] = pi
			projects = append(projects, webtemplates.ProjectOverview{Name: p.Name, Web: p.Web})
		}
		project := &projects[pi]
		si, ok := subprojectIndex[sp.ID]
		if !ok {
			si = len(project.Subprojects)
			subprojectIndex[sp.ID] = si
			project.Subprojects = append(project.Subprojects, webtemplates.SubprojectOverview{Name: sp.Name})
		}
		subproject := &project.Subprojects[si]
		subproject.Translations = append(subproject.Translations, webtemplates.TranslationProgress{
			LanguageName: webi18n.DisplayLanguage(overview.Language.Code, overview.Language.Name, lang),
			LanguageCode: overview.Language.Code,
			Translated:   overview.Translated,
			Fuzzy:        overview.Fuzzy,
			Total:        overview.Total,
			Percent:      overview.Percent(),
			URL:          routepath.Translate(p.Slug, sp.Slug, overview.Language.Code),
		})
	}
	return projects
}
