package jsviews

import (
	"net/http"
	"strconv"

	"github.com/louisbranch/translating.space/internal/services/web/platform/changeview"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// unitID parses the unit_id path value; malformed ids read as zero.
func unitID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("unit_id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.detail(httpx.RequestContext(r), r.PathValue("project"), r.PathValue("subproject"), r.PathValue("checksum"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	first := units[0].Unit
	h.WriteFragment(w, r, webtemplates.UnitDetail(webtemplates.UnitDetailView{
		Source:    first.Source,
		Context:   first.Context,
		Location:  first.Location,
		Comment:   first.Comment,
		Checksum:  first.Checksum,
		Languages: languageTargets(units, lang),
		Loc:       loc,
	}))
}

func (h handlers) handleUnitTranslations(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.siblings(httpx.RequestContext(r), unitID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, webtemplates.UnitTranslations(webtemplates.UnitTranslationsView{
		Languages: languageTargets(units, lang),
		Loc:       loc,
	}))
}

func (h handlers) handleUnitChanges(w http.ResponseWriter, r *http.Request) {
	detail, changes, err := h.service.recentChanges(httpx.RequestContext(r), unitID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	more := routepath.ChangesWithFilter(routepath.ChangesFilter{
		Project:    detail.Project.Slug,
		Subproject: detail.Subproject.Slug,
		Language:   detail.Language.Code,
	})
	h.WriteFragment(w, r, webtemplates.UnitChanges(webtemplates.UnitChangesView{
		Rows:    changeview.Rows(changes, loc, lang),
		MoreURL: more,
		Loc:     loc,
	}))
}

func (h handlers) handleTranslate(w http.ResponseWriter, r *http.Request) {
	h.writeTranslation(w, r, false)
}

func (h handlers) handleTranslateAll(w http.ResponseWriter, r *http.Request) {
	h.writeTranslation(w, r, true)
}

func (h handlers) writeTranslation(w http.ResponseWriter, r *http.Request, all bool) {
	out, err := h.service.translate(httpx.RequestContext(r), unitID(r), r.URL.Query().Get("service"), all)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, out); err != nil {
		h.WriteError(w, r, err)
	}
}

func (h handlers) handleServices(w http.ResponseWriter, r *http.Request) {
	if err := httpx.WriteJSON(w, http.StatusOK, h.service.services()); err != nil {
		h.WriteError(w, r, err)
	}
}

func languageTargets(units []storage.UnitDetail, lang string) []webtemplates.LanguageTarget {
	targets := make([]webtemplates.LanguageTarget, 0, len(units))
	for _, unit := range units {
		targets = append(targets, webtemplates.LanguageTarget{
			LanguageName: webi18n.DisplayLanguage(unit.Language.Code, unit.Language.Name, lang),
			LanguageCode: unit.Language.Code,
			Direction:    direction(unit.Language),
			Target:       unit.Unit.Target,
			Translated:   unit.Unit.Translated,
			Fuzzy:        unit.Unit.Fuzzy,
			URL:          routepath.TranslateUnit(unit.Project.Slug, unit.Subproject.Slug, unit.Language.Code, unit.Unit.Checksum),
		})
	}
	return targets
}
