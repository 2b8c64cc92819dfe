package changes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/platform/changeview"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	query := parseFilter(r)
	result, err := h.service.list(httpx.RequestContext(r), query)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	view := webtemplates.ChangesView{
		Rows:  changeview.Rows(result.Changes, loc, lang),
		Page:  result.Page,
		Total: result.Total,
		Loc:   loc,
	}
	if result.Page > 1 {
		prev := query
		prev.Page = result.Page - 1
		view.PrevURL = routepath.ChangesWithFilter(prev)
	}
	if result.Page < result.Pages {
		next := query
		next.Page = result.Page + 1
		view.NextURL = routepath.ChangesWithFilter(next)
	}
	h.WritePage(w, r, webtemplates.T(loc, "changes.title"), http.StatusOK, webtemplates.ChangesPage(view))
}

func parseFilter(r *http.Request) routepath.ChangesFilter {
	values := r.URL.Query()
	page, err := strconv.Atoi(strings.TrimSpace(values.Get(routepath.PageQueryKey)))
	if err != nil {
		page = 1
	}
	return routepath.ChangesFilter{
		Project:    strings.TrimSpace(values.Get(routepath.ProjectQueryKey)),
		Subproject: strings.TrimSpace(values.Get(routepath.SubprojectQueryKey)),
		Language:   strings.TrimSpace(values.Get(routepath.LanguageQueryKey)),
		Checksum:   strings.TrimSpace(values.Get(routepath.ChecksumQueryKey)),
		User:       strings.TrimSpace(values.Get(routepath.UserQueryKey)),
		Page:       page,
	}
}
