package editor

import (
	"net/http"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service   service
	flashMeta requestmeta.SchemePolicy
}

func newHandlers(s service, base modulehandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, flashMeta: policy}
}

func requestLocation(r *http.Request) location {
	return location{
		Project:    r.PathValue("project"),
		Subproject: r.PathValue("subproject"),
		Language:   r.PathValue("lang"),
	}
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.load(httpx.RequestContext(r), requestLocation(r), r.URL.Query().Get(routepath.ChecksumQueryKey))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, st, nil)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	if !h.ResolveRequestSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.LoginWithNext(r.URL.Path))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.bad_form", "failed to parse translation form"))
		return
	}
	loc := requestLocation(r)
	checksum := r.PostFormValue("checksum")
	st, err := h.service.save(httpx.RequestContext(r), loc, checksum, r.PostFormValue("target"), r.PostFormValue("fuzzy") != "", h.RequestUserID(r))
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			current, loadErr := h.service.load(httpx.RequestContext(r), loc, checksum)
			if loadErr != nil {
				h.WriteError(w, r, err)
				return
			}
			pageLoc, _ := h.PageLocalizer(w, r)
			h.render(w, r, http.StatusBadRequest, current, webi18n.LocalizeFieldErrors(pageLoc, err))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	unit, _ := st.current()
	flashnotice.WriteWithPolicy(w, r, flashnotice.NoticeSuccess("editor.notice_saved"), h.flashMeta)
	httpx.WriteRedirect(w, r, routepath.TranslateUnit(loc.Project, loc.Subproject, loc.Language, unit.Checksum))
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, st state, fieldErrors webtemplates.FieldErrors) {
	loc, lang := h.PageLocalizer(w, r)
	view := editorView(st, lang)
	view.CanEdit = h.ResolveRequestSignedIn(r)
	view.LoginURL = routepath.LoginWithNext(r.URL.RequestURI())
	view.Errors = fieldErrors
	view.Loc = loc
	title := view.ProjectName + " / " + view.SubprojectName + " / " + view.LanguageName
	h.WritePage(w, r, title, status, webtemplates.EditorPage(view))
}

func editorView(st state, lang string) webtemplates.EditorView {
	d := st.Detail
	project, subproject, code := d.Project.Slug, d.Subproject.Slug, d.Language.Code
	view := webtemplates.EditorView{
		ProjectName:    d.Project.Name,
		SubprojectName: d.Subproject.Name,
		LanguageName:   webi18n.DisplayLanguage(code, d.Language.Name, lang),
		LanguageCode:   code,
		Direction:      direction(d.Language),
		Total:          len(st.Units),
		ActionURL:      routepath.Translate(project, subproject, code),
		ServicesURL:    routepath.JSMTServices,
	}
	unit, ok := st.current()
	if !ok {
		return view
	}
	view.UnitID = unit.ID
	view.Checksum = unit.Checksum
	view.Source = unit.Source
	view.Target = unit.Target
	view.Fuzzy = unit.Fuzzy
	view.Context = unit.Context
	view.Location = unit.Location
	view.Comment = unit.Comment
	view.Position = st.Index + 1
	if st.Index > 0 {
		view.PrevURL = routepath.TranslateUnit(project, subproject, code, st.Units[st.Index-1].Checksum)
	}
	if st.Index+1 < len(st.Units) {
		view.NextURL = routepath.TranslateUnit(project, subproject, code, st.Units[st.Index+1].Checksum)
	}
	view.DetailURL = routepath.JSDetail(project, subproject, unit.Checksum)
	view.TranslateURL = routepath.JSTranslate(unit.ID)
	view.TranslateAllURL = routepath.JSTranslateAll(unit.ID)
	view.ChangesURL = routepath.JSUnitChanges(unit.ID)
	view.OthersURL = routepath.JSUnitTranslations(unit.ID)
	return view
}

func direction(language storage.Language) string {
	if language.Direction == storage.DirectionRTL {
		return storage.DirectionRTL
	}
	return storage.DirectionLTR
}
