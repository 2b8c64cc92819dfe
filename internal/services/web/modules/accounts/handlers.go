package accounts

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service   service
	sessions  SessionWriter
	flashMeta requestmeta.SchemePolicy
}

func newHandlers(s service, sessions SessionWriter, base modulehandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, sessions: sessions, flashMeta: policy}
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	next := requestmeta.SafeRedirectPath(r.URL.Query().Get(routepath.NextQueryKey), "")
	if h.ResolveRequestSignedIn(r) {
		httpx.WriteRedirect(w, r, requestmeta.SafeRedirectPath(next, routepath.Root))
		return
	}
	h.render(w, r, http.StatusOK, "", next, nil)
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.bad_form", "failed to parse login form"))
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	next := requestmeta.SafeRedirectPath(r.PostFormValue(routepath.NextQueryKey), "")
	if h.sessions == nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "sessions are not configured"))
		return
	}
	principal, err := h.service.login(httpx.RequestContext(r), username, r.PostFormValue("password"))
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			loc, _ := h.PageLocalizer(w, r)
			h.render(w, r, http.StatusBadRequest, username, next, webi18n.LocalizeFieldErrors(loc, err))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	if err := h.sessions.Write(w, r, principal); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, requestmeta.SafeRedirectPath(next, routepath.Root))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if h.sessions != nil {
		h.sessions.Clear(w, r)
	}
	flashnotice.WriteWithPolicy(w, r, flashnotice.NoticeInfo("login.notice_logged_out"), h.flashMeta)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, username, next string, fieldErrors webtemplates.FieldErrors) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "login.title"), status, webtemplates.LoginPage(webtemplates.LoginView{
		Username: username,
		Next:     next,
		Errors:   fieldErrors,
		Loc:      loc,
	}))
}
