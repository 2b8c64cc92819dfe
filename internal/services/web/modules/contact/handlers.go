package contact

import (
	"net/http"

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
	flashMeta requestmeta.SchemePolicy
}

func newHandlers(s service, base modulehandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, flashMeta: policy}
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	sender := h.service.prefill(httpx.RequestContext(r), h.RequestUserID(r))
	h.render(w, r, http.StatusOK, Message{Name: sender.Name, Email: sender.Email}, nil)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.bad_form", "failed to parse contact form"))
		return
	}
	message, err := h.service.send(httpx.RequestContext(r), Message{
		Subject: r.PostFormValue("subject"),
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Content: r.PostFormValue("content"),
	})
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			loc, _ := h.PageLocalizer(w, r)
			h.render(w, r, http.StatusBadRequest, message, webi18n.LocalizeFieldErrors(loc, err))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	flashnotice.WriteWithPolicy(w, r, flashnotice.NoticeSuccess("contact.notice_sent"), h.flashMeta)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, message Message, fieldErrors webtemplates.FieldErrors) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "contact.title"), status, webtemplates.ContactPage(webtemplates.ContactView{
		Subject: message.Subject,
		Name:    message.Name,
		Email:   message.Email,
		Content: message.Content,
		Errors:  fieldErrors,
		Loc:     loc,
	}))
}
