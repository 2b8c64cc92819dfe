package profile

import (
	"net/http"

	platformi18n "github.com/louisbranch/translating.space/internal/platform/i18n"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
	"golang.org/x/text/language"
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
	ctx := httpx.RequestContext(r)
	account, err := h.service.loadAccount(ctx, h.RequestUserID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, account, nil)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.bad_form", "failed to parse profile form"))
		return
	}
	account := Account{
		FirstName:          r.PostFormValue("first_name"),
		LastName:           r.PostFormValue("last_name"),
		Email:              r.PostFormValue("email"),
		Language:           r.PostFormValue("language"),
		Languages:          r.PostForm["languages"],
		SecondaryLanguages: r.PostForm["secondary_languages"],
	}
	account, err := h.service.saveAccount(httpx.RequestContext(r), h.RequestUserID(r), account)
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			loc, _ := h.PageLocalizer(w, r)
			h.render(w, r, http.StatusBadRequest, account, webi18n.LocalizeFieldErrors(loc, err))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	webi18n.SetLanguageCookie(w, uiTag(account.Language))
	flashnotice.WriteWithPolicy(w, r, flashnotice.NoticeSuccess("profile.notice_saved"), h.flashMeta)
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, account Account, fieldErrors webtemplates.FieldErrors) {
	languages, err := h.service.listLanguages(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.ProfileView{
		UILanguages:        uiLanguageOptions(account.Language),
		Languages:          languageOptions(languages, account.Languages),
		SecondaryLanguages: languageOptions(languages, account.SecondaryLanguages),
		FirstName:          account.FirstName,
		LastName:           account.LastName,
		Email:              account.Email,
		Errors:             fieldErrors,
		Loc:                loc,
	}
	h.WritePage(w, r, webtemplates.T(loc, "profile.title"), status, webtemplates.ProfilePage(view))
}

func uiLanguageOptions(selected string) []webtemplates.Option {
	if selected == "" {
		selected = platformi18n.DefaultTag().String()
	}
	tags := platformi18n.SupportedTags()
	options := make([]webtemplates.Option, 0, len(tags))
	for _, tag := range tags {
		code := tag.String()
		options = append(options, webtemplates.Option{
			Value:    code,
			Label:    platformi18n.SelfName(code),
			Selected: code == selected,
		})
	}
	return options
}

func languageOptions(languages []Language, selected []string) []webtemplates.Option {
	chosen := make(map[string]bool, len(selected))
	for _, code := range selected {
		chosen[code] = true
	}
	options := make([]webtemplates.Option, 0, len(languages))
	for _, language := range languages {
		options = append(options, webtemplates.Option{
			Value:    language.Code,
			Label:    language.Name,
			Selected: chosen[language.Code],
		})
	}
	return options
}

func uiTag(code string) language.Tag {
	if tag, ok := platformi18n.ParseTag(code); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}
