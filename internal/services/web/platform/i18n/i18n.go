// Package i18n resolves the UI language of web requests and localizes
// typed errors.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/translating.space/internal/platform/i18n"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "ts_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption represents a supported UI language in the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Printer returns a message printer for tag. Catalogs are registered when
// the platform i18n package initializes.
func Printer(tag language.Tag) *message.Printer {
	platformi18n.EnsureCatalog()
	return message.NewPrinter(tag)
}

// ResolveTag determines the UI language for the request. A signed-in user's
// stored preference wins, then the lang query param, the language cookie and
// finally Accept-Language. The bool reports whether the query param picked
// the language and should be persisted.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			return tag, false
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a printer and language string for a request.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag, persist := ResolveTag(r, resolveLanguage)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// LocalizeError resolves a translated error string when a mapping is available.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if loc == nil {
		return msg
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return loc.Sprintf(key)
	}
	return msg
}

// LocalizeFieldErrors maps every field-bound error in err to its localized
// message. Errors without a field are collected under the empty key.
func LocalizeFieldErrors(loc Localizer, err error) map[string]string {
	fields := apperrors.Fields(err)
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		if _, seen := out[field.Field]; seen {
			continue
		}
		out[field.Field] = LocalizeError(loc, field)
	}
	return out
}

// DisplayLanguage names a translation language in the viewer's UI language.
// Codes x/text cannot name keep their stored name.
func DisplayLanguage(code, storedName, viewer string) string {
	tag, ok := platformi18n.ParseTag(viewer)
	if !ok {
		tag = platformi18n.DefaultTag()
	}
	if name := platformi18n.LanguageName(code, tag); name != "" && name != strings.TrimSpace(code) {
		return name
	}
	if storedName = strings.TrimSpace(storedName); storedName != "" {
		return storedName
	}
	return code
}

// BuildLanguageOptions lists supported UI languages labelled in their own
// language, with switch URLs for the current page.
func BuildLanguageOptions(r *http.Request, active string) []LanguageOption {
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	activeTag, ok := platformi18n.ParseTag(active)
	if !ok {
		activeTag = platformi18n.DefaultTag()
	}
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  platformi18n.SelfName(tag.String()),
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
