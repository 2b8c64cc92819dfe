// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root           = "/"
	Health         = "/up"
	Static         = "/static/"
	AccountsPrefix = "/accounts/"
	Login          = "/accounts/login/"
	Logout         = "/accounts/logout/"
	Profile        = "/accounts/profile/"
	Contact        = "/contact/"
	Changes        = "/changes/"

	TranslatePrefix  = "/translate/"
	TranslatePattern = TranslatePrefix + "{project}/{subproject}/{lang}/"

	JSPrefix                  = "/js/"
	JSDetailPattern           = JSPrefix + "detail/{project}/{subproject}/{checksum}/"
	JSTranslatePattern        = JSPrefix + "translate/{unit_id}/"
	JSTranslateAllPattern     = JSPrefix + "translate-all/{unit_id}/"
	JSUnitChangesPattern      = JSPrefix + "changes/{unit_id}/"
	JSUnitTranslationsPattern = JSPrefix + "translations/{unit_id}/"
	JSMTServices              = JSPrefix + "mt-services/"
)

// Query keys shared by change listings and redirects.
const (
	NextQueryKey       = "next"
	PageQueryKey       = "page"
	ProjectQueryKey    = "project"
	SubprojectQueryKey = "subproject"
	LanguageQueryKey   = "language"
	ChecksumQueryKey   = "checksum"
	UserQueryKey       = "user"
)

// LoginWithNext returns the login route carrying a post-login destination.
func LoginWithNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + NextQueryKey + "=" + url.QueryEscape(next)
}

// Translate returns the editor route of one translation.
func Translate(project, subproject, lang string) string {
	return TranslatePrefix + escapeSegment(project) + "/" + escapeSegment(subproject) + "/" + escapeSegment(lang) + "/"
}

// TranslateUnit returns the editor route focused on one unit checksum.
func TranslateUnit(project, subproject, lang, checksum string) string {
	base := Translate(project, subproject, lang)
	checksum = strings.TrimSpace(checksum)
	if checksum == "" {
		return base
	}
	return base + "?" + ChecksumQueryKey + "=" + url.QueryEscape(checksum)
}

// JSDetail returns the unit detail fragment route.
func JSDetail(project, subproject, checksum string) string {
	return JSPrefix + "detail/" + escapeSegment(project) + "/" + escapeSegment(subproject) + "/" + escapeSegment(checksum) + "/"
}

// JSTranslate returns the machine translation route of one unit.
func JSTranslate(unitID int64) string {
	return JSPrefix + "translate/" + strconv.FormatInt(unitID, 10) + "/"
}

// JSTranslateAll returns the route querying every machine translation service for one unit.
func JSTranslateAll(unitID int64) string {
	return JSPrefix + "translate-all/" + strconv.FormatInt(unitID, 10) + "/"
}

// JSUnitChanges returns the recent changes fragment route of one unit.
func JSUnitChanges(unitID int64) string {
	return JSPrefix + "changes/" + strconv.FormatInt(unitID, 10) + "/"
}

// JSUnitTranslations returns the other-languages fragment route of one unit.
func JSUnitTranslations(unitID int64) string {
	return JSPrefix + "translations/" + strconv.FormatInt(unitID, 10) + "/"
}

// ChangesFilter narrows the public change listing.
type ChangesFilter struct {
	Project    string
	Subproject string
	Language   string
	Checksum   string
	User       string
	Page       int
}

// ChangesWithFilter returns the change listing route with filter query values.
func ChangesWithFilter(filter ChangesFilter) string {
	values := url.Values{}
	setQuery(values, ProjectQueryKey, filter.Project)
	setQuery(values, SubprojectQueryKey, filter.Subproject)
	setQuery(values, LanguageQueryKey, filter.Language)
	setQuery(values, ChecksumQueryKey, filter.Checksum)
	setQuery(values, UserQueryKey, filter.User)
	if filter.Page > 1 {
		values.Set(PageQueryKey, strconv.Itoa(filter.Page))
	}
	if len(values) == 0 {
		return Changes
	}
	return Changes + "?" + values.Encode()
}

func setQuery(values url.Values, key, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		values.Set(key, value)
	}
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
