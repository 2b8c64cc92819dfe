// Package changeview maps stored change records onto listing rows shared by
// the change history page and the editor's unit history fragment.
package changeview

import (
	"strings"

	webi18n "github.com/louisbranch/translating.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

// TimeLayout formats change timestamps in listings.
const TimeLayout = "2006-01-02 15:04"

// Rows maps changes to rows localized for lang.
func Rows(changes []storage.Change, loc webtemplates.Localizer, lang string) []webtemplates.ChangeRow {
	rows := make([]webtemplates.ChangeRow, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, Row(change, loc, lang))
	}
	return rows
}

// Row maps one change.
func Row(change storage.Change, loc webtemplates.Localizer, lang string) webtemplates.ChangeRow {
	user := strings.TrimSpace(change.Username)
	if user == "" {
		user = webtemplates.T(loc, "changes.anonymous")
	}
	return webtemplates.ChangeRow{
		When:        change.CreatedAt.UTC().Format(TimeLayout),
		User:        user,
		Action:      webtemplates.T(loc, change.Action.MessageKey()),
		Target:      change.Target,
		Translation: translationLabel(change, lang),
		URL:         translationURL(change),
	}
}

func translationLabel(change storage.Change, lang string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{change.ProjectSlug, change.SubprojectSlug} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if code := strings.TrimSpace(change.LanguageCode); code != "" {
		parts = append(parts, webi18n.DisplayLanguage(code, "", lang))
	}
	return strings.Join(parts, " / ")
}

func translationURL(change storage.Change) string {
	if change.ProjectSlug == "" || change.SubprojectSlug == "" || change.LanguageCode == "" {
		return ""
	}
	if change.UnitChecksum != "" {
		return routepath.TranslateUnit(change.ProjectSlug, change.SubprojectSlug, change.LanguageCode, change.UnitChecksum)
	}
	return routepath.Translate(change.ProjectSlug, change.SubprojectSlug, change.LanguageCode)
}
