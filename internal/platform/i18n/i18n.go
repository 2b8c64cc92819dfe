// Package i18n defines the UI languages translating.space ships and helpers
// for naming translation languages.
package i18n

import (
	"strings"

	"github.com/louisbranch/translating.space/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var supportedTags = []language.Tag{
	language.English,
	language.Czech,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the UI languages with registered catalogs.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback UI language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it names a supported UI language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		supportedBase, _ := supported.Base()
		if base == supportedBase {
			return supported, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported UI language for ranked preferences.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LanguageName returns the display name of a language code in the viewer's
// language, falling back to the English name and finally to the code.
func LanguageName(code string, viewer language.Tag) string {
	code = strings.TrimSpace(code)
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code
	}
	if name := display.Tags(viewer).Name(tag); name != "" {
		return name
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// SelfName returns the language's name in itself, e.g. "čeština" for cs.
func SelfName(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

// EnsureCatalog loads the embedded message catalogs.
func EnsureCatalog() *catalog.Bundle {
	return catalog.Default()
}
