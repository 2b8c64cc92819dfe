// Package mt dispatches machine translation requests to pluggable services
// selected by a string id.
package mt

import (
	"context"
	"errors"
	"strings"
)

// ErrUnknownService reports a lookup of an unregistered service id.
var ErrUnknownService = errors.New("unknown machine translation service")

// Request is one text to translate between two languages.
type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	// UnitID excludes the requesting unit from translation memory lookups.
	UnitID int64
}

// Suggestion is one proposed translation.
type Suggestion struct {
	Text    string `json:"text"`
	Quality int    `json:"quality"`
	Service string `json:"service"`
	Source  string `json:"source"`
}

// Service produces translation suggestions.
type Service interface {
	ID() string
	Name() string
	Translate(ctx context.Context, req Request) ([]Suggestion, error)
}

// LanguageSupporter is implemented by services limited to some language
// pairs. Services without it are asked about every pair.
type LanguageSupporter interface {
	Supports(source, target string) bool
}

// Supports reports whether svc accepts the language pair.
func Supports(svc Service, source, target string) bool {
	if svc == nil {
		return false
	}
	supporter, ok := svc.(LanguageSupporter)
	if !ok {
		return true
	}
	return supporter.Supports(NormalizeLanguage(source), NormalizeLanguage(target))
}

// NormalizeLanguage maps a language code to lowercase with dashes, so
// "pt_BR" and "pt-br" compare equal.
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// BaseLanguage strips the region from a language code.
func BaseLanguage(code string) string {
	code = NormalizeLanguage(code)
	if idx := strings.IndexByte(code, '-'); idx > 0 {
		return code[:idx]
	}
	return code
}
