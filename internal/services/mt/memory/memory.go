// Package memory suggests translations from already translated units.
package memory

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/louisbranch/translating.space/internal/services/mt"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

const (
	// DefaultThreshold is the minimum similarity percentage reported.
	DefaultThreshold = 75
	defaultLimit     = 500
	maxSuggestions   = 10
)

// Store lists translated units usable as memory.
type Store interface {
	ListMemoryUnits(ctx context.Context, query storage.MemoryQuery) ([]storage.UnitDetail, error)
}

// Service looks up similar sources in stored translations.
type Service struct {
	store     Store
	threshold int
}

// New returns a memory service over store.
func New(store Store) Service {
	return Service{store: store, threshold: DefaultThreshold}
}

// ID returns the registry id.
func (Service) ID() string { return mt.ServiceMemory }

// Name returns the display name.
func (Service) Name() string { return "Weblate" }

// Translate returns stored translations whose source is similar enough.
func (s Service) Translate(ctx context.Context, req mt.Request) ([]mt.Suggestion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("translation memory store is not configured")
	}
	length := utf8.RuneCountInString(req.Text)
	if length == 0 {
		return []mt.Suggestion{}, nil
	}
	units, err := s.store.ListMemoryUnits(ctx, storage.MemoryQuery{
		LanguageCode:   req.TargetLanguage,
		SourceLanguage: req.SourceLanguage,
		ExcludeUnitID:  req.UnitID,
		MinSourceLen:   length * s.threshold / 100,
		MaxSourceLen:   (length*100 + s.threshold - 1) / s.threshold,
		Limit:          defaultLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list memory units: %w", err)
	}

	suggestions := make([]mt.Suggestion, 0, len(units))
	for _, unit := range units {
		quality := Similarity(req.Text, unit.Unit.Source)
		if quality < s.threshold {
			continue
		}
		suggestions = append(suggestions, mt.Suggestion{
			Text:    unit.Unit.Target,
			Quality: quality,
			Service: fmt.Sprintf("%s (%s / %s)", s.Name(), unit.Project.Name, unit.Subproject.Name),
			Source:  unit.Unit.Source,
		})
	}
	suggestions = mt.Rank(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// Similarity returns the Levenshtein similarity of a and b as a percentage.
func Similarity(a, b string) int {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return (longest - distance) * 100 / longest
}
