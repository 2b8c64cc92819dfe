package editor

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// EditorGateway reads translations and saves unit targets.
type EditorGateway interface {
	GetTranslation(ctx context.Context, projectSlug, subprojectSlug, languageCode string) (storage.TranslationDetail, error)
	ListUnits(ctx context.Context, translationID int64) ([]storage.Unit, error)
	SaveUnitTarget(ctx context.Context, unitID int64, target string, fuzzy bool, userID int64, at time.Time) (storage.Change, error)
}

// Store is the persistence backing the store gateway.
type Store interface {
	storage.ProjectStore
	storage.UnitStore
}

// NewStoreGateway returns store as a gateway, or an unavailable gateway
// when it is nil.
func NewStoreGateway(store Store) EditorGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return store
}

type unavailableGateway struct{}

func (unavailableGateway) GetTranslation(context.Context, string, string, string) (storage.TranslationDetail, error) {
	return storage.TranslationDetail{}, apperrors.E(apperrors.KindUnavailable, "editor is not configured")
}

func (unavailableGateway) ListUnits(context.Context, int64) ([]storage.Unit, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "editor is not configured")
}

func (unavailableGateway) SaveUnitTarget(context.Context, int64, string, bool, int64, time.Time) (storage.Change, error) {
	return storage.Change{}, apperrors.E(apperrors.KindUnavailable, "editor is not configured")
}
