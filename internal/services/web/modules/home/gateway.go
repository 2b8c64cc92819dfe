package home

import (
	"context"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// OverviewGateway lists every translation with its progress.
type OverviewGateway interface {
	ListTranslationOverviews(ctx context.Context) ([]storage.TranslationOverview, error)
}

// NewStoreGateway returns store, or an unavailable gateway when it is nil.
func NewStoreGateway(store storage.ProjectStore) OverviewGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return store
}

type unavailableGateway struct{}

func (unavailableGateway) ListTranslationOverviews(context.Context) ([]storage.TranslationOverview, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "project overview is not configured")
}
