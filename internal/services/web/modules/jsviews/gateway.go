package jsviews

import (
	"context"

	"github.com/louisbranch/translating.space/internal/services/mt"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// UnitGateway reads units, their sibling translations and history.
type UnitGateway interface {
	GetUnit(ctx context.Context, unitID int64) (storage.UnitDetail, error)
	GetSubproject(ctx context.Context, projectSlug, subprojectSlug string) (storage.Subproject, error)
	ListUnitsByChecksum(ctx context.Context, subprojectID int64, checksum string) ([]storage.UnitDetail, error)
	ListChanges(ctx context.Context, filter storage.ChangeFilter) ([]storage.Change, error)
}

// Translator is the machine translation registry.
type Translator interface {
	IDs() []string
	Lookup(id string) (mt.Service, bool)
	Translate(ctx context.Context, id string, req mt.Request) ([]mt.Suggestion, error)
	TranslateAll(ctx context.Context, req mt.Request) ([]mt.Suggestion, error)
}

// Store is the persistence backing the store gateway.
type Store interface {
	storage.UnitStore
	storage.ProjectStore
	storage.ChangeStore
}

// NewStoreGateway returns store as a gateway, or an unavailable gateway
// when it is nil.
func NewStoreGateway(store Store) UnitGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return store
}

type unavailableGateway struct{}

func unavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "unit service is not configured")
}

func (unavailableGateway) GetUnit(context.Context, int64) (storage.UnitDetail, error) {
	return storage.UnitDetail{}, unavailable()
}

func (unavailableGateway) GetSubproject(context.Context, string, string) (storage.Subproject, error) {
	return storage.Subproject{}, unavailable()
}

func (unavailableGateway) ListUnitsByChecksum(context.Context, int64, string) ([]storage.UnitDetail, error) {
	return nil, unavailable()
}

func (unavailableGateway) ListChanges(context.Context, storage.ChangeFilter) ([]storage.Change, error) {
	return nil, unavailable()
}
