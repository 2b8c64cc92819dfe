package changes

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// ChangesGateway reads the change history.
type ChangesGateway interface {
	ListChanges(ctx context.Context, filter storage.ChangeFilter) ([]storage.Change, error)
	CountChanges(ctx context.Context, filter storage.ChangeFilter) (int, error)
	// LookupUserID resolves a username, returning zero for unknown users.
	LookupUserID(ctx context.Context, username string) (int64, error)
}

// Store is the persistence backing the store gateway.
type Store interface {
	storage.ChangeStore
	storage.UserStore
}

// NewStoreGateway returns a gateway over store, or an unavailable gateway
// when store is nil.
func NewStoreGateway(store Store) ChangesGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{Store: store}
}

type storeGateway struct {
	Store
}

func (g storeGateway) LookupUserID(ctx context.Context, username string) (int64, error) {
	user, err := g.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

type unavailableGateway struct{}

func (unavailableGateway) ListChanges(context.Context, storage.ChangeFilter) ([]storage.Change, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "change history is not configured")
}

func (unavailableGateway) CountChanges(context.Context, storage.ChangeFilter) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "change history is not configured")
}

func (unavailableGateway) LookupUserID(context.Context, string) (int64, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "change history is not configured")
}
