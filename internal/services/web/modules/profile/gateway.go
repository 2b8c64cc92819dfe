package profile

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// Account is the editable account and translation preferences of one user.
type Account struct {
	FirstName          string
	LastName           string
	Email              string
	Language           string
	Languages          []string
	SecondaryLanguages []string
}

// Language is one selectable translation language.
type Language struct {
	Code string
	Name string
}

// ProfileGateway loads and saves accounts for profile handlers.
type ProfileGateway interface {
	LoadAccount(ctx context.Context, userID int64) (Account, error)
	SaveAccount(ctx context.Context, userID int64, account Account) error
	ListLanguages(ctx context.Context) ([]Language, error)
}

// Store is the persistence backing the store gateway.
type Store interface {
	storage.UserStore
	storage.ProfileStore
	storage.LanguageStore
}

// NewStoreGateway returns a gateway over store, or an unavailable gateway
// when store is nil.
func NewStoreGateway(store Store) ProfileGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{store: store}
}

type storeGateway struct {
	store Store
}

func (g storeGateway) LoadAccount(ctx context.Context, userID int64) (Account, error) {
	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return Account{}, apperrors.FromStorage(err)
	}
	account := Account{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	profile, err := g.store.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return account, nil
	case err != nil:
		return Account{}, err
	}
	account.Language = profile.Language
	account.Languages = profile.Languages
	account.SecondaryLanguages = profile.SecondaryLanguages
	return account, nil
}

func (g storeGateway) SaveAccount(ctx context.Context, userID int64, account Account) error {
	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return apperrors.FromStorage(err)
	}
	user.FirstName = account.FirstName
	user.LastName = account.LastName
	user.Email = account.Email
	return apperrors.FromStorage(g.store.SaveAccount(ctx, user, storage.Profile{
		UserID:             userID,
		Language:           account.Language,
		Languages:          account.Languages,
		SecondaryLanguages: account.SecondaryLanguages,
	}))
}

func (g storeGateway) ListLanguages(ctx context.Context) ([]Language, error) {
	rows, err := g.store.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	languages := make([]Language, 0, len(rows))
	for _, row := range rows {
		languages = append(languages, Language{Code: row.Code, Name: row.Name})
	}
	return languages, nil
}

type unavailableGateway struct{}

func (unavailableGateway) LoadAccount(context.Context, int64) (Account, error) {
	return Account{}, apperrors.E(apperrors.KindUnavailable, "profile service is not configured")
}

func (unavailableGateway) SaveAccount(context.Context, int64, Account) error {
	return apperrors.E(apperrors.KindUnavailable, "profile service is not configured")
}

func (unavailableGateway) ListLanguages(context.Context) ([]Language, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "profile service is not configured")
}
