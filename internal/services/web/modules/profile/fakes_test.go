package profile

import (
	"context"
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

// fakeGateway implements ProfileGateway for tests with error injection and
// call recording.
type fakeGateway struct {
	account   Account
	languages []Language

	loadErr  error
	saveErr  error
	listErr  error
	saves    int
	saved    Account
	lastUser int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		account: Account{
			FirstName: "Weblate",
			LastName:  "Test",
			Email:     "weblate@example.org",
			Language:  "en",
			Languages: []string{"cs"},
		},
		languages: []Language{
			{Code: "cs", Name: "Czech"},
			{Code: "de", Name: "German"},
		},
	}
}

func (f *fakeGateway) LoadAccount(_ context.Context, userID int64) (Account, error) {
	f.lastUser = userID
	if f.loadErr != nil {
		return Account{}, f.loadErr
	}
	return f.account, nil
}

func (f *fakeGateway) SaveAccount(_ context.Context, userID int64, account Account) error {
	f.lastUser = userID
	f.saves++
	f.saved = account
	return f.saveErr
}

func (f *fakeGateway) ListLanguages(context.Context) ([]Language, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.languages, nil
}

// signedInBase resolves every request to userID.
func signedInBase(userID int64) modulehandler.Base {
	return modulehandler.NewBase(module.Dependencies{
		ResolveUserID: func(*http.Request) int64 { return userID },
	})
}
