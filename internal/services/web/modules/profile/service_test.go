package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/validate"
)

func validAccount() Account {
	return Account{
		FirstName:          "Weblate",
		LastName:           "Test",
		Email:              "weblate@example.org",
		Language:           "cs",
		Languages:          []string{"cs"},
		SecondaryLanguages: []string{"de"},
	}
}

func TestSaveAccountPersistsValidForm(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	svc := newService(gw)
	account := validAccount()
	account.FirstName = "  Weblate "
	account.Languages = []string{"cs", "cs", ""}

	if _, err := svc.saveAccount(context.Background(), 3, account); err != nil {
		t.Fatalf("saveAccount() error = %v", err)
	}
	if gw.saves != 1 {
		t.Fatalf("saves = %d, want 1", gw.saves)
	}
	if gw.lastUser != 3 {
		t.Fatalf("user = %d, want 3", gw.lastUser)
	}
	if gw.saved.FirstName != "Weblate" {
		t.Fatalf("first name = %q, want trimmed", gw.saved.FirstName)
	}
	if len(gw.saved.Languages) != 1 || gw.saved.Languages[0] != "cs" {
		t.Fatalf("languages = %v, want [cs]", gw.saved.Languages)
	}
}

func TestSaveAccountRejectsInvalidFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Account)
		field   string
		wantKey string
	}{
		{name: "long first name", mutate: func(a *Account) { a.FirstName = strings.Repeat("x", 31) }, field: "first_name", wantKey: validate.KeyTooLong},
		{name: "long last name", mutate: func(a *Account) { a.LastName = strings.Repeat("ř", 31) }, field: "last_name", wantKey: validate.KeyTooLong},
		{name: "missing email", mutate: func(a *Account) { a.Email = " " }, field: "email", wantKey: validate.KeyRequired},
		{name: "bad email", mutate: func(a *Account) { a.Email = "weblate" }, field: "email", wantKey: validate.KeyEmailInvalid},
		{name: "missing ui language", mutate: func(a *Account) { a.Language = "" }, field: "language", wantKey: validate.KeyRequired},
		{name: "unsupported ui language", mutate: func(a *Account) { a.Language = "ja" }, field: "language", wantKey: keyUnknownLanguage},
		{name: "unknown language", mutate: func(a *Account) { a.Languages = []string{"xx"} }, field: "languages", wantKey: keyUnknownLanguage},
		{name: "unknown secondary language", mutate: func(a *Account) { a.SecondaryLanguages = []string{"xx"} }, field: "secondary_languages", wantKey: keyUnknownLanguage},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gw := newFakeGateway()
			account := validAccount()
			tc.mutate(&account)

			_, err := newService(gw).saveAccount(context.Background(), 1, account)
			if apperrors.HTTPStatus(err) != 400 {
				t.Fatalf("status = %d, want 400 (err=%v)", apperrors.HTTPStatus(err), err)
			}
			fields := apperrors.Fields(err)
			if len(fields) != 1 || fields[0].Field != tc.field || fields[0].Key != tc.wantKey {
				t.Fatalf("fields = %+v, want %s/%s", fields, tc.field, tc.wantKey)
			}
			if gw.saves != 0 {
				t.Fatalf("saves = %d, want 0", gw.saves)
			}
		})
	}
}

func TestSaveAccountReportsEveryInvalidField(t *testing.T) {
	t.Parallel()

	account := validAccount()
	account.Email = "nope"
	account.FirstName = strings.Repeat("a", 40)
	_, err := newService(newFakeGateway()).saveAccount(context.Background(), 1, account)
	if got := len(apperrors.Fields(err)); got != 2 {
		t.Fatalf("field errors = %d, want 2", got)
	}
}

func TestSaveAccountRequiresUser(t *testing.T) {
	t.Parallel()

	_, err := newService(newFakeGateway()).saveAccount(context.Background(), 0, validAccount())
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %q, want unauthorized", apperrors.KindOf(err))
	}
}

func TestSaveAccountPropagatesGatewayErrors(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	gw.listErr = errors.New("db down")
	if _, err := newService(gw).saveAccount(context.Background(), 1, validAccount()); err == nil {
		t.Fatal("expected list error")
	}
	if gw.saves != 0 {
		t.Fatalf("saves = %d, want 0", gw.saves)
	}
}

func TestNewServiceWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := newService(nil).loadAccount(context.Background(), 1)
	if apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want unavailable", apperrors.KindOf(err))
	}
}
