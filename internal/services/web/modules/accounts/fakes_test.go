package accounts

import (
	"context"
	"net/http"

	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

type fakeUserStore struct {
	users map[string]storage.User
	err   error
}

func (f fakeUserStore) CreateUser(context.Context, storage.User) (storage.User, error) {
	return storage.User{}, nil
}

func (f fakeUserStore) GetUser(context.Context, int64) (storage.User, error) {
	return storage.User{}, storage.ErrNotFound
}

func (f fakeUserStore) GetUserByUsername(_ context.Context, username string) (storage.User, error) {
	if f.err != nil {
		return storage.User{}, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f fakeUserStore) SetPassword(context.Context, int64, string) error { return nil }

type fakeGateway struct {
	principal requestctx.Principal
	err       error
	calls     int
}

func (f *fakeGateway) Authenticate(context.Context, string, string) (requestctx.Principal, error) {
	f.calls++
	return f.principal, f.err
}

type fakeSessions struct {
	written []requestctx.Principal
	cleared int
	err     error
}

func (f *fakeSessions) Write(w http.ResponseWriter, _ *http.Request, principal requestctx.Principal) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, principal)
	http.SetCookie(w, &http.Cookie{Name: "ts_session", Value: "token"})
	return nil
}

func (f *fakeSessions) Clear(http.ResponseWriter, *http.Request) {
	f.cleared++
}
