package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials reports an unknown username or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthGateway checks credentials.
type AuthGateway interface {
	Authenticate(ctx context.Context, username, password string) (requestctx.Principal, error)
}

// SessionWriter issues and clears session cookies.
type SessionWriter interface {
	Write(w http.ResponseWriter, r *http.Request, principal requestctx.Principal) error
	Clear(w http.ResponseWriter, r *http.Request)
}

// NewStoreGateway returns a gateway checking bcrypt hashes stored in store,
// or an unavailable gateway when store is nil.
func NewStoreGateway(store storage.UserStore) AuthGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{store: store}
}

// placeholderHash keeps the cost of a failed lookup equal to a password check.
var placeholderHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoO5gM3d3oXOrQ2LyH3HcNhn3Nq5q5yQ.S")

type storeGateway struct {
	store storage.UserStore
}

func (g storeGateway) Authenticate(ctx context.Context, username, password string) (requestctx.Principal, error) {
	user, err := g.store.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(placeholderHash, []byte(password))
		return requestctx.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return requestctx.Principal{}, err
	}
	if user.PasswordHash == "" {
		return requestctx.Principal{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return requestctx.Principal{}, ErrInvalidCredentials
	}
	return requestctx.Principal{UserID: user.ID, Username: user.Username}, nil
}

type unavailableGateway struct{}

func (unavailableGateway) Authenticate(context.Context, string, string) (requestctx.Principal, error) {
	return requestctx.Principal{}, apperrors.E(apperrors.KindUnavailable, "account service is not configured")
}
