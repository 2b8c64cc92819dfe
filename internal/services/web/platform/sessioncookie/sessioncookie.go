// Package sessioncookie centralizes web session cookie behavior.
//
// The cookie carries an HS256-signed JWT naming the signed-in user, so
// resolving a session needs no server-side lookup.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "ts_session"

// Issuer is stamped on every session token.
const Issuer = "translating.space"

// MinSecretLength is the minimum HMAC secret size in bytes.
const MinSecretLength = 32

// DefaultTTL is used when a codec is built without a lifetime.
const DefaultTTL = 14 * 24 * time.Hour

var (
	// ErrInvalidToken reports a malformed, forged or expired session token.
	ErrInvalidToken = errors.New("invalid session token")
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	policy requestmeta.SchemePolicy
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSchemePolicy sets the policy deciding the Secure cookie flag.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(c *Codec) { c.policy = policy }
}

// NewCodec builds a codec signing with secret.
func NewCodec(secret string, ttl time.Duration, opts ...Option) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue returns a signed token for principal and its expiry.
func (c *Codec) Issue(principal requestctx.Principal) (string, time.Time, error) {
	if !principal.SignedIn() {
		return "", time.Time{}, fmt.Errorf("session principal is required")
	}
	now := c.now().UTC()
	expires := now.Add(c.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(principal.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Username: principal.Username,
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies token and returns the principal it names.
func (c *Codec) Parse(token string) (requestctx.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return requestctx.Principal{}, ErrInvalidToken
	}
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return requestctx.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return requestctx.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return requestctx.Principal{UserID: userID, Username: claims.Username}, nil
}

// Resolve returns the principal carried by the request cookie, if valid.
func (c *Codec) Resolve(r *http.Request) (requestctx.Principal, bool) {
	raw, ok := Read(r)
	if !ok || c == nil {
		return requestctx.Principal{}, false
	}
	principal, err := c.Parse(raw)
	if err != nil {
		return requestctx.Principal{}, false
	}
	return principal, true
}

// Write issues a token for principal and stores it in the session cookie.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, principal requestctx.Principal) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	token, expires, err := c.Issue(principal)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	var policy requestmeta.SchemePolicy
	if c != nil {
		policy = c.policy
	}
	ClearWithPolicy(w, r, policy)
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// ClearWithPolicy expires the session cookie for the current request context.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
