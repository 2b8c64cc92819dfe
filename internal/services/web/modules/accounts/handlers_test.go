package accounts

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/translating.space/internal/platform/requestctx"
	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func mountAccounts(t *testing.T, gw AuthGateway, sessions SessionWriter, base modulehandler.Base) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(gw), WithSessions(sessions), WithBase(base)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.AccountsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func postLogin(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSuccessWritesSessionAndRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		next string
		want string
	}{
		{name: "default", want: "/"},
		{name: "local next", next: "/translate/test/test/cs/?checksum=abc", want: "/translate/test/test/cs/?checksum=abc"},
		{name: "foreign next", next: "https://evil.example/", want: "/"},
		{name: "scheme relative next", next: "//evil.example/", want: "/"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gw := &fakeGateway{principal: requestctx.Principal{UserID: 1, Username: "testuser"}}
			sessions := &fakeSessions{}
			handler := mountAccounts(t, gw, sessions, modulehandler.NewTestBase())

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, postLogin(url.Values{
				"username": {"testuser"},
				"password": {"testpassword"},
				"next":     {tc.next},
			}))
			if rr.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", rr.Code)
			}
			if got := rr.Header().Get("Location"); got != tc.want {
				t.Fatalf("Location = %q, want %q", got, tc.want)
			}
			if len(sessions.written) != 1 || sessions.written[0].UserID != 1 {
				t.Fatalf("sessions = %+v", sessions.written)
			}
		})
	}
}

func TestLoginRejectedRerendersForm(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{err: ErrInvalidCredentials}
	sessions := &fakeSessions{}
	handler := mountAccounts(t, gw, sessions, modulehandler.NewTestBase())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postLogin(url.Values{"username": {"testuser"}, "password": {"nope"}, "next": {"/changes/"}}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(sessions.written) != 0 {
		t.Fatal("session written for rejected login")
	}
	body := rr.Body.String()
	if !strings.Contains(body, `value="testuser"`) || !strings.Contains(body, `value="/changes/"`) {
		t.Fatal("username or next was not kept")
	}
}

func TestLoginMissingFieldsSkipsGateway(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	handler := mountAccounts(t, gw, &fakeSessions{}, modulehandler.NewTestBase())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postLogin(url.Values{"username": {" "}}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway calls = %d, want 0", gw.calls)
	}
}

func TestLoginGetSignedInRedirects(t *testing.T) {
	t.Parallel()

	base := modulehandler.NewBase(module.Dependencies{ResolveSignedIn: func(*http.Request) bool { return true }})
	handler := mountAccounts(t, &fakeGateway{}, &fakeSessions{}, base)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.LoginWithNext("/changes/"), nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/changes/" {
		t.Fatalf("status = %d, Location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	handler := mountAccounts(t, &fakeGateway{}, sessions, modulehandler.NewTestBase())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Logout, nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("status = %d, Location = %q", rr.Code, rr.Header().Get("Location"))
	}
	if sessions.cleared != 1 {
		t.Fatalf("cleared = %d, want 1", sessions.cleared)
	}
}

func TestAccountsRoutes(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
	handler := mountAccounts(t, &fakeGateway{}, &fakeSessions{}, modulehandler.NewTestBase())
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Login, want: http.StatusOK},
		{method: http.MethodGet, path: routepath.Logout, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.AccountsPrefix + "register/", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}
