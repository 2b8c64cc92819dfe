package profile

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func mountProfile(t *testing.T, gw ProfileGateway, base modulehandler.Base) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(gw), WithBase(base)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Profile {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Profile)
	}
	return mount.Handler
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.Profile, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm() url.Values {
	return url.Values{
		"first_name":          {"Weblate"},
		"last_name":           {"Test"},
		"email":               {"weblate@example.org"},
		"language":            {"cs"},
		"languages":           {"cs", "de"},
		"secondary_languages": {"de"},
	}
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(newFakeGateway()), signedInBase(1), requestmeta.SchemePolicy{}))
}

func TestProfileRoutes(t *testing.T) {
	t.Parallel()

	handler := mountProfile(t, newFakeGateway(), signedInBase(1))
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "get", method: http.MethodGet, path: routepath.Profile, wantStatus: http.StatusOK},
		{name: "head", method: http.MethodHead, path: routepath.Profile, wantStatus: http.StatusOK},
		{name: "delete rejected", method: http.MethodDelete, path: routepath.Profile, wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.Profile + "nope/", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestProfileGetPrefillsForm(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	handler := mountProfile(t, gw, signedInBase(9))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Profile, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gw.lastUser != 9 {
		t.Fatalf("loaded user = %d, want 9", gw.lastUser)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`value="weblate@example.org"`,
		`<option value="cs" selected>Czech</option>`,
		`<option value="de">German</option>`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestProfilePostSavesAndRedirects(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	handler := mountProfile(t, gw, signedInBase(4))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm(validForm()))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != routepath.Profile {
		t.Fatalf("Location = %q, want %q", got, routepath.Profile)
	}
	if gw.saves != 1 || gw.saved.Language != "cs" {
		t.Fatalf("saved = %+v (saves=%d)", gw.saved, gw.saves)
	}
	if !hasCookie(rr, flashnotice.CookieName) {
		t.Fatal("expected flash cookie")
	}
}

func TestProfilePostInvalidRendersErrors(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	handler := mountProfile(t, gw, signedInBase(4))
	form := validForm()
	form.Set("email", "invalid")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm(form))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if gw.saves != 0 {
		t.Fatalf("saves = %d, want 0", gw.saves)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `aria-invalid="true"`) {
		t.Fatal("expected invalid field marker")
	}
	if !strings.Contains(body, `value="invalid"`) {
		t.Fatal("expected submitted value to be kept")
	}
}

func TestProfileGatewayFailureRendersErrorPage(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	gw.loadErr = errors.New("db down")
	handler := mountProfile(t, gw, signedInBase(4))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Profile, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("module without gateway reported healthy")
	}
	if New(WithGateway(NewStoreGateway(nil))).Healthy() {
		t.Fatal("module with unavailable gateway reported healthy")
	}
	if !New(WithGateway(newFakeGateway())).Healthy() {
		t.Fatal("module with gateway reported unhealthy")
	}
	if got := New().ID(); got != "profile" {
		t.Fatalf("ID() = %q", got)
	}
}

func hasCookie(rr *httptest.ResponseRecorder, name string) bool {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return true
		}
	}
	return false
}
