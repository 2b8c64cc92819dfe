package contact

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func mountContact(t *testing.T, gw ContactGateway, base modulehandler.Base) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(gw), WithBase(base)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Contact {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func contactForm() url.Values {
	return url.Values{
		"subject": {"Message from dark side"},
		"name":    {"Kylo Ren"},
		"email":   {"kylo@example.com"},
		"content": {"Hi\n\nThis app looks really cool!"},
	}
}

func postContact(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.Contact, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestContactGetRendersForm(t *testing.T) {
	t.Parallel()

	handler := mountContact(t, &fakeGateway{}, modulehandler.NewTestBase())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Contact, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<title>Contact @ translating.space</title>") {
		t.Fatalf("unexpected title in %q", body)
	}
	if !strings.Contains(body, `name="content"`) {
		t.Fatal("missing content field")
	}
}

func TestContactGetPrefillsSignedInUser(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{sender: Sender{Name: "Weblate Test", Email: "weblate@example.org"}}
	handler := mountContact(t, gw, baseForUser(2))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Contact, nil))

	if gw.lastUser != 2 {
		t.Fatalf("sender lookup user = %d, want 2", gw.lastUser)
	}
	if !strings.Contains(rr.Body.String(), `value="weblate@example.org"`) {
		t.Fatal("email was not prefilled")
	}
}

func TestContactPostSendsAndRedirects(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	handler := mountContact(t, gw, modulehandler.NewTestBase())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postContact(contactForm()))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want /", got)
	}
	if len(gw.delivered) != 1 || gw.delivered[0].Name != "Kylo Ren" {
		t.Fatalf("delivered = %+v", gw.delivered)
	}
	var flashSet bool
	for _, cookie := range rr.Result().Cookies() {
		flashSet = flashSet || (cookie.Name == flashnotice.CookieName && cookie.Value != "")
	}
	if !flashSet {
		t.Fatal("expected flash cookie")
	}
}

func TestContactPostInvalidRerenders(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	handler := mountContact(t, gw, modulehandler.NewTestBase())
	form := contactForm()
	form.Set("email", "")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postContact(form))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(gw.delivered) != 0 {
		t.Fatal("invalid message was delivered")
	}
	if !strings.Contains(rr.Body.String(), `value="Kylo Ren"`) {
		t.Fatal("submitted values were not kept")
	}
}

func TestContactRoutes(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
	handler := mountContact(t, &fakeGateway{}, modulehandler.NewTestBase())
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Contact, want: http.StatusOK},
		{method: http.MethodPut, path: routepath.Contact, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.Contact + "extra", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if New().Healthy() || New(WithGateway(NewStoreGateway(nil))).Healthy() {
		t.Fatal("unconfigured module reported healthy")
	}
	if !New(WithGateway(&fakeGateway{})).Healthy() {
		t.Fatal("configured module reported unhealthy")
	}
}
