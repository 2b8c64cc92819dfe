package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/translating.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
)

func TestWritePageRendersAJAXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/profile/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, nil, Page{
		Title:      "Profile",
		StatusCode: http.StatusCreated,
		Body:       textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected fragment without full document wrapper")
	}
}

func TestWritePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/profile/", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, nil, Page{
		Title:      "Profile",
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/profile/", nil)
	setFlashCookie(t, req, flashnotice.NoticeSuccess("contact.notice_sent"))
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, nil, Page{
		Title: "Profile",
		Body:  textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{`class="toast toast-success"`, `Message has been sent to administrator.`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if !responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("response missing %q clear cookie", flashnotice.CookieName)
	}
}

func TestWritePageAJAXDoesNotConsumeFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/profile/", nil)
	req.Header.Set("HX-Request", "true")
	setFlashCookie(t, req, flashnotice.NoticeSuccess("contact.notice_sent"))
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, nil, Page{
		Title: "Profile",
		Body:  textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if strings.Contains(body, `class="toast`) {
		t.Fatalf("fragment body unexpectedly contains toast markup: %q", body)
	}
	if responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("fragment response unexpectedly set %q cookie", flashnotice.CookieName)
	}
}

func setFlashCookie(t *testing.T, req *http.Request, notice flashnotice.Notice) {
	t.Helper()
	seed := httptest.NewRecorder()
	flashnotice.Write(seed, req, notice)
	setCookieHeader := strings.TrimSpace(seed.Header().Get("Set-Cookie"))
	if setCookieHeader == "" {
		t.Fatalf("expected flash cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)
}

func responseHasCookieName(rr *httptest.ResponseRecorder, name string) bool {
	if rr == nil {
		return false
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie != nil && cookie.Name == name {
			return true
		}
	}
	return false
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func TestWritePageUsesResolverChrome(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact/", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, stubResolver{
		viewer:   module.Viewer{DisplayName: "Ada", ProfileURL: "/accounts/profile/"},
		signedIn: true,
		lang:     "cs",
		site:     "Weblate",
	}, Page{Title: "Contact"})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{`<html lang="cs">`, `<title>Contact @ Weblate</title>`, `>Ada</a>`, `href="/contact/?lang=en"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteFragmentSkipsLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/js/changes/1/", nil)
	rr := httptest.NewRecorder()
	if err := WriteFragment(rr, req, http.StatusOK, textComponent(`<p>fragment</p>`)); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if got := rr.Body.String(); got != `<p>fragment</p>` {
		t.Fatalf("body = %q", got)
	}
}

type stubResolver struct {
	viewer   module.Viewer
	signedIn bool
	lang     string
	site     string
}

func (s stubResolver) ResolveRequestViewer(*http.Request) module.Viewer { return s.viewer }
func (s stubResolver) ResolveRequestSignedIn(*http.Request) bool        { return s.signedIn }
func (s stubResolver) ResolveRequestLanguage(*http.Request) string      { return s.lang }
func (s stubResolver) SiteTitle() string                                { return s.site }
