package templates

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestLayoutRendersChildrenAndChrome(t *testing.T) {
	t.Parallel()

	body := component(func(_ context.Context, m *markup) {
		m.elem("p", "page body")
	})
	ctx := templ.WithChildren(context.Background(), body)
	got := render(t, ctx, Layout(LayoutData{
		Title:       "Contact",
		SiteTitle:   "Weblate",
		Lang:        "cs",
		CurrentPath: "/contact/",
		Toast:       &Toast{Kind: "success", Message: "Saved <now>"},
		Languages: []LanguageLink{
			{Tag: "en", Label: "English", URL: "/contact/?lang=en"},
			{Tag: "cs", Label: "čeština", Active: true},
		},
	}))

	for _, want := range []string{
		`<html lang="cs">`,
		`<title>Contact @ Weblate</title>`,
		`<p>page body</p>`,
		`Saved &lt;now&gt;`,
		`class="toast toast-success"`,
		`href="/contact/?lang=en"`,
		`<strong lang="cs">čeština</strong>`,
		`href="/accounts/login/?next=%2Fcontact%2F"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("layout missing %q in %s", want, got)
		}
	}
}

func TestLayoutWrapsChildrenInMain(t *testing.T) {
	t.Parallel()

	body := component(func(_ context.Context, m *markup) {
		m.elem("p", "translate me", at("id", "body"))
	})
	got := render(t, templ.WithChildren(context.Background(), body), Layout(LayoutData{Title: "Home"}))

	if want := `<main id="main"><p id="body">translate me</p></main>`; !strings.Contains(got, want) {
		t.Fatalf("layout missing %q in %s", want, got)
	}
}

func TestLayoutShowsSignedInViewer(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), Layout(LayoutData{
		SignedIn: true,
		Viewer:   module.Viewer{DisplayName: "Ada Lovelace", Username: "ada", ProfileURL: "/accounts/profile/"},
	}))
	if !strings.Contains(got, ">Ada Lovelace</a>") {
		t.Fatalf("viewer name missing: %s", got)
	}
	if !strings.Contains(got, `action="/accounts/logout/"`) {
		t.Fatalf("logout form missing: %s", got)
	}
	if !strings.Contains(got, "<title>"+DefaultSiteTitle+"</title>") {
		t.Fatalf("default title missing: %s", got)
	}
}

func TestHrefRejectsUnsafeScheme(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), component(func(_ context.Context, m *markup) {
		m.elem("a", "x", href("javascript:alert(1)"))
	}))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe href rendered: %s", got)
	}
}

func TestErrorStateByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		key    string
	}{
		{status: http.StatusNotFound, key: "web.error.title_not_found"},
		{status: http.StatusForbidden, key: "web.error.title_forbidden"},
		{status: http.StatusBadGateway, key: "web.error.title_server_error"},
	}
	for _, tc := range tests {
		got := render(t, context.Background(), ErrorState(tc.status, nil))
		if !strings.Contains(got, tc.key) {
			t.Fatalf("ErrorState(%d) = %s, want key %q", tc.status, got, tc.key)
		}
	}
	if got := ErrorPageTitle(http.StatusTeapot, nil); got != "web.error.page_title_server_error" {
		t.Fatalf("ErrorPageTitle() = %q", got)
	}
}

func TestProfilePageKeepsSubmittedValuesAndErrors(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), ProfilePage(ProfileView{
		Languages: []Option{{Value: "cs", Label: "Czech", Selected: true}, {Value: "de", Label: "German"}},
		Email:     "not-an-email",
		Errors:    FieldErrors{"email": "Enter a valid email address."},
	}))
	for _, want := range []string{
		`<select id="id_languages" name="languages" multiple>`,
		`<option value="cs" selected>Czech</option>`,
		`<option value="de">German</option>`,
		`value="not-an-email"`,
		`aria-invalid="true"`,
		`Enter a valid email address.`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("profile page missing %q in %s", want, got)
		}
	}
}

func TestUnitFragments(t *testing.T) {
	t.Parallel()

	detail := render(t, context.Background(), UnitDetail(UnitDetailView{
		Source:   "Hello, world!",
		Checksum: "abc",
		Languages: []LanguageTarget{
			{LanguageName: "Czech", LanguageCode: "cs", Direction: "ltr", Target: "Ahoj světe!", URL: "/translate/p/s/cs/?checksum=abc"},
			{LanguageName: "German", LanguageCode: "de", Direction: "ltr"},
		},
	}))
	for _, want := range []string{"Czech", "Ahoj světe!", "detail.untranslated", `href="/translate/p/s/cs/?checksum=abc"`} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail missing %q in %s", want, detail)
		}
	}

	changes := render(t, context.Background(), UnitChanges(UnitChangesView{
		Rows:    []ChangeRow{{User: "ada", Action: "New translation", Target: "<b>"}},
		MoreURL: "/changes/?language=cs&project=p",
	}))
	if !strings.Contains(changes, `href="/changes/?language=cs&amp;project=p"`) {
		t.Fatalf("changes link missing: %s", changes)
	}
	if strings.Contains(changes, "<b>") {
		t.Fatalf("target not escaped: %s", changes)
	}
}
