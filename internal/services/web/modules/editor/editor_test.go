package editor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/module"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

type savedTarget struct {
	unitID int64
	target string
	fuzzy  bool
	userID int64
	at     time.Time
}

type fakeGateway struct {
	detail storage.TranslationDetail
	units  []storage.Unit
	saves  []savedTarget
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		detail: storage.TranslationDetail{
			Translation: storage.Translation{ID: 1, SubprojectID: 1, LanguageCode: "cs"},
			Project:     storage.Project{ID: 1, Name: "Test", Slug: "test"},
			Subproject:  storage.Subproject{ID: 1, ProjectID: 1, Name: "Test", Slug: "test"},
			Language:    storage.Language{Code: "cs", Name: "Czech", Direction: storage.DirectionLTR},
		},
		units: []storage.Unit{
			{ID: 10, TranslationID: 1, Checksum: "aaa", Source: "Hello, world!", Target: "Ahoj světe!", Translated: true, Position: 1},
			{ID: 11, TranslationID: 1, Checksum: "bbb", Source: "Thank you for using Weblate.", Position: 2},
			{ID: 12, TranslationID: 1, Checksum: "ccc", Source: "Try Weblate", Position: 3},
		},
	}
}

func (f *fakeGateway) GetTranslation(_ context.Context, project, subproject, lang string) (storage.TranslationDetail, error) {
	if project != f.detail.Project.Slug || subproject != f.detail.Subproject.Slug || lang != f.detail.Language.Code {
		return storage.TranslationDetail{}, storage.ErrNotFound
	}
	return f.detail, nil
}

func (f *fakeGateway) ListUnits(context.Context, int64) ([]storage.Unit, error) {
	return append([]storage.Unit(nil), f.units...), nil
}

func (f *fakeGateway) SaveUnitTarget(_ context.Context, unitID int64, target string, fuzzy bool, userID int64, at time.Time) (storage.Change, error) {
	f.saves = append(f.saves, savedTarget{unitID: unitID, target: target, fuzzy: fuzzy, userID: userID, at: at})
	return storage.Change{UnitID: unitID, Action: storage.ActionNew, Target: target}, nil
}

var testLocation = location{Project: "test", Subproject: "test", Language: "cs"}

func TestLoadSelectsUnit(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeGateway(), nil, nil)
	tests := []struct {
		name      string
		checksum  string
		wantIndex int
	}{
		{name: "first untranslated", wantIndex: 1},
		{name: "by checksum", checksum: "ccc", wantIndex: 2},
		{name: "checksum is case insensitive", checksum: " AAA ", wantIndex: 0},
	}
	for _, tc := range tests {
		st, err := svc.load(context.Background(), testLocation, tc.checksum)
		if err != nil {
			t.Fatalf("%s: load() error = %v", tc.name, err)
		}
		if st.Index != tc.wantIndex {
			t.Fatalf("%s: index = %d, want %d", tc.name, st.Index, tc.wantIndex)
		}
	}
}

func TestLoadFallsBackToFirstUnit(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	for i := range gw.units {
		gw.units[i].Translated = true
	}
	st, err := newService(gw, nil, nil).load(context.Background(), testLocation, "")
	if err != nil || st.Index != 0 {
		t.Fatalf("load() = %d, %v; want 0", st.Index, err)
	}

	gw.units = nil
	st, err = newService(gw, nil, nil).load(context.Background(), testLocation, "")
	if err != nil || st.Index != -1 {
		t.Fatalf("empty load() = %d, %v; want -1", st.Index, err)
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeGateway(), nil, nil)
	if _, err := svc.load(context.Background(), testLocation, "zzz"); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("unknown checksum kind = %q", apperrors.KindOf(err))
	}
	other := testLocation
	other.Language = "de"
	if _, err := svc.load(context.Background(), other, ""); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("unknown translation kind = %q", apperrors.KindOf(err))
	}
}

func TestSaveStoresTarget(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	gw := newFakeGateway()
	svc := newService(gw, nil, func() time.Time { return at })
	st, err := svc.save(context.Background(), testLocation, "bbb", "Děkujeme\r\n", true, 3)
	if err != nil {
		t.Fatalf("save() error = %v", err)
	}
	want := savedTarget{unitID: 11, target: "Děkujeme\n", fuzzy: true, userID: 3, at: at}
	if len(gw.saves) != 1 || gw.saves[0] != want {
		t.Fatalf("saves = %+v, want %+v", gw.saves, want)
	}
	unit, _ := st.current()
	if unit.Translated || !unit.Fuzzy {
		t.Fatalf("fuzzy unit state = %+v", unit)
	}
}

func TestSaveRejects(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	svc := newService(gw, nil, nil)
	if _, err := svc.save(context.Background(), testLocation, "bbb", "x", false, 0); apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("anonymous kind = %q", apperrors.KindOf(err))
	}
	if _, err := svc.save(context.Background(), testLocation, "", "x", false, 1); apperrors.HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("missing checksum status = %d", apperrors.HTTPStatus(err))
	}
	if len(gw.saves) != 0 {
		t.Fatalf("saves = %d, want 0", len(gw.saves))
	}
}

func signedIn(userID int64) modulehandler.Base {
	return modulehandler.NewBase(module.Dependencies{
		ResolveUserID: func(*http.Request) int64 { return userID },
	})
}

func TestEditorGetRendersUnit(t *testing.T) {
	t.Parallel()

	mount, err := New(WithGateway(newFakeGateway()), WithBase(modulehandler.NewTestBase())).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/translate/test/test/cs/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"Thank you for using Weblate.",
		`data-translate-url="/js/translate/11/"`,
		`data-detail-url="/js/detail/test/test/bbb/"`,
		`href="/translate/test/test/cs/?checksum=aaa"`,
		`href="/accounts/login/?next=`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, `name="target"`) {
		t.Fatal("anonymous visitor got the edit form")
	}
}

func TestEditorPost(t *testing.T) {
	t.Parallel()

	form := url.Values{"checksum": {"bbb"}, "target": {"Díky"}}
	newPost := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/translate/test/test/cs/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	gw := newFakeGateway()
	mount, _ := New(WithGateway(gw), WithBase(modulehandler.NewTestBase())).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, newPost())
	if rr.Code != http.StatusFound || !strings.HasPrefix(rr.Header().Get("Location"), "/accounts/login/?next=") {
		t.Fatalf("anonymous post = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if len(gw.saves) != 0 {
		t.Fatal("anonymous post saved")
	}

	mount, _ = New(WithGateway(gw), WithBase(signedIn(5))).Mount()
	rr = httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, newPost())
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/translate/test/test/cs/?checksum=bbb" {
		t.Fatalf("Location = %q", got)
	}
	if len(gw.saves) != 1 || gw.saves[0].userID != 5 || gw.saves[0].target != "Díky" {
		t.Fatalf("saves = %+v", gw.saves)
	}
}

func TestEditorRoutes(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
	mount, _ := New(WithGateway(newFakeGateway()), WithBase(modulehandler.NewTestBase())).Mount()
	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/translate/test/test/cs/?checksum=nope", http.StatusNotFound},
		{http.MethodGet, "/translate/test/test/de/", http.StatusNotFound},
		{http.MethodGet, "/translate/test/", http.StatusNotFound},
		{http.MethodDelete, "/translate/test/test/cs/", http.StatusMethodNotAllowed},
	} {
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
	if New().Healthy() || !New(WithGateway(newFakeGateway())).Healthy() {
		t.Fatal("unexpected health")
	}
}
