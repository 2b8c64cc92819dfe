package changeview

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

func TestRows(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	got := Rows([]storage.Change{
		{
			Action:         storage.ActionNew,
			Target:         "Ahoj světe!",
			Username:       "testuser",
			ProjectSlug:    "test",
			SubprojectSlug: "test",
			LanguageCode:   "cs",
			UnitChecksum:   "abc123",
			CreatedAt:      at,
		},
		{
			Action:         storage.ActionComplete,
			ProjectSlug:    "test",
			SubprojectSlug: "test",
			LanguageCode:   "cs",
			CreatedAt:      at,
		},
		{Action: storage.ChangeAction(99), CreatedAt: at},
	}, nil, "en")

	want := []webtemplates.ChangeRow{
		{
			When:        "2026-03-04 05:06",
			User:        "testuser",
			Action:      "change.action.new",
			Target:      "Ahoj světe!",
			Translation: "test / test / Czech",
			URL:         "/translate/test/test/cs/?checksum=abc123",
		},
		{
			When:        "2026-03-04 05:06",
			User:        "changes.anonymous",
			Action:      "change.action.complete",
			Translation: "test / test / Czech",
			URL:         "/translate/test/test/cs/",
		},
		{
			When:   "2026-03-04 05:06",
			User:   "changes.anonymous",
			Action: "change.action.unknown",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Rows mismatch (-want +got):\n%s", diff)
	}
}
