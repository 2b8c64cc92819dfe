package validate

import (
	"strings"
	"testing"

	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantKey string
	}{
		{name: "plain address", value: "ada@example.com"},
		{name: "surrounding space", value: "  ada@example.com "},
		{name: "blank", value: "  ", wantKey: KeyRequired},
		{name: "missing at", value: "ada.example.com", wantKey: KeyEmailInvalid},
		{name: "display name", value: "Ada <ada@example.com>", wantKey: KeyEmailInvalid},
		{name: "two addresses", value: "a@example.com, b@example.com", wantKey: KeyEmailInvalid},
		{name: "too long", value: strings.Repeat("a", 250) + "@example.com", wantKey: KeyTooLong},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Email("email", tc.value)
			if tc.wantKey == "" {
				if err != nil {
					t.Fatalf("Email(%q) = %v, want nil", tc.value, err)
				}
				return
			}
			if got := apperrors.LocalizationKey(err); got != tc.wantKey {
				t.Fatalf("Email(%q) key = %q, want %q", tc.value, got, tc.wantKey)
			}
			fields := apperrors.Fields(err)
			if len(fields) != 1 || fields[0].Field != "email" {
				t.Fatalf("Email(%q) fields = %+v", tc.value, fields)
			}
		})
	}
}

func TestMaxRunesCountsCharacters(t *testing.T) {
	t.Parallel()

	if err := MaxRunes("name", strings.Repeat("č", 30), 30); err != nil {
		t.Fatalf("30 runes rejected: %v", err)
	}
	if err := MaxRunes("name", strings.Repeat("č", 31), 30); apperrors.LocalizationKey(err) != KeyTooLong {
		t.Fatalf("31 runes accepted: %v", err)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	if err := Required("subject", "hi"); err != nil {
		t.Fatalf("Required() = %v", err)
	}
	if err := Required("subject", " \t"); apperrors.LocalizationKey(err) != KeyRequired {
		t.Fatalf("Required(blank) = %v", err)
	}
}
