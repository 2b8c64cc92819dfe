package dummy

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/translating.space/internal/services/mt"
)

func TestTranslateHelloWorld(t *testing.T) {
	t.Parallel()

	got, err := New().Translate(context.Background(), mt.Request{Text: "Hello, world!\n", TargetLanguage: "cs"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	want := []mt.Suggestion{
		{Text: "Nazdar světe!", Quality: 100, Service: "Dummy", Source: "Hello, world!\n"},
		{Text: "Ahoj světe!", Quality: 100, Service: "Dummy", Source: "Hello, world!\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Translate() mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateOtherTextIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := New().Translate(context.Background(), mt.Request{Text: "Goodbye", TargetLanguage: "cs"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Translate() = %#v, want empty list", got)
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	svc := New()
	for target, want := range map[string]bool{"cs": true, "de": true, "de-AT": true, "fr": false} {
		if got := mt.Supports(svc, "en", target); got != want {
			t.Fatalf("Supports(en, %s) = %v, want %v", target, got, want)
		}
	}
}

func TestRegistryOrderIsKept(t *testing.T) {
	t.Parallel()

	registry := mt.NewRegistry()
	if err := registry.Register(New()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	got, err := registry.Translate(context.Background(), "dummy", mt.Request{Text: "Hello, world!\n", TargetLanguage: "cs"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(got) != 2 || got[0].Text != "Nazdar světe!" || got[1].Text != "Ahoj světe!" {
		t.Fatalf("suggestions = %v", got)
	}
}
