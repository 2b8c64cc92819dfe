package checksum

import "testing"

func TestUnitKnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source, context, want string
	}{
		{"Hello, world!\n", "", "8e8e01af4a681264"},
		{"Hello, world!\n", "ctx", "a73455c54b2f20c5"},
		{"", "", "9c832c314c87b79d"},
		{"Thank you for using Weblate.", "", "191b979c71225c4b"},
	}
	for _, tc := range cases {
		if got := Unit(tc.source, tc.context); got != tc.want {
			t.Fatalf("Unit(%q, %q) = %q, want %q", tc.source, tc.context, got, tc.want)
		}
	}
}

func TestToHashRoundTrip(t *testing.T) {
	t.Parallel()

	h := Hash("Hello, world!\n", "")
	got, err := ToHash(FromHash(h))
	if err != nil {
		t.Fatalf("ToHash() error = %v", err)
	}
	if got != h {
		t.Fatalf("ToHash() = %d, want %d", got, h)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"8e8e01af4a681264", " 8E8E01AF4A681264 "} {
		if !Valid(value) {
			t.Fatalf("Valid(%q) = false, want true", value)
		}
	}
	for _, value := range []string{"", "8e8e", "zzzzzzzzzzzzzzzz", "8e8e01af4a68126400"} {
		if Valid(value) {
			t.Fatalf("Valid(%q) = true, want false", value)
		}
	}
}
