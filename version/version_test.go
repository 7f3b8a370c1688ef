package version

import "testing"

func TestStringReturnsDefaultVersion(t *testing.T) {
	if got := String(); got != "v0.1.0" {
		t.Fatalf("expected v0.1.0, got %s", got)
	}
}
