package dirflat

import (
	"strings"
	"testing"
)

func TestSummaryPlain(t *testing.T) {
	s := Summary{
		Message: "Flattened /A",
		Renamed: []string{"/A/F -> /A/a - f", "/A/G/H -> /A/G/a - g - h"},
		Skipped: []string{"/A/.dotfile"},
	}

	got := s.Plain()
	want := "Flattened /A\n/A/F -> /A/a - f\n/A/G/H -> /A/G/a - g - h\n"
	if got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
	if strings.Contains(got, ".dotfile") {
		t.Error("Plain() should not include skipped entries")
	}
}

func TestSummaryPlainEmpty(t *testing.T) {
	if got := (Summary{}).Plain(); got != "" {
		t.Errorf("Plain() on empty summary = %q, want empty", got)
	}
}

func TestRelativizeKeepsForeignPaths(t *testing.T) {
	s := Summary{Renamed: []string{"/outside/a -> /outside/b"}}
	s.relativize()

	if s.Renamed[0] != "/outside/a -> /outside/b" {
		t.Errorf("relativize() rewrote a path outside the working directory: %q", s.Renamed[0])
	}
}
