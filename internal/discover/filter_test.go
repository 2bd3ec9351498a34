package discover

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGlobFilter_Unconstrained(t *testing.T) {
	f, err := NewGlobFilter(nil, nil)
	if err != nil {
		t.Fatalf("NewGlobFilter() error = %v", err)
	}

	for _, value := range []string{"", "anything", "lib-core", ".git"} {
		if !f.Matches(value) {
			t.Errorf("Matches(%q) = false, want true", value)
		}
	}
}

func TestGlobFilter_ExcludePrecedence(t *testing.T) {
	f, err := NewGlobFilter([]string{"lib-*"}, []string{"*-internal"})
	if err != nil {
		t.Fatalf("NewGlobFilter() error = %v", err)
	}

	tests := []struct {
		value string
		want  bool
	}{
		{"lib-core", true},
		{"lib-core-internal", false}, // include matches, exclude wins
		{"app-core", false},          // include misses
		{"app-internal", false},      // both stages reject
	}

	for _, tt := range tests {
		if got := f.Matches(tt.value); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGlobFilter_EmptyIncludeMatchesNothing(t *testing.T) {
	// A present-but-empty include set is stricter than an absent one.
	f, err := NewGlobFilter([]string{}, nil)
	if err != nil {
		t.Fatalf("NewGlobFilter() error = %v", err)
	}

	for _, value := range []string{"", "anything", "lib-core"} {
		if f.Matches(value) {
			t.Errorf("Matches(%q) = true, want false", value)
		}
	}
}

func TestGlobFilter_AbsentIncludeDependsOnExclude(t *testing.T) {
	f, err := NewGlobFilter(nil, []string{"target", "bin"})
	if err != nil {
		t.Fatalf("NewGlobFilter() error = %v", err)
	}

	if !f.Matches("lib-core") {
		t.Error("Matches(lib-core) = false, want true")
	}
	if f.Matches("target") {
		t.Error("Matches(target) = true, want false")
	}
}

func TestGlobFilter_GlobSyntax(t *testing.T) {
	f, err := NewGlobFilter([]string{"mod-?", "a[bc]d"}, nil)
	if err != nil {
		t.Fatalf("NewGlobFilter() error = %v", err)
	}

	tests := []struct {
		value string
		want  bool
	}{
		{"mod-1", true},
		{"mod-12", false},
		{"abd", true},
		{"acd", true},
		{"aed", false},
	}

	for _, tt := range tests {
		if got := f.Matches(tt.value); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNewGlobFilter_BadPattern(t *testing.T) {
	// a*[ would slip past a plain filepath.Match probe: Match fails the
	// a chunk first and never parses the unterminated class. Malformed
	// patterns must fail construction, not silently match nothing.
	bad := []string{"[", "[a-", "a*[", "a[bc", "[]", "[a-]"}
	if runtime.GOOS != "windows" {
		bad = append(bad, `a\`, `[a\`)
	}

	for _, pattern := range bad {
		if _, err := NewGlobFilter([]string{pattern}, nil); !errors.Is(err, filepath.ErrBadPattern) {
			t.Errorf("include %q error = %v, want ErrBadPattern", pattern, err)
		}
		if _, err := NewGlobFilter(nil, []string{pattern}); !errors.Is(err, filepath.ErrBadPattern) {
			t.Errorf("exclude %q error = %v, want ErrBadPattern", pattern, err)
		}
	}
}

func TestNewGlobFilter_ValidPatterns(t *testing.T) {
	valid := []string{"*", "?", "a*[bc]d", "[a-z]*", "[^x]", "mod-?"}

	for _, pattern := range valid {
		if _, err := NewGlobFilter([]string{pattern}, nil); err != nil {
			t.Errorf("NewGlobFilter(%q) error = %v", pattern, err)
		}
	}
}

func TestNewPruneFilter(t *testing.T) {
	f, err := NewPruneFilter([]string{".git", "target"})
	if err != nil {
		t.Fatalf("NewPruneFilter() error = %v", err)
	}

	if f.Matches("target") {
		t.Error("Matches(target) = true, want false (pruned)")
	}
	if !f.Matches("module-a") {
		t.Error("Matches(module-a) = false, want true")
	}

	// An emptied prune set keeps everything.
	f, err = NewPruneFilter(nil)
	if err != nil {
		t.Fatalf("NewPruneFilter() error = %v", err)
	}
	if !f.Matches(".git") {
		t.Error("Matches(.git) = false, want true with no prune patterns")
	}
}
