package discover

import (
	"fmt"
	"path/filepath"
	"runtime"
	"unicode/utf8"
)

// GlobFilter composes an include and an exclude glob pattern set into a
// membership predicate.
//
// A nil pattern set means "no constraint": a nil include passes every
// value, a nil exclude excludes nothing. A non-nil empty include is
// stricter than nil: the include stage is present but matches nothing,
// so no value passes. Exclude takes precedence: a value matching any
// exclude pattern is rejected even when include matches it.
type GlobFilter struct {
	include []string
	exclude []string
}

// NewGlobFilter builds a filter from include and exclude pattern sets.
// Patterns use shell glob syntax (*, ?, [...]) and are matched against
// the whole tested value, not path segments. Malformed patterns are
// rejected here, so a bad filter never reaches a traversal.
func NewGlobFilter(include, exclude []string) (*GlobFilter, error) {
	if err := checkPatterns(include); err != nil {
		return nil, fmt.Errorf("invalid include pattern %w", err)
	}
	if err := checkPatterns(exclude); err != nil {
		return nil, fmt.Errorf("invalid exclude pattern %w", err)
	}
	return &GlobFilter{include: include, exclude: exclude}, nil
}

// NewPruneFilter builds the single-set filter used to gate descent:
// a name passes unless it matches one of the given patterns.
func NewPruneFilter(patterns []string) (*GlobFilter, error) {
	f, err := NewGlobFilter(nil, patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid prune pattern %w", err)
	}
	return f, nil
}

// Matches reports whether value passes the filter.
func (f *GlobFilter) Matches(value string) bool {
	return matchesAny(value, f.include, true) && !matchesAny(value, f.exclude, false)
}

// matchesAny reports whether value matches at least one pattern from
// the set. A nil set produces absent instead.
func matchesAny(value string, patterns []string, absent bool) bool {
	if patterns == nil {
		return absent
	}
	for _, pattern := range patterns {
		// The whole pattern was validated at construction, so Match
		// cannot fail here.
		if ok, _ := filepath.Match(pattern, value); ok {
			return true
		}
	}
	return false
}

// checkPatterns rejects patterns filepath.Match would report
// ErrBadPattern for. Match validates lazily while matching and stops at
// the first chunk that fails to match, so probing it with a sample
// value misses errors in the parts it never reaches; the scan here
// covers the whole pattern.
func checkPatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !validPattern(pattern) {
			return fmt.Errorf("%q: %w", pattern, filepath.ErrBadPattern)
		}
	}
	return nil
}

func validPattern(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if runtime.GOOS != "windows" {
				i++
				if i == len(pattern) {
					return false
				}
			}
		case '[':
			rest, ok := validClass(pattern[i+1:])
			if !ok {
				return false
			}
			i = len(pattern) - len(rest) - 1
		}
	}
	return true
}

// validClass consumes a character class body, following the opening
// bracket: optional negation, then one or more elements or lo-hi
// ranges, closed by an unescaped ']'.
func validClass(chunk string) (rest string, ok bool) {
	if len(chunk) > 0 && chunk[0] == '^' {
		chunk = chunk[1:]
	}
	for nrange := 0; ; nrange++ {
		if len(chunk) > 0 && chunk[0] == ']' && nrange > 0 {
			return chunk[1:], true
		}
		if chunk, ok = classAtom(chunk); !ok {
			return chunk, false
		}
		if chunk[0] == '-' {
			if chunk, ok = classAtom(chunk[1:]); !ok {
				return chunk, false
			}
		}
	}
}

// classAtom consumes one possibly escaped class element. The element
// must be a valid rune and must not end the pattern, since at least the
// closing ']' has to follow.
func classAtom(chunk string) (rest string, ok bool) {
	if len(chunk) == 0 || chunk[0] == '-' || chunk[0] == ']' {
		return chunk, false
	}
	if chunk[0] == '\\' && runtime.GOOS != "windows" {
		chunk = chunk[1:]
		if len(chunk) == 0 {
			return chunk, false
		}
	}
	r, n := utf8.DecodeRuneInString(chunk)
	if r == utf8.RuneError && n == 1 {
		return chunk, false
	}
	rest = chunk[n:]
	if len(rest) == 0 {
		return rest, false
	}
	return rest, true
}
