package discover

import (
	"path/filepath"
	"strings"
)

// Normalize converts a filesystem path to forward-slash form for stable,
// portable output. Native separators become slashes and relative paths
// get an explicit "./" prefix. No other canonicalization happens: no
// case folding, no symlink resolution, no ".." collapsing.
//
// Normalize is idempotent.
func Normalize(path string) string {
	slashed := filepath.ToSlash(path)
	if filepath.IsAbs(path) || strings.HasPrefix(slashed, "./") {
		return slashed
	}
	return "./" + slashed
}
