package discover

import "io/fs"

// DefaultMarker is the build descriptor whose presence identifies a
// Maven project directory.
const DefaultMarker = "pom.xml"

// markerIn reports whether marker names a non-directory entry among the
// listed children. The test is purely structural; the marker content is
// never read. Symlinks count as files here, even dangling ones,
// matching what a plain directory listing reports.
func markerIn(entries []fs.DirEntry, marker string) bool {
	for _, entry := range entries {
		if entry.Name() == marker && !entry.IsDir() {
			return true
		}
	}
	return false
}
