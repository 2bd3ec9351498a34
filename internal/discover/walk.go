package discover

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// DefaultPrune lists directory names that are never worth descending
// into when searching for projects.
var DefaultPrune = []string{".git", ".svn", "bin", "doc", "src", "target"}

// WarnFunc receives non-fatal traversal problems, typically a directory
// that could not be listed. The traversal continues after reporting,
// treating the directory as having no descendible children.
type WarnFunc func(path string, err error)

// Options configures a Finder.
type Options struct {
	Root     string   // directory to search (default ".")
	WithRoot bool     // let the root itself qualify as a project
	Include  []string // include patterns for project names (nil = all)
	Exclude  []string // exclude patterns for project names (nil = none)
	Prune    []string // directory names never descended into (nil = DefaultPrune)
	Marker   string   // project marker file name (default DefaultMarker)
	Warn     WarnFunc // sink for non-fatal traversal errors (nil = discard)
}

// Finder walks a directory tree top-down and reports project
// directories. Configuration problems (missing root, malformed
// patterns) surface from NewFinder, before any path is produced.
type Finder struct {
	root     string
	withRoot bool
	marker   string
	filter   *GlobFilter
	prune    *GlobFilter
	warn     WarnFunc
}

// NewFinder validates the configuration and builds a Finder.
func NewFinder(opts Options) (*Finder, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot open root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	filter, err := NewGlobFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	prunePatterns := opts.Prune
	if prunePatterns == nil {
		prunePatterns = DefaultPrune
	}
	prune, err := NewPruneFilter(prunePatterns)
	if err != nil {
		return nil, err
	}

	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	warn := opts.Warn
	if warn == nil {
		warn = func(string, error) {}
	}

	return &Finder{
		root:     root,
		withRoot: opts.WithRoot,
		marker:   marker,
		filter:   filter,
		prune:    prune,
		warn:     warn,
	}, nil
}

// Projects returns a lazy, single-use sequence of normalized project
// paths. Each call starts a fresh walk. A project directory is yielded
// at most once and never descended into, so no yielded path nests
// inside another. Breaking out of the range stops the walk; no
// directory handle stays open between yields.
func (f *Finder) Projects() iter.Seq[string] {
	return func(yield func(string) bool) {
		f.walk(f.root, true, yield)
	}
}

// walk visits dir and its survivors depth-first. It returns false once
// the consumer stops pulling.
func (f *Finder) walk(dir string, isRoot bool, yield func(string) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		f.warn(dir, err)
		return true
	}

	// The root is only eligible to qualify when WithRoot is set; its
	// children are considered either way.
	if (!isRoot || f.withRoot) && markerIn(entries, f.marker) && f.filter.Matches(filepath.Base(dir)) {
		return yield(Normalize(dir))
	}

	// Build the surviving child list before descending; pruned names
	// are never visited.
	var children []string
	for _, entry := range entries {
		name := entry.Name()
		if !f.isDir(dir, entry) || !f.prune.Matches(name) {
			continue
		}
		children = append(children, name)
	}

	for _, name := range children {
		if !f.walk(filepath.Join(dir, name), false, yield) {
			return false
		}
	}
	return true
}

// isDir resolves whether an entry can be descended into, following
// directory symlinks like the traversal itself does. Cycles through
// symlinks are not detected beyond what the filesystem reports.
func (f *Finder) isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
