package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/discover"
	"github.com/yetamine/tooling-mvn/internal/output"
)

// discoverFlags carries the traversal flags shared by find, make and
// exec.
type discoverFlags struct {
	dir      string
	withRoot bool
	include  []string
	exclude  []string
	prune    []string
}

func addDiscoverFlags(cmd *cobra.Command) *discoverFlags {
	f := &discoverFlags{}
	cmd.Flags().StringVarP(&f.dir, "dir", "d", ".", "The directory where to search for the projects")
	cmd.Flags().StringArrayVarP(&f.include, "include", "i", nil, "Glob pattern for project names to include (repeatable)")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "Glob pattern for project names to exclude (repeatable)")
	cmd.Flags().StringArrayVarP(&f.prune, "prune", "p", nil, "Directory name pattern to avoid searching in; appends to the built-in set (repeatable)")
	cmd.Flags().BoolVarP(&f.withRoot, "with-root", "w", false, "Let --dir itself qualify as a project")
	return f
}

// options merges flags over workspace config over built-ins. Unset
// pattern flags must not shadow config, and an absent pattern list must
// stay absent rather than becoming empty.
func (f *discoverFlags) options(cmd *cobra.Command, cfg *config.Config) discover.Options {
	opts := discover.Options{
		Root:     f.dir,
		WithRoot: f.withRoot,
		Marker:   cfg.Discover.Marker,
		Warn: func(path string, err error) {
			output.Warn(fmt.Sprintf("cannot read %s: %v", path, err))
		},
	}

	opts.Include = cfg.Discover.Include
	if cmd.Flags().Changed("include") {
		opts.Include = f.include
	}
	opts.Exclude = cfg.Discover.Exclude
	if cmd.Flags().Changed("exclude") {
		opts.Exclude = f.exclude
	}

	base := cfg.Discover.Prune
	if base == nil {
		base = discover.DefaultPrune
	}
	opts.Prune = base
	if cmd.Flags().Changed("prune") {
		opts.Prune = append(append([]string{}, base...), f.prune...)
	}

	return opts
}

// collectProjects runs a full discovery walk and returns the result.
func collectProjects(opts discover.Options) ([]string, error) {
	finder, err := discover.NewFinder(opts)
	if err != nil {
		return nil, err
	}

	var projects []string
	for path := range finder.Projects() {
		projects = append(projects, path)
	}
	return projects, nil
}
