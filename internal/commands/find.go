package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/discover"
	"github.com/yetamine/tooling-mvn/internal/output"
)

// FindCmd creates and returns the 'find' command.
func FindCmd() *cobra.Command {
	var flags *discoverFlags

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find Maven project directories",
		Long: `Find all Maven project directories matching the filters.

Each project path is printed on its own line, normalized to forward
slashes and relative to the working directory (prefixed with ./), so
the output feeds directly into scripts or 'mvnscout make --read'.

Examples:
  mvnscout find
  mvnscout find -d ~/workspace -i 'lib-*' -x '*-deprecated'
  mvnscout find -p node_modules`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			finder, err := discover.NewFinder(flags.options(cmd, cfg))
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			count := 0
			out := cmd.OutOrStdout()
			for path := range finder.Projects() {
				fmt.Fprintln(out, path)
				count++
			}

			output.Verbose(fmt.Sprintf("found %d projects", count))
		},
	}

	flags = addDiscoverFlags(cmd)
	return cmd
}
