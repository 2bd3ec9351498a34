package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/output"
	"github.com/yetamine/tooling-mvn/internal/runner"
)

// ExecCmd creates and returns the 'exec' command.
func ExecCmd() *cobra.Command {
	var flags *discoverFlags
	var quiet bool

	cmd := &cobra.Command{
		Use:   "exec -- command [args...]",
		Short: "Run a command in every found project",
		Long: `Run a command in every found project directory.

Output lines are prefixed with the project path so interleaved runs
stay readable. Failing projects do not stop the run; they are reported
together at the end and make the overall run fail.

Examples:
  mvnscout exec -- mvn clean install
  mvnscout exec -q -- mvn -q verify
  mvnscout exec -i 'lib-*' -- git status --short`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			projects, err := collectProjects(flags.options(cmd, cfg))
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if len(projects) == 0 {
				output.Info("No projects found")
				output.Step("check --dir, or relax --include/--exclude")
				return
			}

			r := runner.New(&runner.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err := r.Each(context.Background(), projects, quiet, args[0], args[1:]...); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Completed in %d projects", len(projects)))
		},
	}

	flags = addDiscoverFlags(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Show a spinner per project instead of streaming output")

	return cmd
}
