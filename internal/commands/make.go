package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/discover"
	"github.com/yetamine/tooling-mvn/internal/generator"
	"github.com/yetamine/tooling-mvn/internal/input"
	"github.com/yetamine/tooling-mvn/internal/manifest"
	"github.com/yetamine/tooling-mvn/internal/output"
)

// MakeCmd creates and returns the 'make' command.
func MakeCmd() *cobra.Command {
	var flags *discoverFlags
	var coordinates, name, outPath, templatePath string
	var force, read, dryRun bool

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Make a Maven reactor POM for all found projects",
		Long: `Make a Maven reactor (aggregator) POM listing all found projects as
modules.

The GAV coordinates use G:A:V syntax and may omit a part to use a
built-in default (` + manifest.DefaultCoordinates.String() + `).

Examples:
  mvnscout make -c com.example:parent:1.0.0 -n "Example Reactor"
  mvnscout make -o reactor-pom.xml --force
  mvnscout find -d services | mvnscout make --read -x '*-sandbox'`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if !cmd.Flags().Changed("coordinates") && cfg.Manifest.Coordinates != "" {
				coordinates = cfg.Manifest.Coordinates
			}
			if !cmd.Flags().Changed("name") && cfg.Manifest.Name != "" {
				name = cfg.Manifest.Name
			}
			if !cmd.Flags().Changed("output") && cfg.Manifest.Output != "" {
				outPath = cfg.Manifest.Output
			}

			coords, err := manifest.ParseGAV(coordinates, manifest.DefaultCoordinates)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			opts := flags.options(cmd, cfg)

			var modules []string
			if read {
				filter, ferr := discover.NewGlobFilter(opts.Include, opts.Exclude)
				if ferr != nil {
					output.Error(ferr.Error())
					os.Exit(1)
				}
				modules, err = readModules(cmd.InOrStdin(), filter)
			} else {
				modules, err = collectProjects(opts)
			}
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("listing %d modules", len(modules)))

			gen := manifest.NewGenerator()
			ops, err := gen.Generate(manifest.Options{
				Coordinates: coords,
				Name:        name,
				Modules:     modules,
				Output:      outPath,
				Template:    templatePath,
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			// Offer an interactive way out of the conflict error when a
			// terminal is attached. With --read, stdin carries data and
			// cannot also answer prompts.
			if !force && !dryRun && !read && isatty.IsTerminal(os.Stdin.Fd()) {
				if _, err := os.Stat(outPath); err == nil {
					force = input.Confirm(fmt.Sprintf("Overwrite %s?", outPath), false)
				}
			}

			if err := generator.Execute(ctx, ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
			}); err != nil {
				if strings.Contains(err.Error(), "already exists") {
					output.Error(err.Error())
					output.Info("Tip: use --force to overwrite the existing file")
					os.Exit(1)
				}
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				output.Info("Dry-run complete. Run without --dry-run to write the file.")
				return
			}
			output.Success(fmt.Sprintf("Created reactor POM: %s (%d modules)", outPath, len(modules)))
		},
	}

	flags = addDiscoverFlags(cmd)
	cmd.Flags().StringVarP(&coordinates, "coordinates", "c", "::", "The GAV coordinates of the generated POM in G:A:V syntax")
	cmd.Flags().StringVarP(&name, "name", "n", "", "The name of the project")
	cmd.Flags().StringVarP(&outPath, "output", "o", "pom.xml", "The target file to store the result in")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if existing")
	cmd.Flags().BoolVarP(&read, "read", "r", false, "Read the project list from stdin instead of finding it, still applying --include and --exclude")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without creating the file")
	cmd.Flags().StringVar(&templatePath, "template", "", "Custom POM template overriding the built-in one")

	return cmd
}

// readModules reads one module path per line, skipping blanks and
// filtering by the basename like discovery does.
func readModules(r io.Reader, filter *discover.GlobFilter) ([]string, error) {
	var modules []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if filter.Matches(path.Base(strings.TrimSuffix(line, "/"))) {
			modules = append(modules, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading module list: %w", err)
	}

	return modules, nil
}
