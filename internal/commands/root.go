package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/output"
)

// Version is the mvnscout release version.
const Version = "0.4.0"

// RootCmd creates and returns the root command for the mvnscout CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mvnscout",
		Short: "Helps maintaining Maven project sets",
		Long: `mvnscout discovers Maven projects in a directory tree and works with
the result as a set.

A directory counts as a project when it contains a pom.xml. Discovery
prunes common non-project directories (.git, target, src, ...) and
stops at the first project on each branch, so nested modules are left
to the project's own build.

Put defaults into a ` + config.FileName + ` file in your workspace root to
avoid repeating filter flags.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			if IsWorkspaceConfigured() {
				output.Verbose("using workspace configuration from " + config.FileName)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// IsWorkspaceConfigured checks if the current directory carries a
// mvnscout workspace configuration file with content.
func IsWorkspaceConfigured() bool {
	data, err := os.ReadFile(config.FileName)
	if err != nil {
		return false
	}

	var cfg struct {
		Discover map[string]any `yaml:"discover"`
		Manifest map[string]any `yaml:"manifest"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return false
	}

	return len(cfg.Discover) > 0 || len(cfg.Manifest) > 0
}
