package main

import (
	"os"

	"github.com/yetamine/tooling-mvn/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.FindCmd())
	rootCmd.AddCommand(commands.MakeCmd())
	rootCmd.AddCommand(commands.ExecCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
