package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates turnctl's root command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "turnctl",
		Short: "turnctl drives the turn-resolution engine from the command line",
		Long: `turnctl is a developer tool around the turn-resolution engine: it builds a
starting game state, resolves a turn against a batch of orders, and shows
the resulting state and events, all as plain JSON files on disk.

Examples:
  turnctl init --out state.json
  turnctl resolve --state state.json --orders orders.json --out state.json
  turnctl config show`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a game config YAML file (defaults to built-in tables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging during resolution")

	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
