package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

// NewConfigCommand creates the `turnctl config` command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective game configuration",
		Long: `Configuration is loaded from multiple sources with priority:
1. Environment variables (STARFORGE_* prefix)
2. Config file (--config)
3. Built-in defaults

Example:
  turnctl config show`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Printf("warning: failed to load config: %v\n", err)
				fmt.Println("using built-in defaults.")
				cfg = config.Defaults()
			}

			describe := cfg.Describe()
			keys := make([]string, 0, len(describe))
			for k := range describe {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-16s %s\n", k, describe[k])
			}
			return nil
		},
	}
}
