package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexusforge/starforge-engine/internal/application/initialstate"
	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

// NewInitCommand creates the `turnctl init` command: builds a starting
// GameState from config and writes it as a JSON snapshot.
func NewInitCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh starting game state to a JSON file",
		Long: `Builds the engine's starting GameState from the loaded GameConfig
(createInitialState) and writes it as a JSON snapshot for "turnctl resolve"
to consume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			s := initialstate.Create(cfg)
			doc := ToSnapshot(s)

			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal state: %w", err)
			}

			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			fmt.Printf("wrote starting state to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "state.json", "Path to write the starting state to")
	return cmd
}
