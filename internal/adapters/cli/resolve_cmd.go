package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nexusforge/starforge-engine/internal/application/turn"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// NewResolveCommand creates the `turnctl resolve` command: loads a JSON
// game state and a JSON order batch, runs turn.ResolveTurn, and writes the
// resulting state plus prints the event list.
func NewResolveCommand() *cobra.Command {
	var (
		statePath  string
		ordersPath string
		outPath    string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one turn against a state snapshot and an order batch",
		Long: `Loads --state as a GameState snapshot and --orders as a batch of pending
orders, runs the turn pipeline once, writes the resulting state to --out,
and prints the turn's events to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			correlationID := uuid.New().String()
			logger := NewConsoleLogger(correlationID)

			stateRaw, err := os.ReadFile(statePath)
			if err != nil {
				return fmt.Errorf("read state: %w", err)
			}
			var doc StateDocument
			if err := json.Unmarshal(stateRaw, &doc); err != nil {
				return fmt.Errorf("parse state: %w", err)
			}
			s := FromSnapshot(doc)

			var pending []interface{}
			if ordersPath != "" {
				ordersRaw, err := os.ReadFile(ordersPath)
				if err != nil {
					return fmt.Errorf("read orders: %w", err)
				}
				pending, err = DecodeOrders(ordersRaw)
				if err != nil {
					return err
				}
			}

			if verbose {
				logger.Log("info", "resolving turn", map[string]interface{}{
					"turn": s.Turn, "pending_orders": len(pending),
				})
			}

			var phaseLogger shared.Logger = shared.NoOpLogger{}
			if verbose {
				phaseLogger = logger
			}
			next, events, domainErr := turn.ResolveTurn(s, pending, shared.Seeded(seed), phaseLogger, shared.NewRealClock())
			if domainErr != nil {
				return fmt.Errorf("resolve turn: %s: %s", domainErr.Kind(), domainErr.Error())
			}

			outRaw, err := json.MarshalIndent(ToSnapshot(next), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result state: %w", err)
			}
			if err := os.WriteFile(outPath, outRaw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			eventsRaw, err := json.MarshalIndent(events, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal events: %w", err)
			}
			fmt.Printf("resolved turn %d -> %d, %d event(s)\n", s.Turn, next.Turn, len(events))
			fmt.Println(string(eventsRaw))
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "state.json", "Path to the input state snapshot")
	cmd.Flags().StringVar(&ordersPath, "orders", "", "Path to a JSON order batch (optional)")
	cmd.Flags().StringVar(&outPath, "out", "state.json", "Path to write the resulting state to")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for this turn's stochastic phases")
	return cmd
}
