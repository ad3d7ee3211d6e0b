// Command turnctl is the engine's developer inspection tool: it builds a
// starting state, resolves a turn against a JSON order batch, writes the
// resulting state to a file, and prints the events. It is not a player-facing presentation
// layer — that stays out of scope.
package main

import (
	"github.com/nexusforge/starforge-engine/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
