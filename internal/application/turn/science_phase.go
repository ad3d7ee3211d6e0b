package turn

import (
	"fmt"

	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runSciencePhase lets every Science-type corp draw at most one discovery
// per turn from the level-gated discovery pool (SPEC_FULL.md §C.1): the
// highest-tier discovery the corp can both afford and qualify for that the
// empire hasn't already unlocked.
func runSciencePhase(s state.GameState, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()
	var events []event.Event

	unlocked := map[string]bool{}
	for _, id := range next.UnlockedDiscoveries {
		unlocked[string(id)] = true
	}

	for _, corpID := range corporation.OrderedForProcessing(next.Corporations) {
		corp := next.Corporations[corpID]
		if corp.Type() != data.CorpScience {
			continue
		}

		best, ok := bestAffordableDiscovery(next, corp, unlocked)
		if !ok {
			continue
		}

		corp = corp.WithCapitalDelta(-best.Cost)
		next.Corporations[corpID] = corp
		next.UnlockedDiscoveries = append(next.UnlockedDiscoveries, best.ID)
		unlocked[string(best.ID)] = true
		next.EmpireBonuses[best.BonusTarget] = next.EmpireBonuses[best.BonusTarget] + best.BonusValue

		var ev event.Event
		next, ev = mintEvent(next, event.CategoryScience, event.PriorityPositive,
			"Discovery unlocked",
			fmt.Sprintf("%s unlocked by %s: %s", best.Name, corpID, best.BonusTarget),
			string(corpID), string(best.ID))
		events = append(events, ev)
	}

	logger.Log("debug", "science phase complete", map[string]interface{}{"turn": next.Turn, "events": len(events)})
	return next, events
}

// bestAffordableDiscovery returns the highest min-corp-level discovery the
// corp can afford and has not already been unlocked by the empire.
func bestAffordableDiscovery(next state.GameState, corp corporation.Corporation, unlocked map[string]bool) (data.Discovery, bool) {
	var best data.Discovery
	found := false
	for _, d := range next.Tables.Discoveries {
		if unlocked[string(d.ID)] {
			continue
		}
		if d.MinCorpLevel > corp.Level() {
			continue
		}
		if corp.Capital() < d.Cost {
			continue
		}
		if !found || d.MinCorpLevel > best.MinCorpLevel {
			best = d
			found = true
		}
	}
	return best, found
}
