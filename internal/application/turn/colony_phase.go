package turn

import (
	"fmt"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/market"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runColonyPhase recomputes every colony's infra caps and attribute
// cascade, applies the growth tick, then rolls organic infrastructure
// growth using the previous turn's still-present sector market for
// shortage weighting (spec §4.4). Processed in ascending colony-id order
// for reproducibility, though spec §4.4 itself calls colonies independent.
func runColonyPhase(s state.GameState, rng shared.Rng, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()
	var events []event.Event

	for _, colonyID := range colony.OrderedIDs(next.Colonies) {
		c := next.Colonies[colonyID]
		p, hasPlanet := next.Planets[c.PlanetID()]

		baseHab := 0
		if hasPlanet {
			baseHab = next.Tables.PlanetType(p.Type()).BaseHabitability
		}

		deposits := func(domain data.InfraDomain) *int {
			if !hasPlanet {
				return nil
			}
			return p.BestMatchingDepositMaxInfraBonus(domain, next.Tables)
		}
		c = colony.RecomputeInfraCaps(c, deposits)

		ctx := colony.AttributeContext{BaseHabitabilityFromPlanetType: baseHab, DebtTokens: next.DebtTokens}
		c = colony.RecomputeAttributes(c, ctx)

		popBefore := c.PopulationLevel()
		c = colony.ApplyGrowthTick(c)
		popAfter := c.PopulationLevel()

		shortages := sectorShortageDomains(next.SectorMarkets[c.SectorID()])
		c, _ = colony.ApplyOrganicGrowth(c, rng, shortages)

		next.Colonies[colonyID] = c
		attrs := c.Attributes()

		if popAfter > popBefore {
			var ev event.Event
			next, ev = mintEvent(next, event.CategoryColony, event.PriorityPositive,
				"Population grew",
				fmt.Sprintf("colony %s grew to population level %d", colonyID, popAfter),
				string(colonyID))
			events = append(events, ev)
		} else if popAfter < popBefore {
			var ev event.Event
			next, ev = mintEvent(next, event.CategoryColony, event.PriorityWarning,
				"Population declined",
				fmt.Sprintf("colony %s fell to population level %d", colonyID, popAfter),
				string(colonyID))
			events = append(events, ev)
		}

		if attrs.Stability <= 2 {
			var ev event.Event
			next, ev = mintEvent(next, event.CategoryColony, event.PriorityWarning,
				"Critically low stability",
				fmt.Sprintf("colony %s stability is critically low (%d)", colonyID, attrs.Stability),
				string(colonyID))
			events = append(events, ev)
		}
		if attrs.QualityOfLife <= 2 {
			var ev event.Event
			next, ev = mintEvent(next, event.CategoryColony, event.PriorityWarning,
				"Critically low quality of life",
				fmt.Sprintf("colony %s quality of life is critically low (%d)", colonyID, attrs.QualityOfLife),
				string(colonyID))
			events = append(events, ev)
		}
	}

	logger.Log("debug", "colony phase complete", map[string]interface{}{"turn": next.Turn, "events": len(events)})
	return next, events
}

// sectorShortageDomains converts a sector's market state into the
// domain-keyed shortage map colony.ApplyOrganicGrowth expects, via
// domainResource. A sector with no recorded market state (first turn)
// yields an empty map — no domain is weighted 3x.
func sectorShortageDomains(m market.SectorMarketState) map[data.InfraDomain]bool {
	shortage := map[market.Resource]bool{}
	for _, r := range m.ShortageResources() {
		shortage[r] = true
	}
	out := map[data.InfraDomain]bool{}
	for domain, resource := range domainResource {
		if shortage[resource] {
			out[domain] = true
		}
	}
	return out
}
