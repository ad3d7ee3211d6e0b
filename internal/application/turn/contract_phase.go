package turn

import (
	"fmt"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// explorationPOICounts/explorationPOIWeights implement the weighted
// {2:40%, 3:40%, 4:20%} point-of-interest count spec §4.3 names.
var explorationPOICounts = []int{2, 3, 4}
var explorationPOIWeights = []float64{0.4, 0.4, 0.2}

// runContractPhase advances and, where due, completes every contract in
// ascending-id order (spec §4.3/§5), paying the completion bonus and
// applying the per-type completion effect before emitting the blanket
// completion event.
func runContractPhase(s state.GameState, rng shared.Rng, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()
	var events []event.Event

	for _, contractID := range contract.OrderedIDs(next.Contracts) {
		c := next.Contracts[contractID]
		if !c.IsActive() {
			continue
		}
		c = c.Advance()
		next.Contracts[contractID] = c
		if !c.IsDue() {
			continue
		}

		corp, corpOK := next.Corporations[c.AssignedCorpID()]
		if corpOK {
			corp = corp.WithCapitalDelta(formula.CompletionBonus(c.BPPerTurn(), c.Duration()))
		}

		completed := c.Complete(next.Turn)
		next.Contracts[contractID] = completed

		var typeEvents []event.Event
		switch completed.Type() {
		case data.ContractExploration:
			next, typeEvents = completeExploration(next, completed, corp, rng)
		case data.ContractGroundSurvey:
			next = completeGroundSurvey(next, completed)
		case data.ContractColonization:
			if corpOK {
				next, corp = completeColonization(next, completed, corp)
			}
		case data.ContractShipCommission:
			if corpOK {
				next = completeShipCommission(next, completed, corp, rng)
			}
		case data.ContractTradeRoute:
			// IsDue() never admits trade routes (sentinel turnsRemaining);
			// nothing to do here.
		}

		if corpOK {
			next.Corporations[c.AssignedCorpID()] = corp
		}

		var completionEvent event.Event
		next, completionEvent = mintEvent(next, event.CategoryContract, event.PriorityPositive,
			fmt.Sprintf("%s contract completed", completed.Type()),
			fmt.Sprintf("contract %s assigned to %s has completed", completed.ID(), completed.AssignedCorpID()),
			string(completed.ID()), string(completed.AssignedCorpID()))
		events = append(events, completionEvent)
		events = append(events, typeEvents...)
	}

	logger.Log("debug", "contract phase complete", map[string]interface{}{"turn": next.Turn, "events": len(events)})
	return next, events
}

// completeExploration reveals gain on the target sector, then generates
// 2-4 new OrbitScanned planets there (spec §4.3), each feature-enriched
// per the assigned corp's orbit-scan tier (spec §4.2).
func completeExploration(next state.GameState, c contract.Contract, corp corporation.Corporation, rng shared.Rng) (state.GameState, []event.Event) {
	target := c.Target()
	sector, ok := next.Galaxy.Sectors[target.SectorID]
	if !ok {
		return next, nil
	}

	gain := shared.IntRange(rng, 5, 15)
	next.Galaxy = next.Galaxy.WithSector(sector.WithExplorationGain(gain, next.Turn))

	countIdx := shared.WeightedPick(rng, explorationPOIWeights)
	if countIdx < 0 {
		countIdx = 0
	}
	count := explorationPOICounts[countIdx]
	tier := formula.OrbitScanTier(corp.Level())

	var events []event.Event
	for i := 0; i < count; i++ {
		var p planet.Planet
		next, p = generatePlanet(next, target.SectorID, tier, rng)
		next.Planets[p.ID()] = p

		var ev event.Event
		next, ev = mintEvent(next, event.CategoryExploration, event.PriorityPositive,
			"Planet discovered",
			fmt.Sprintf("%s discovered in sector %s", p.Name(), target.SectorID),
			string(p.ID()), string(target.SectorID))
		events = append(events, ev)
	}
	return next, events
}

var richnessTiers = []data.DepositRichness{
	data.RichnessPoor, data.RichnessModerate, data.RichnessRich, data.RichnessExceptional,
}

// generatePlanet mints and builds one freshly OrbitScanned planet with a
// uniformly-drawn type/size/deposits (spec §1: name-pool generation is out
// of scope, so names are derived from the minted id).
func generatePlanet(next state.GameState, sectorID ids.SectorID, tier int, rng shared.Rng) (state.GameState, planet.Planet) {
	idStr, nextSeq := next.Sequences.Planet.Next()
	next.Sequences.Planet = nextSeq
	id := ids.PlanetID(idStr)

	typeInfo := next.Tables.PlanetTypes[shared.IntRange(rng, 0, len(next.Tables.PlanetTypes)-1)]
	sizeInfo := next.Tables.PlanetSizes[shared.IntRange(rng, 0, len(next.Tables.PlanetSizes)-1)]

	depositCount := shared.IntRange(rng, 0, 2)
	deposits := make([]planet.Deposit, 0, depositCount)
	for i := 0; i < depositCount; i++ {
		dt := next.Tables.DepositTypes[shared.IntRange(rng, 0, len(next.Tables.DepositTypes)-1)].Type
		richness := richnessTiers[shared.IntRange(rng, 0, len(richnessTiers)-1)]
		deposits = append(deposits, planet.Deposit{Type: dt, Richness: richness})
	}

	name := fmt.Sprintf("Uncharted World %s", idStr)
	p := planet.New(id, name, sectorID, typeInfo.Type, sizeInfo.Size, typeInfo.BaseHabitability, deposits).WithOrbitScan(next.Turn)
	for i := 1; i < tier; i++ {
		p = p.WithFeatureAppended(planet.Feature{Name: fmt.Sprintf("Orbital Tier %d Insight", i+1)})
	}
	return next, p
}

// completeGroundSurvey reveals deposit richness on the target planet if it
// is still in a pre-survey state (spec §4.3).
func completeGroundSurvey(next state.GameState, c contract.Contract) state.GameState {
	target := c.Target()
	p, ok := next.Planets[target.PlanetID]
	if !ok {
		return next
	}
	if p.Status() == data.StatusOrbitScanned || p.Status() == data.StatusAccepted {
		next.Planets[target.PlanetID] = p.WithGroundSurvey(next.Turn)
	}
	return next
}

// completeColonization mints a new Colony on the target planet, assigns
// the completing corp's presence, and transitions the planet to Colonized
// (spec §4.3/§8 scenario S6).
func completeColonization(next state.GameState, c contract.Contract, corp corporation.Corporation) (state.GameState, corporation.Corporation) {
	target := c.Target()
	p, ok := next.Planets[target.PlanetID]
	if !ok {
		return next, corp
	}
	params, ok := c.ColonizationParams()
	if !ok {
		return next, corp
	}

	colonyTypeInfo := next.Tables.ColonyType(params.ColonyType)
	sizeInfo := next.Tables.PlanetSize(p.Size())

	idStr, nextSeq := next.Sequences.Colony.Next()
	next.Sequences.Colony = nextSeq

	newColony := colony.New(ids.ColonyID(idStr), p.ID(), p.SectorID(), params.ColonyType,
		sizeInfo.MaxPopLevel, colonyTypeInfo.StartingInfra, next.Turn)
	newColony = newColony.WithCorporationPresent(corp.ID())
	next.Colonies[newColony.ID()] = newColony

	next.Planets[p.ID()] = p.WithStatus(data.StatusColonized)
	corp = corp.WithPlanetPresent(p.ID())
	return next, corp
}

// completeShipCommission generates the commissioned ship at the target
// colony's sector and stations it — blueprint generation always yields
// UnderConstruction, so commission completion is the one place that
// overrides it to Stationed (spec §4.8).
func completeShipCommission(next state.GameState, c contract.Contract, corp corporation.Corporation, rng shared.Rng) state.GameState {
	target := c.Target()
	col, ok := next.Colonies[target.ColonyID]
	if !ok {
		return next
	}
	params, ok := c.ShipCommissionParams()
	if !ok {
		return next
	}

	idStr, nextSeq := next.Sequences.Ship.Next()
	next.Sequences.Ship = nextSeq

	sh := ship.Generate(ids.ShipID(idStr), fmt.Sprintf("Hull %s", idStr), ship.BlueprintInput{
		Role:         params.Role,
		SizeVariant:  params.SizeVariant,
		BuildingCorp: corp,
		HomeSectorID: col.SectorID(),
		BuiltTurn:    next.Turn,
		RNG:          rng,
	}, next.Tables).WithStatus(data.ShipStationed)

	next.Ships[sh.ID()] = sh
	return next
}
