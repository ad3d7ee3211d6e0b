package turn

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/market"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runMarketPhase recomputes every sector's resource balances (spec §4.5):
// sums extraction/manufacturing production and population consumption
// across each sector's colonies, folds in active trade-route transfers at
// 50% efficiency, then clears and re-derives the transient quality-of-life
// shortage modifiers the next turn's colony phase reads back.
func runMarketPhase(s state.GameState, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()

	for id, c := range next.Colonies {
		next.Colonies[id] = c.WithModifiers(modifier.ClearBySourceType(c.Modifiers(), modifier.SourceShortage))
	}

	bySector := map[ids.SectorID][]ids.ColonyID{}
	for _, colonyID := range colony.OrderedIDs(next.Colonies) {
		c := next.Colonies[colonyID]
		bySector[c.SectorID()] = append(bySector[c.SectorID()], colonyID)
	}

	sectorIDs := make([]ids.SectorID, 0, len(bySector))
	for sid := range bySector {
		sectorIDs = append(sectorIDs, sid)
	}
	sort.Slice(sectorIDs, func(i, j int) bool { return sectorIDs[i] < sectorIDs[j] })

	balances := map[ids.SectorID]map[market.Resource]market.Balance{}
	for _, sid := range sectorIDs {
		balances[sid] = sectorBalances(next, bySector[sid])
	}

	applyTradeRoutes(next, balances)

	newMarkets := map[ids.SectorID]market.SectorMarketState{}
	for _, sid := range sectorIDs {
		m := market.New(sid)
		for resource, bal := range balances[sid] {
			m = m.WithBalance(resource, bal)
		}
		newMarkets[sid] = m
	}
	next.SectorMarkets = newMarkets

	for _, sid := range sectorIDs {
		m := newMarkets[sid]
		foodShort := m.Balances[market.ResourceFood].InShortage()
		goodsShort := m.Balances[market.ResourceConsumerGoods].InShortage()
		if !foodShort && !goodsShort {
			continue
		}
		for _, colonyID := range bySector[sid] {
			c := next.Colonies[colonyID]
			mods := c.Modifiers()
			if foodShort {
				var m modifier.Modifier
				next, m = newShortageModifier(next, "qualityOfLife", -2, colonyID)
				mods = append(mods, m)
			}
			if goodsShort {
				var m modifier.Modifier
				next, m = newShortageModifier(next, "qualityOfLife", -1, colonyID)
				mods = append(mods, m)
			}
			next.Colonies[colonyID] = c.WithModifiers(mods)
		}
	}

	logger.Log("debug", "market phase complete", map[string]interface{}{"turn": next.Turn, "sectors": len(sectorIDs)})
	return next, nil
}

// newShortageModifier mints a modifier id and builds a transient
// qualityOfLife shortage modifier sourced from the shortage sector's
// colony (spec §4.5).
func newShortageModifier(next state.GameState, target string, value float64, colonyID ids.ColonyID) (state.GameState, modifier.Modifier) {
	idStr, nextSeq := next.Sequences.Modifier.Next()
	next.Sequences.Modifier = nextSeq
	return next, modifier.Modifier{
		ID:                ids.ModifierID(idStr),
		Target:            target,
		Operation:         modifier.Add,
		Value:             value,
		SourceType:        modifier.SourceShortage,
		SourceID:          string(colonyID),
		SourceDisplayName: "market shortage",
	}
}

// sectorBalances sums production and consumption across every colony in
// one sector, before any trade-route transfer is folded in (spec §4.5
// step 1).
func sectorBalances(next state.GameState, colonyIDs []ids.ColonyID) map[market.Resource]market.Balance {
	out := map[market.Resource]market.Balance{
		market.ResourceRawMaterials:      {},
		market.ResourceFood:              {},
		market.ResourceConsumerGoods:     {},
		market.ResourceEnergy:            {},
		market.ResourceTransportCapacity: {},
	}

	for _, colonyID := range colonyIDs {
		c := next.Colonies[colonyID]
		p, hasPlanet := next.Planets[c.PlanetID()]
		var deposits []planet.Deposit
		if hasPlanet {
			deposits = p.Deposits()
		}

		pop := c.PopulationLevel()

		mining := c.InfraDomainState(data.DomainMining).TotalLevels()
		agri := c.InfraDomainState(data.DomainAgricultural).TotalLevels()
		energy := c.InfraDomainState(data.DomainEnergy).TotalLevels()
		lowIndustry := c.InfraDomainState(data.DomainLowIndustry).TotalLevels()
		transport := c.InfraDomainState(data.DomainTransport).TotalLevels()

		miningMod := bestRichnessModifier(hasPlanet, deposits, data.DomainMining, next.Tables)
		agriMod := bestRichnessModifier(hasPlanet, deposits, data.DomainAgricultural, next.Tables)
		energyMod := bestRichnessModifier(hasPlanet, deposits, data.DomainEnergy, next.Tables)

		rawProduced := formula.Extraction(mining, miningMod)
		foodProduced := formula.Extraction(agri, agriMod)
		energyProduced := formula.Extraction(energy, energyMod)

		industrialInput := formula.IndustrialInput(lowIndustry)
		rawBalanceSoFar := out[market.ResourceRawMaterials].Production + rawProduced - out[market.ResourceRawMaterials].Consumption
		inputsAvailable := rawBalanceSoFar >= float64(industrialInput)
		goodsProduced := formula.Manufacturing(lowIndustry, inputsAvailable)

		addProduction(out, market.ResourceRawMaterials, rawProduced)
		addConsumption(out, market.ResourceRawMaterials, float64(industrialInput))
		addProduction(out, market.ResourceFood, foodProduced)
		addProduction(out, market.ResourceEnergy, energyProduced)
		addProduction(out, market.ResourceConsumerGoods, float64(goodsProduced))
		addProduction(out, market.ResourceTransportCapacity, float64(transport))

		addConsumption(out, market.ResourceFood, float64(formula.FoodConsumption(pop)))
		addConsumption(out, market.ResourceConsumerGoods, float64(formula.ConsumerGoodsConsumption(pop)))
		addConsumption(out, market.ResourceTransportCapacity, float64(formula.TransportCapacityConsumption(pop)))
	}

	return out
}

func addProduction(out map[market.Resource]market.Balance, r market.Resource, v float64) {
	b := out[r]
	b.Production += v
	out[r] = b
}

func addConsumption(out map[market.Resource]market.Balance, r market.Resource, v float64) {
	b := out[r]
	b.Consumption += v
	out[r] = b
}

// applyTradeRoutes folds each active TradeRoute contract's 50%-efficiency
// transfer of raw materials, food and consumer goods between its sector
// pair into balances,
// computed off the pre-trade production/consumption figures (spec §4.5
// step 1) — avoids ordering dependence when several routes share a
// sector in the same turn.
func applyTradeRoutes(next state.GameState, balances map[ids.SectorID]map[market.Resource]market.Balance) {
	for _, contractID := range contract.OrderedIDs(next.Contracts) {
		c := next.Contracts[contractID]
		if c.Type() != data.ContractTradeRoute || !c.IsActive() {
			continue
		}
		target := c.Target()
		a, aOK := balances[target.SectorA]
		b, bOK := balances[target.SectorB]
		if !aOK || !bOK {
			continue
		}
		for _, resource := range []market.Resource{market.ResourceRawMaterials, market.ResourceFood, market.ResourceConsumerGoods} {
			balA := a[resource]
			balB := b[resource]
			surplusA := balA.Production - balA.Consumption
			surplusB := balB.Production - balB.Consumption

			if surplusA > 0 && surplusB < 0 {
				transfer(a, b, resource, surplusA)
			} else if surplusB > 0 && surplusA < 0 {
				transfer(b, a, resource, surplusB)
			}
		}
	}
}

// transfer adds amount of resource to the surplus sector's outbound and
// half of amount to the deficit sector's inbound (50% efficiency).
func transfer(from, to map[market.Resource]market.Balance, resource market.Resource, amount float64) {
	fb := from[resource]
	fb.OutboundTrade += amount
	from[resource] = fb

	tb := to[resource]
	tb.InboundTrade += amount * 0.5
	to[resource] = tb
}
