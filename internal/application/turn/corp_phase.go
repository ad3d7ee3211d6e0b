package turn

import (
	"fmt"
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runCorpPhase runs the corporate AI once per corp, level-descending then
// id-ascending (spec §4.6): capital gain, one investment attempt, one
// acquisition attempt.
func runCorpPhase(s state.GameState, rng shared.Rng, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()
	var events []event.Event

	for _, corpID := range corporation.OrderedForProcessing(next.Corporations) {
		corp, ok := next.Corporations[corpID]
		if !ok {
			// Acquired by an earlier-processed corp this same phase
			// (attemptAcquisition deletes the target); nothing to
			// process or write back.
			continue
		}

		corp = corp.WithCapitalDelta(formula.CapitalGain(corp.TotalOwnedInfra(), binaryDraw(rng)))

		if corp.Capital() >= 2 {
			var invested bool
			var ev event.Event
			next, corp, invested, ev = attemptInvestment(next, corp, rng)
			if invested {
				events = append(events, ev)
			}
		}

		if corp.Level() >= 6 && corp.Capital() >= 5 {
			var acquired bool
			var ev event.Event
			next, corp, acquired, ev = attemptAcquisition(next, corp)
			if acquired {
				events = append(events, ev)
			}
		}

		next.Corporations[corpID] = corp
	}

	logger.Log("debug", "corp phase complete", map[string]interface{}{"turn": next.Turn, "events": len(events)})
	return next, events
}

// binaryDraw floors a single Rng draw to 0 or 1, the random component
// formula.CapitalGain expects (spec §4.2).
func binaryDraw(rng shared.Rng) int {
	if rng.Float64() < 0.5 {
		return 0
	}
	return 1
}

// allowedDomains returns the domains a corp below level 3 may invest in
// (its type's primary domains) or every domain once level 3+ (spec §4.6
// step 2).
func allowedDomains(corp corporation.Corporation, tables data.Tables) []data.InfraDomain {
	if corp.Level() >= 3 {
		return data.AllDomains
	}
	return tables.CorpType(corp.Type()).PrimaryDomains
}

type investmentCandidate struct {
	sectorID ids.SectorID
	domain   data.InfraDomain
	weight   float64
}

// attemptInvestment scans every sector market for a deficit in a domain
// the corp may invest in, weighted-picks one, then invests in the highest-
// dynamism eligible colony in that sector (spec §4.6 step 2).
func attemptInvestment(next state.GameState, corp corporation.Corporation, rng shared.Rng) (state.GameState, corporation.Corporation, bool, event.Event) {
	if corp.TotalOwnedInfra() >= formula.MaxOwnedInfra(corp.Level()) {
		return next, corp, false, event.Event{}
	}

	allowed := map[data.InfraDomain]bool{}
	for _, d := range allowedDomains(corp, next.Tables) {
		allowed[d] = true
	}

	var candidates []investmentCandidate
	for _, sectorID := range sortedSectorMarketIDs(next) {
		m := next.SectorMarkets[sectorID]
		for domain, resource := range domainResource {
			if !allowed[domain] {
				continue
			}
			bal := m.Balances[resource]
			if !bal.InShortage() {
				continue
			}
			if inputResource, needsInput := domainInput[domain]; needsInput && m.Balances[inputResource].InShortage() {
				continue
			}
			surplus := bal.NetSurplus()
			weight := surplus
			if weight < 0 {
				weight = -weight
			}
			candidates = append(candidates, investmentCandidate{sectorID: sectorID, domain: domain, weight: weight})
		}
	}
	if len(candidates) == 0 {
		return next, corp, false, event.Event{}
	}

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = c.weight
	}
	pick := shared.WeightedPick(rng, weights)
	if pick < 0 {
		return next, corp, false, event.Event{}
	}
	chosen := candidates[pick]

	colonyID, ok := pickInvestmentColony(next, corp, chosen.sectorID, chosen.domain)
	if !ok {
		return next, corp, false, event.Event{}
	}

	c := next.Colonies[colonyID]
	domainState := c.InfraDomainState(chosen.domain)
	levels := make(map[ids.CorpID]int, len(domainState.CorporateLevels)+1)
	for k, v := range domainState.CorporateLevels {
		levels[k] = v
	}
	levels[corp.ID()] = levels[corp.ID()] + 1
	domainState.CorporateLevels = levels
	next.Colonies[colonyID] = c.WithInfraDomainState(chosen.domain, domainState).WithCorporationPresent(corp.ID())

	corp = corp.WithCapitalDelta(-2)
	corp = corp.WithHoldingDelta(colonyID, chosen.domain, 1)
	corp = corp.WithPlanetPresent(next.Colonies[colonyID].PlanetID())

	var ev event.Event
	next, ev = mintEvent(next, event.CategoryCorporation, event.PriorityInfo,
		"Corporate investment",
		fmt.Sprintf("%s invested in %s at colony %s", corp.ID(), chosen.domain, colonyID),
		string(corp.ID()), string(colonyID))

	return next, corp, true, ev
}

func sortedSectorMarketIDs(next state.GameState) []ids.SectorID {
	out := make([]ids.SectorID, 0, len(next.SectorMarkets))
	for id := range next.SectorMarkets {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// pickInvestmentColony finds, among the colonies in sectorID, the highest-
// dynamism one still eligible for investment in domain (below cap; for an
// extraction domain, a matching deposit must exist on its planet).
func pickInvestmentColony(next state.GameState, corp corporation.Corporation, sectorID ids.SectorID, domain data.InfraDomain) (ids.ColonyID, bool) {
	isExtraction := data.ExtractionDomains[domain]

	var best ids.ColonyID
	bestDynamism := -1
	found := false

	for _, colonyID := range colony.OrderedIDs(next.Colonies) {
		c := next.Colonies[colonyID]
		if c.SectorID() != sectorID {
			continue
		}
		domainState := c.InfraDomainState(domain)
		if domainState.TotalLevels() >= domainState.CurrentCap {
			continue
		}
		if isExtraction {
			p, hasPlanet := next.Planets[c.PlanetID()]
			if bestRichnessModifier(hasPlanet, p.Deposits(), domain, next.Tables) <= 0 {
				continue
			}
		}
		dyn := c.Attributes().Dynamism
		if !found || dyn > bestDynamism {
			best = colonyID
			bestDynamism = dyn
			found = true
		}
	}
	return best, found
}

// attemptAcquisition scans for an acquirable weaker corp and, if found,
// merges it into corp and removes it from state (spec §4.6 step 3).
func attemptAcquisition(next state.GameState, corp corporation.Corporation) (state.GameState, corporation.Corporation, bool, event.Event) {
	var targetID ids.CorpID
	bestInfra := -1
	found := false

	for _, candidateID := range corporation.OrderedForProcessing(next.Corporations) {
		if candidateID == corp.ID() {
			continue
		}
		candidate := next.Corporations[candidateID]
		if corp.Level()-candidate.Level() < 3 {
			continue
		}
		if corp.Capital() < formula.AcquisitionCost(candidate.Level()) {
			continue
		}
		infra := candidate.TotalOwnedInfra()
		if !found || infra > bestInfra {
			targetID = candidateID
			bestInfra = infra
			found = true
		}
	}
	if !found {
		return next, corp, false, event.Event{}
	}

	target := next.Corporations[targetID]
	cost := formula.AcquisitionCost(target.Level())

	corp = corp.WithCapitalDelta(-cost)
	corp = corp.WithLevel(corp.Level() + 1)
	corp = corp.MergedWith(target)
	next = reassignCorporateLevels(next, targetID, corp.ID())
	delete(next.Corporations, targetID)

	var ev event.Event
	next, ev = mintEvent(next, event.CategoryCorporation, event.PriorityInfo,
		"Corporate acquisition",
		fmt.Sprintf("%s acquired %s", corp.ID(), targetID),
		string(corp.ID()), string(targetID))

	return next, corp, true, ev
}

// reassignCorporateLevels re-keys every colony's per-domain CorporateLevels
// entry for fromID onto toID, summing with whatever toID already holds
// there. MergedWith only combines the acquirer/target's own holdings
// bookkeeping; the colonies' infra-domain maps still attribute levels to
// the acquired corp's id by construction, and that id is about to be
// deleted from state, so every colony referencing it must be updated in
// the same step (spec §8 property 3; §3 colony invariant).
func reassignCorporateLevels(s state.GameState, fromID, toID ids.CorpID) state.GameState {
	for _, colonyID := range colony.OrderedIDs(s.Colonies) {
		c := s.Colonies[colonyID]
		changed := false
		for _, domain := range c.Domains() {
			domainState := c.InfraDomainState(domain)
			amount, ok := domainState.CorporateLevels[fromID]
			if !ok || amount == 0 {
				continue
			}
			levels := make(map[ids.CorpID]int, len(domainState.CorporateLevels))
			for k, v := range domainState.CorporateLevels {
				levels[k] = v
			}
			delete(levels, fromID)
			levels[toID] = levels[toID] + amount
			domainState.CorporateLevels = levels
			c = c.WithInfraDomainState(domain, domainState)
			changed = true
		}
		if changed {
			s.Colonies[colonyID] = c
		}
	}
	return s
}
