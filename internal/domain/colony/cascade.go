package colony

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// DepositBonusLookup resolves the best matching deposit's maxInfraBonus for
// an extraction domain on the colony's planet, or nil if none matches.
type DepositBonusLookup func(domain data.InfraDomain) *int

// RecomputeInfraCaps returns a copy of c with every domain's CurrentCap
// refreshed from the colony's current population level (spec §4.2
// infraCap, run before attribute recompute per §4.4's phase order).
func RecomputeInfraCaps(c Colony, deposits DepositBonusLookup) Colony {
	next := c
	next.infra = make(map[data.InfraDomain]InfraDomainState, len(c.infra))
	for _, d := range data.AllDomains {
		state := c.infra[d]
		isCivilian := d == data.DomainCivilian
		isExtraction := data.ExtractionDomains[d]
		var bonus *int
		if isExtraction {
			bonus = deposits(d)
		}
		state.CurrentCap = formula.InfraCap(c.populationLevel, isCivilian, isExtraction, bonus)
		next.infra[d] = state
	}
	return next
}

// AttributeContext carries the external inputs the attribute cascade needs
// beyond the colony's own stored state (spec §4.2).
type AttributeContext struct {
	BaseHabitabilityFromPlanetType int
	DebtTokens                     int
}

// RecomputeAttributes runs the cascade habitability -> accessibility ->
// dynamism -> qualityOfLife -> stability -> growthPerTurn, snapshotting the
// colony's previous attributes first (spec §4.4).
func RecomputeAttributes(c Colony, ctx AttributeContext) Colony {
	mods := c.modifiers
	condCtx := modifier.ConditionContext{
		"military":    float64(c.infra[data.DomainMilitary].TotalLevels()),
		"debtTokens":  float64(ctx.DebtTokens),
		"populationLevel": float64(c.populationLevel),
	}

	hab := formula.Habitability(ctx.BaseHabitabilityFromPlanetType, mods, condCtx)
	access := formula.Accessibility(c.infra[data.DomainTransport].TotalLevels(), mods, condCtx)
	dyn := formula.Dynamism(access, c.populationLevel, c.TotalCorporateInfra(), mods, condCtx)
	qol := formula.QualityOfLife(hab, mods, condCtx)
	stab := formula.Stability(qol, ctx.DebtTokens, c.infra[data.DomainMilitary].TotalLevels(), mods, condCtx)
	growth := formula.GrowthPerTurn(qol, stab, access, hab, mods, condCtx)

	return c.WithAttributes(Attributes{
		Habitability:  hab,
		Accessibility: access,
		Dynamism:      dyn,
		QualityOfLife: qol,
		Stability:     stab,
		GrowthPerTurn: growth,
	})
}

// ApplyGrowthTick runs the population growth accumulator for one turn
// using the colony's current growthPerTurn attribute (spec §4.2).
func ApplyGrowthTick(c Colony) Colony {
	result := formula.GrowthTick(
		c.growthAccumulator,
		c.attributes.GrowthPerTurn,
		c.populationLevel,
		c.maxPopLevel,
		c.infra[data.DomainCivilian].TotalLevels(),
	)
	return c.WithGrowthTick(result.NewGrowth, result.NewPop)
}

// eligibleOrganicGrowthDomain is a candidate domain plus its selection
// weight for the weighted-random organic growth pick.
type eligibleOrganicGrowthDomain struct {
	domain data.InfraDomain
	weight float64
}

// OrganicGrowthCandidates lists, in stable AllDomains order, every
// non-Civilian domain with >=1 level that sits below its cap, weighted 1x
// baseline or 3x if the domain's produced resource is in sector shortage.
func OrganicGrowthCandidates(c Colony, sectorShortages map[data.InfraDomain]bool) []eligibleOrganicGrowthDomain {
	var out []eligibleOrganicGrowthDomain
	for _, d := range data.AllDomains {
		if d == data.DomainCivilian {
			continue
		}
		state := c.infra[d]
		if state.TotalLevels() < 1 {
			continue
		}
		if state.TotalLevels() >= state.CurrentCap {
			continue
		}
		weight := 1.0
		if sectorShortages[d] {
			weight = 3.0
		}
		out = append(out, eligibleOrganicGrowthDomain{domain: d, weight: weight})
	}
	return out
}

// ApplyOrganicGrowth rolls the per-turn organic infrastructure growth
// chance and, if triggered, awards +1 public level to a weighted-random
// eligible domain. Returns the (possibly unchanged) colony and the domain
// grown, if any.
func ApplyOrganicGrowth(c Colony, rng shared.Rng, sectorShortages map[data.InfraDomain]bool) (Colony, *data.InfraDomain) {
	chancePercent := formula.OrganicGrowthChancePercent(c.attributes.Dynamism)
	roll := rng.Float64() * 100
	if roll >= float64(chancePercent) {
		return c, nil
	}

	candidates := OrganicGrowthCandidates(c, sectorShortages)
	if len(candidates) == 0 {
		return c, nil
	}

	weights := make([]float64, len(candidates))
	for i, cand := range candidates {
		weights[i] = cand.weight
	}
	picked := candidates[shared.WeightedPick(rng, weights)]

	state := c.infra[picked.domain]
	state.PublicLevels++
	next := c.WithInfraDomainState(picked.domain, state)
	domain := picked.domain
	return next, &domain
}
