package turn

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/market"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
)

// domainResource maps the infra domains that produce one of the five
// tracked market resources — used by the colony phase's organic-growth
// shortage weighting (spec §4.4) and the corp phase's investment-deficit
// scan (spec §4.6). Domains absent from this map (Civilian, HighIndustry,
// SpaceIndustry, Science, Military, Commerce, Construction) have no
// single tracked resource and never carry the 3x shortage weight or drive
// an investment pick on their own.
var domainResource = map[data.InfraDomain]market.Resource{
	data.DomainMining:       market.ResourceRawMaterials,
	data.DomainAgricultural: market.ResourceFood,
	data.DomainLowIndustry:  market.ResourceConsumerGoods,
	data.DomainEnergy:       market.ResourceEnergy,
	data.DomainTransport:    market.ResourceTransportCapacity,
}

// domainInput maps a domain to the precursor resource it consumes, for
// domains where one exists among the five tracked resources — only
// LowIndustry consumes a tracked input (RawMaterials) to manufacture its
// output. The corp phase's investment scan skips a domain whose input is
// itself in shortage (spec §4.6 step 2: "all required inputs non-deficit
// in that sector").
var domainInput = map[data.InfraDomain]market.Resource{
	data.DomainLowIndustry: market.ResourceRawMaterials,
}

// richnessModifier derives Extraction's richness multiplier from the
// deposit richness tier's output ceiling (formula.ExtractionCap), so the
// tier's 5/10/15/20 ceiling reads as 0.5x/1.0x/1.5x/2.0x rather than
// inventing a second, unrelated constant table.
func richnessModifier(r data.DepositRichness) float64 {
	return float64(formula.ExtractionCap(string(r))) / 10.0
}

// bestRichnessModifier finds, among a planet's deposits, the highest
// richness modifier among those extracting into domain — 0 if the planet
// is unknown or has no matching deposit.
func bestRichnessModifier(hasPlanet bool, deposits []planet.Deposit, domain data.InfraDomain, tables data.Tables) float64 {
	if !hasPlanet {
		return 0
	}
	best := 0.0
	found := false
	for _, d := range deposits {
		info := tables.DepositType(d.Type)
		if info.ExtractionDomain != domain {
			continue
		}
		m := richnessModifier(d.Richness)
		if !found || m > best {
			best = m
			found = true
		}
	}
	return best
}
