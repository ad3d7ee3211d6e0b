// Package corporation implements the Corporation entity (spec §3): an
// autonomous AI agent operating infrastructure holdings, schematics, and
// patents, advanced each turn by the application-layer corporate AI phase.
package corporation

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// GovernmentCorpID is the reserved sentinel id used as a Ship.Owner for
// government/player-owned ships. The real corp Sequence mints ids starting
// at 1 ("corp-1", "corp-2", ...), so this value can never collide with a
// minted corp id (spec §9's "reserved corp id" open-question decision).
const GovernmentCorpID ids.CorpID = "corp-government"

// HoldingKey identifies one (colony, domain) pair a corp holds levels in.
type HoldingKey struct {
	ColonyID ids.ColonyID
	Domain   data.InfraDomain
}

// Corporation is owned exclusively by GameState; all references to planets,
// colonies, and schematics are held by id.
type Corporation struct {
	id              ids.CorpID
	name            string
	corpType        data.CorpType
	level           int
	capital         int
	homePlanetID    ids.PlanetID
	planetsPresent  []ids.PlanetID
	holdings        map[HoldingKey]int
	schematicIDs    []ids.SchematicID
	patents         []string
	activeContracts []ids.ContractID
	foundedTurn     int
}

// New constructs a freshly-founded level-1 corporation.
func New(id ids.CorpID, name string, ct data.CorpType, homePlanetID ids.PlanetID, startingCapital, foundedTurn int) Corporation {
	if startingCapital < 0 {
		shared.InvariantViolation("corp %s: startingCapital must be >= 0, got %d", id, startingCapital)
	}
	return Corporation{
		id:           id,
		name:         name,
		corpType:     ct,
		level:        1,
		capital:      startingCapital,
		homePlanetID: homePlanetID,
		holdings:     map[HoldingKey]int{},
		foundedTurn:  foundedTurn,
	}
}

func (c Corporation) ID() ids.CorpID                     { return c.id }
func (c Corporation) Name() string                        { return c.name }
func (c Corporation) Type() data.CorpType                 { return c.corpType }
func (c Corporation) Level() int                          { return c.level }
func (c Corporation) Capital() int                        { return c.capital }
func (c Corporation) HomePlanetID() ids.PlanetID          { return c.homePlanetID }
func (c Corporation) FoundedTurn() int                    { return c.foundedTurn }
func (c Corporation) SchematicIDs() []ids.SchematicID     { return append([]ids.SchematicID(nil), c.schematicIDs...) }
func (c Corporation) Patents() []string                   { return append([]string(nil), c.patents...) }
func (c Corporation) ActiveContracts() []ids.ContractID   { return append([]ids.ContractID(nil), c.activeContracts...) }

func (c Corporation) PlanetsPresent() []ids.PlanetID {
	return append([]ids.PlanetID(nil), c.planetsPresent...)
}

// TotalOwnedInfra sums holdings across every (colony, domain) pair — the
// invariant-checked total that must equal the sum of corporate levels
// attributed to this corp across all colonies (spec §8 property 3).
func (c Corporation) TotalOwnedInfra() int {
	total := 0
	for _, v := range c.holdings {
		total += v
	}
	return total
}

// HoldingsInDomain returns the total levels this corp holds in domain d
// across every colony.
func (c Corporation) HoldingsInDomain(d data.InfraDomain) int {
	total := 0
	for k, v := range c.holdings {
		if k.Domain == d {
			total += v
		}
	}
	return total
}

// HoldingAt returns this corp's recorded level at the given (colony,
// domain) pair.
func (c Corporation) HoldingAt(colonyID ids.ColonyID, domain data.InfraDomain) int {
	return c.holdings[HoldingKey{ColonyID: colonyID, Domain: domain}]
}

// WithCapital returns a copy with capital set to v.
func (c Corporation) WithCapital(v int) Corporation {
	next := c
	next.capital = v
	return next
}

// WithCapitalDelta returns a copy with capital adjusted by delta (may be
// negative for spend).
func (c Corporation) WithCapitalDelta(delta int) Corporation {
	return c.WithCapital(c.capital + delta)
}

// WithLevel returns a copy with level set to v, capped at 10.
func (c Corporation) WithLevel(v int) Corporation {
	next := c
	if v > 10 {
		v = 10
	}
	next.level = v
	return next
}

// WithPlanetPresent returns a copy with planetID appended to
// planetsPresent if not already listed.
func (c Corporation) WithPlanetPresent(planetID ids.PlanetID) Corporation {
	for _, existing := range c.planetsPresent {
		if existing == planetID {
			return c
		}
	}
	next := c
	next.planetsPresent = append(append([]ids.PlanetID(nil), c.planetsPresent...), planetID)
	return next
}

// WithHoldingDelta returns a copy with the (colony, domain) holding
// adjusted by delta.
func (c Corporation) WithHoldingDelta(colonyID ids.ColonyID, domain data.InfraDomain, delta int) Corporation {
	next := c
	next.holdings = make(map[HoldingKey]int, len(c.holdings)+1)
	for k, v := range c.holdings {
		next.holdings[k] = v
	}
	key := HoldingKey{ColonyID: colonyID, Domain: domain}
	next.holdings[key] = next.holdings[key] + delta
	return next
}

// WithActiveContract returns a copy with contractID appended to
// activeContracts.
func (c Corporation) WithActiveContract(contractID ids.ContractID) Corporation {
	next := c
	next.activeContracts = append(append([]ids.ContractID(nil), c.activeContracts...), contractID)
	return next
}

// MergedWith returns a copy of c with target's holdings, schematics,
// patents, and planetsPresent merged in — the acquisition effect of
// spec §4.6 step 3. Holdings are summed per (colony, domain).
func (c Corporation) MergedWith(target Corporation) Corporation {
	next := c
	next.holdings = make(map[HoldingKey]int, len(c.holdings)+len(target.holdings))
	for k, v := range c.holdings {
		next.holdings[k] = v
	}
	for k, v := range target.holdings {
		next.holdings[k] = next.holdings[k] + v
	}
	next.schematicIDs = append(append([]ids.SchematicID(nil), c.schematicIDs...), target.schematicIDs...)
	next.patents = append(append([]string(nil), c.patents...), target.patents...)
	for _, p := range target.planetsPresent {
		next = next.WithPlanetPresent(p)
	}
	return next
}

// OrderedForProcessing returns corp ids sorted level-descending then
// id-ascending — the deterministic corporate AI processing order spec §4.6
// requires.
func OrderedForProcessing(corps map[ids.CorpID]Corporation) []ids.CorpID {
	out := make([]ids.CorpID, 0, len(corps))
	for id := range corps {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := corps[out[i]], corps[out[j]]
		if a.level != b.level {
			return a.level > b.level
		}
		return out[i] < out[j]
	})
	return out
}
