// Package colony implements the Colony entity and its per-turn simulation:
// the cascading attribute formulas, the growth accumulator, infrastructure
// caps, and organic infrastructure growth (spec §3/§4.2/§4.4).
package colony

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// Attributes is the cascading six-value attribute bundle (growthPerTurn is
// the unclamped per-turn delta, not the accumulator — see GrowthAccumulator).
type Attributes struct {
	Habitability  int
	Accessibility int
	Dynamism      int
	QualityOfLife int
	Stability     int
	GrowthPerTurn int
}

// InfraDomainState is the ownership split for one of a colony's 12
// infrastructure domains (spec §3).
type InfraDomainState struct {
	Domain          data.InfraDomain
	PublicLevels    int
	CorporateLevels map[ids.CorpID]int
	CurrentCap      int
}

// TotalLevels is public plus every corp's levels in this domain.
func (s InfraDomainState) TotalLevels() int {
	total := s.PublicLevels
	for _, lv := range s.CorporateLevels {
		total += lv
	}
	return total
}

// TotalCorporateLevels sums every corp's levels, ignoring public.
func (s InfraDomainState) TotalCorporateLevels() int {
	total := 0
	for _, lv := range s.CorporateLevels {
		total += lv
	}
	return total
}

// Colony is the settled-planet aggregate (spec §3). All cross-entity
// references (planet, sector, corporations) are held by id only.
type Colony struct {
	id                  ids.ColonyID
	planetID            ids.PlanetID
	sectorID            ids.SectorID
	colonyType          data.ColonyType
	populationLevel     int
	maxPopLevel         int
	growthAccumulator   int
	attributes          Attributes
	previousAttributes  *Attributes
	infra               map[data.InfraDomain]InfraDomainState
	corporationsPresent []ids.CorpID
	modifiers           []modifier.Modifier
	foundedTurn         int
}

// New constructs a freshly-founded colony with every infrastructure domain
// present (spec invariant) and the starting infra from the colony-type
// table applied as public levels.
func New(id ids.ColonyID, planetID ids.PlanetID, sectorID ids.SectorID, ct data.ColonyType, maxPopLevel int, startingInfra map[data.InfraDomain]int, foundedTurn int) Colony {
	if maxPopLevel < 1 {
		shared.InvariantViolation("colony %s: maxPopLevel must be >= 1, got %d", id, maxPopLevel)
	}
	infra := make(map[data.InfraDomain]InfraDomainState, len(data.AllDomains))
	for _, d := range data.AllDomains {
		infra[d] = InfraDomainState{
			Domain:          d,
			PublicLevels:    startingInfra[d],
			CorporateLevels: map[ids.CorpID]int{},
		}
	}
	return Colony{
		id:                id,
		planetID:          planetID,
		sectorID:          sectorID,
		colonyType:        ct,
		populationLevel:   1,
		maxPopLevel:       maxPopLevel,
		infra:             infra,
		foundedTurn:       foundedTurn,
	}
}

func (c Colony) ID() ids.ColonyID                 { return c.id }
func (c Colony) PlanetID() ids.PlanetID           { return c.planetID }
func (c Colony) SectorID() ids.SectorID           { return c.sectorID }
func (c Colony) Type() data.ColonyType            { return c.colonyType }
func (c Colony) PopulationLevel() int             { return c.populationLevel }
func (c Colony) MaxPopLevel() int                 { return c.maxPopLevel }
func (c Colony) GrowthAccumulator() int           { return c.growthAccumulator }
func (c Colony) Attributes() Attributes           { return c.attributes }
func (c Colony) FoundedTurn() int                 { return c.foundedTurn }
func (c Colony) Modifiers() []modifier.Modifier   { return append([]modifier.Modifier(nil), c.modifiers...) }

func (c Colony) PreviousAttributes() (Attributes, bool) {
	if c.previousAttributes == nil {
		return Attributes{}, false
	}
	return *c.previousAttributes, true
}

// CorporationsPresent returns the ordered list of corp ids with any
// presence on this colony.
func (c Colony) CorporationsPresent() []ids.CorpID {
	return append([]ids.CorpID(nil), c.corporationsPresent...)
}

// InfraDomainState reads one domain's ownership state.
func (c Colony) InfraDomainState(d data.InfraDomain) InfraDomainState {
	state, ok := c.infra[d]
	if !ok {
		shared.InvariantViolation("colony %s: missing infra domain entry %s", c.id, d)
	}
	return state
}

// Domains returns every domain in data.AllDomains order.
func (c Colony) Domains() []data.InfraDomain { return data.AllDomains }

// TotalCorporateInfra sums corporate levels across every domain, used by
// the dynamism formula.
func (c Colony) TotalCorporateInfra() int {
	total := 0
	for _, d := range data.AllDomains {
		total += c.infra[d].TotalCorporateLevels()
	}
	return total
}

// WithCorporationPresent returns a copy with corpID appended to
// corporationsPresent if not already listed.
func (c Colony) WithCorporationPresent(corpID ids.CorpID) Colony {
	for _, existing := range c.corporationsPresent {
		if existing == corpID {
			return c
		}
	}
	next := c
	next.corporationsPresent = append(append([]ids.CorpID(nil), c.corporationsPresent...), corpID)
	return next
}

// WithModifiers returns a copy with its modifier list replaced.
func (c Colony) WithModifiers(mods []modifier.Modifier) Colony {
	next := c
	next.modifiers = append([]modifier.Modifier(nil), mods...)
	return next
}

// WithInfraDomainState returns a copy with domain d's state replaced.
func (c Colony) WithInfraDomainState(d data.InfraDomain, state InfraDomainState) Colony {
	next := c
	next.infra = make(map[data.InfraDomain]InfraDomainState, len(c.infra))
	for k, v := range c.infra {
		next.infra[k] = v
	}
	next.infra[d] = state
	return next
}

// WithAttributes returns a copy with its attributes replaced and the
// previous attributes snapshotted (spec §4.4: "snapshot previous
// attributes into the colony" before recomputing).
func (c Colony) WithAttributes(attrs Attributes) Colony {
	prev := c.attributes
	next := c
	next.previousAttributes = &prev
	next.attributes = attrs
	return next
}

// WithGrowthTick returns a copy with growthAccumulator and populationLevel
// updated per the growth-tick result.
func (c Colony) WithGrowthTick(newGrowth, newPop int) Colony {
	next := c
	next.growthAccumulator = newGrowth
	next.populationLevel = newPop
	return next
}

// OrderedIDs sorts colony ids ascending — the deterministic processing
// order spec §5 requires.
func OrderedIDs(colonies map[ids.ColonyID]Colony) []ids.ColonyID {
	out := make([]ids.ColonyID, 0, len(colonies))
	for id := range colonies {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
