package colony_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

func newTestColony() colony.Colony {
	return colony.New("col-1", "planet-1", "sector-1", data.ColonyFrontier, 7,
		map[data.InfraDomain]int{data.DomainCivilian: 2, data.DomainTransport: 1}, 1)
}

func TestNew_EveryDomainPresent(t *testing.T) {
	c := newTestColony()
	for _, d := range data.AllDomains {
		assert.NotPanics(t, func() { c.InfraDomainState(d) })
	}
}

func TestRecomputeInfraCaps_CivilianVsExtraction(t *testing.T) {
	c := newTestColony()
	noDeposit := func(data.InfraDomain) *int { return nil }

	c = colony.RecomputeInfraCaps(c, noDeposit)

	assert.Equal(t, (1+1)*2, c.InfraDomainState(data.DomainCivilian).CurrentCap)
	assert.Equal(t, 0, c.InfraDomainState(data.DomainMining).CurrentCap, "no deposit caps extraction at 0")
}

func TestRecomputeAttributes_Cascade(t *testing.T) {
	c := newTestColony()
	c = colony.RecomputeInfraCaps(c, func(data.InfraDomain) *int { return nil })
	c = colony.RecomputeAttributes(c, colony.AttributeContext{BaseHabitabilityFromPlanetType: 7, DebtTokens: 0})

	attrs := c.Attributes()
	assert.GreaterOrEqual(t, attrs.Habitability, 0)
	assert.LessOrEqual(t, attrs.Habitability, 10)

	prev, ok := c.PreviousAttributes()
	assert.True(t, ok)
	assert.Equal(t, colony.Attributes{}, prev, "first recompute snapshots the zero-value initial attributes")
}

func TestApplyGrowthTick_LevelsUpWhenCivilianInfraSufficient(t *testing.T) {
	c := newTestColony()
	c = colony.RecomputeInfraCaps(c, func(data.InfraDomain) *int { return nil })
	c = colony.RecomputeAttributes(c, colony.AttributeContext{BaseHabitabilityFromPlanetType: 10, DebtTokens: 0})

	state := c.InfraDomainState(data.DomainCivilian)
	state.PublicLevels = 10
	c = c.WithInfraDomainState(data.DomainCivilian, state)

	before := c.PopulationLevel()
	c = colony.ApplyGrowthTick(c)
	assert.GreaterOrEqual(t, c.PopulationLevel(), before)
}

func TestApplyOrganicGrowth_Deterministic(t *testing.T) {
	c := newTestColony()
	state := c.InfraDomainState(data.DomainMining)
	state.PublicLevels = 1
	state.CurrentCap = 5
	c = c.WithInfraDomainState(data.DomainMining, state)
	c = c.WithAttributes(colony.Attributes{Dynamism: 11})

	next, grown := colony.ApplyOrganicGrowth(c, shared.MidRand(), map[data.InfraDomain]bool{})
	assert.NotNil(t, grown)
	assert.Equal(t, data.DomainMining, *grown)
	assert.Equal(t, 2, next.InfraDomainState(data.DomainMining).PublicLevels)
}

func TestWithCorporationPresent_NoDuplicate(t *testing.T) {
	c := newTestColony()
	c = c.WithCorporationPresent(ids.CorpID("corp-1"))
	c = c.WithCorporationPresent(ids.CorpID("corp-1"))
	assert.Len(t, c.CorporationsPresent(), 1)
}

func TestOrderedIDs_Ascending(t *testing.T) {
	colonies := map[ids.ColonyID]colony.Colony{
		"col-3": newTestColony(),
		"col-1": newTestColony(),
		"col-2": newTestColony(),
	}
	ordered := colony.OrderedIDs(colonies)
	assert.Equal(t, []ids.ColonyID{"col-1", "col-2", "col-3"}, ordered)
}
