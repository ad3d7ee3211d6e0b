package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/formula"
)

func TestPlanetTax_CornerCases(t *testing.T) {
	// Arrange/Act/Assert per spec §8 scenario S2.
	assert.Equal(t, 10, formula.PlanetTax(7, 9))
	assert.Equal(t, 0, formula.PlanetTax(5, 2))
	assert.Equal(t, 25, formula.PlanetTax(10, 10))
	assert.Equal(t, 0, formula.PlanetTax(4, 10))
}

func TestCorpTax(t *testing.T) {
	assert.Equal(t, 0, formula.CorpTax(1))
	assert.Equal(t, 1, formula.CorpTax(3))
	assert.Equal(t, 20, formula.CorpTax(10))
}

func TestInfraCap_CivilianVsOther(t *testing.T) {
	assert.Equal(t, 8, formula.InfraCap(3, true, false, nil))
	assert.Equal(t, 6, formula.InfraCap(3, false, false, nil))
}

func TestInfraCap_ExtractionDomainRequiresDeposit(t *testing.T) {
	assert.Equal(t, 0, formula.InfraCap(3, false, true, nil), "no matching deposit caps extraction at 0")

	bonus := 5
	assert.Equal(t, 5, formula.InfraCap(3, false, true, &bonus), "deposit bonus lower than base caps at the bonus")

	bigBonus := 99
	assert.Equal(t, 6, formula.InfraCap(3, false, true, &bigBonus), "base caps when deposit bonus is the looser bound")
}

func TestGrowthTick_LevelUpRequiresCivilianInfra(t *testing.T) {
	result := formula.GrowthTick(9, 2, 3, 7, 8)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 4, result.NewPop)
	assert.Equal(t, 0, result.NewGrowth)
}

func TestGrowthTick_LevelUpBlockedByCivilianInfra(t *testing.T) {
	result := formula.GrowthTick(9, 2, 3, 7, 2)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 3, result.NewPop)
	assert.Equal(t, 10, result.NewGrowth)
}

func TestGrowthTick_LevelDown(t *testing.T) {
	result := formula.GrowthTick(0, -3, 4, 7, 8)
	assert.True(t, result.LeveledDown)
	assert.Equal(t, 3, result.NewPop)
	assert.Equal(t, 9, result.NewGrowth)
}

func TestGrowthTick_LevelDownBlockedAtPopOne(t *testing.T) {
	result := formula.GrowthTick(0, -3, 1, 7, 8)
	assert.False(t, result.LeveledDown)
	assert.Equal(t, 1, result.NewPop)
}

func TestExplorationDuration_ScalesWithLevel(t *testing.T) {
	assert.Equal(t, 4, formula.ExplorationDuration(1))
	assert.Equal(t, 3, formula.ExplorationDuration(3))
	assert.Equal(t, 2, formula.ExplorationDuration(4))
	assert.Equal(t, 2, formula.ExplorationDuration(10))
}

func TestCompletionBonus(t *testing.T) {
	assert.Equal(t, 10, formula.CompletionBonus(5, 10))
}

func TestShipCommission_DeterministicBuildTime(t *testing.T) {
	// role SystemPatrol baseSize=3, Standard variant, corp level 1.
	corpMod := formula.CorpMod(1)
	rawSize := formula.RawSize(3, corpMod)
	baseBuildTime := formula.BaseBuildTime(rawSize, 0)
	buildTime := formula.BuildTime(baseBuildTime, 1.0)
	actual := formula.ActualBuildTime(buildTime, 1)

	assert.Equal(t, 2, actual)
}

func TestDeriveShipAbilities(t *testing.T) {
	abilities := formula.DeriveShipAbilities(4, 3, 5, 6, 4, 3)
	assert.Equal(t, 12, abilities.Fight)
	assert.Equal(t, 12, abilities.Investigation)
	assert.Equal(t, 7, abilities.Support)
}
