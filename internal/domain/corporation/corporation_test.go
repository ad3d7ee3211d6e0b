package corporation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

func TestWithHoldingDelta_TotalOwnedInfraTracksHoldings(t *testing.T) {
	c := corporation.New("corp-1", "Acme Mining", data.CorpExploitation, "planet-1", 0, 1)
	c = c.WithHoldingDelta("col-1", data.DomainMining, 2)
	c = c.WithHoldingDelta("col-2", data.DomainEnergy, 1)

	assert.Equal(t, 3, c.TotalOwnedInfra())
	assert.Equal(t, 2, c.HoldingsInDomain(data.DomainMining))
}

func TestMergedWith_SumsHoldingsAndUnionsPlanets(t *testing.T) {
	a := corporation.New("corp-1", "Acme", data.CorpExploitation, "planet-1", 0, 1)
	a = a.WithHoldingDelta("col-1", data.DomainMining, 2)
	a = a.WithPlanetPresent("planet-1")

	b := corporation.New("corp-2", "Beta", data.CorpMilitary, "planet-2", 0, 1)
	b = b.WithHoldingDelta("col-1", data.DomainMining, 1)
	b = b.WithPlanetPresent("planet-2")

	merged := a.MergedWith(b)

	assert.Equal(t, 3, merged.HoldingsInDomain(data.DomainMining))
	assert.ElementsMatch(t, []ids.PlanetID{"planet-1", "planet-2"}, merged.PlanetsPresent())
}

func TestWithLevel_CapsAtTen(t *testing.T) {
	c := corporation.New("corp-1", "Acme", data.CorpExploitation, "planet-1", 0, 1)
	c = c.WithLevel(15)
	assert.Equal(t, 10, c.Level())
}

func TestOrderedForProcessing_LevelDescendingThenIDAscending(t *testing.T) {
	corps := map[ids.CorpID]corporation.Corporation{
		"corp-b": corporation.New("corp-b", "B", data.CorpMilitary, "planet-1", 0, 1).WithLevel(5),
		"corp-a": corporation.New("corp-a", "A", data.CorpMilitary, "planet-1", 0, 1).WithLevel(5),
		"corp-c": corporation.New("corp-c", "C", data.CorpMilitary, "planet-1", 0, 1).WithLevel(9),
	}

	ordered := corporation.OrderedForProcessing(corps)
	assert.Equal(t, []ids.CorpID{"corp-c", "corp-a", "corp-b"}, ordered)
}
