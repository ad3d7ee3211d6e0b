package initialstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/application/initialstate"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

func TestCreate_BuildsSingleHomeworldWithSeedCorps(t *testing.T) {
	cfg := config.Defaults()
	s := initialstate.Create(cfg)

	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, cfg.Tables.StartingBP, s.CurrentBP)
	assert.Len(t, s.Planets, 1)
	assert.Len(t, s.Colonies, 1)
	assert.Len(t, s.Corporations, len(cfg.Galaxy.SeedCorps))

	var homeworld string
	for id, p := range s.Planets {
		homeworld = string(id)
		assert.Equal(t, data.StatusColonized, p.Status())
	}

	for _, c := range s.Colonies {
		assert.Equal(t, homeworld, string(c.PlanetID()))
		assert.Len(t, c.CorporationsPresent(), len(cfg.Galaxy.SeedCorps))
	}

	for _, corp := range s.Corporations {
		assert.Equal(t, homeworld, string(corp.HomePlanetID()))
	}
}

func TestCreate_IsDeterministicGivenSameConfig(t *testing.T) {
	cfg := config.Defaults()
	a := initialstate.Create(cfg)
	b := initialstate.Create(cfg)

	assert.Equal(t, len(a.Planets), len(b.Planets))
	assert.Equal(t, len(a.Colonies), len(b.Colonies))
	assert.Equal(t, len(a.Corporations), len(b.Corporations))
}
