package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load("/no/such/path/game.yaml")
	assert.Nil(t, err)
	assert.Equal(t, config.Defaults().Tables.StartingBP, cfg.Tables.StartingBP)
	assert.NotEmpty(t, cfg.Galaxy.SeedCorps)
}

func TestDefaults_HasStartingTablesAndGalaxy(t *testing.T) {
	cfg := config.Defaults()
	assert.NotEmpty(t, cfg.Tables.PlanetTypes)
	assert.NotEmpty(t, cfg.Tables.CorpTypes)
	assert.Equal(t, "sector-1", cfg.Galaxy.HomeSectorName)
}

func TestValidate_RejectsMissingHomeSectorName(t *testing.T) {
	cfg := config.Defaults()
	cfg.Galaxy.HomeSectorName = ""
	err := config.Validate(cfg)
	assert.NotNil(t, err)
}

func TestDescribe_SummarizesTableSizes(t *testing.T) {
	cfg := config.Defaults()
	desc := cfg.Describe()
	assert.Equal(t, "3", desc["seed_corps"])
	assert.Equal(t, "sector-1", desc["home_sector"])
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := config.Defaults()
	raw, err := cfg.ToYAML()
	assert.Nil(t, err)
	assert.NotEmpty(t, raw)

	back, err := config.FromYAML(raw)
	assert.Nil(t, err)
	assert.Equal(t, cfg.Tables.StartingBP, back.Tables.StartingBP)
	assert.Equal(t, cfg.Galaxy.HomeSectorName, back.Galaxy.HomeSectorName)
}
