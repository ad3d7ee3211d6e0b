// Package config loads GameConfig, the bundle of tunable tables and
// starting-galaxy parameters the engine needs before createInitialState can
// run (SPEC_FULL.md §A). It follows the teacher's layered-load shape
// (env > file > defaults) adapted to a library with no database/API layer
// of its own: there is nothing here but static game-design data.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
)

// SeedCorpConfig is one starting corporation createInitialState mints.
type SeedCorpConfig struct {
	Name            string        `mapstructure:"name" yaml:"name" validate:"required"`
	Type            data.CorpType `mapstructure:"type" yaml:"type" validate:"required"`
	StartingCapital int           `mapstructure:"starting_capital" yaml:"starting_capital" validate:"min=0"`
}

// GalaxyConfig describes the minimal starting galaxy createInitialState
// builds — spec.md lists the galaxy generator itself as an out-of-scope
// external collaborator, so this is deliberately a single-sector, single
// seed-colony shape rather than a procedural generator.
type GalaxyConfig struct {
	HomeSectorName string           `mapstructure:"home_sector_name" yaml:"home_sector_name" validate:"required"`
	HomePlanetName string           `mapstructure:"home_planet_name" yaml:"home_planet_name" validate:"required"`
	HomePlanetType data.PlanetType  `mapstructure:"home_planet_type" yaml:"home_planet_type" validate:"required"`
	HomePlanetSize data.PlanetSize  `mapstructure:"home_planet_size" yaml:"home_planet_size" validate:"required"`
	HomeColonyType data.ColonyType  `mapstructure:"home_colony_type" yaml:"home_colony_type" validate:"required"`
	SeedCorps      []SeedCorpConfig `mapstructure:"seed_corps" yaml:"seed_corps" validate:"dive"`
}

// GameConfig is the full set of tunables createInitialState and the turn
// pipeline's formula/domain packages read from, instead of hard-coded
// constants (SPEC_FULL.md §A).
type GameConfig struct {
	Tables data.Tables  `mapstructure:"tables" yaml:"tables"`
	Galaxy GalaxyConfig `mapstructure:"galaxy" yaml:"galaxy"`
}

// Defaults returns the engine's built-in configuration: data.GetBaseTables
// plus a single-sector, single-colony starting galaxy with one corp per
// type. Concrete starting content, not placeholders — the same role the
// teacher's SetDefaults plays.
func Defaults() GameConfig {
	return GameConfig{
		Tables: data.GetBaseTables(),
		Galaxy: GalaxyConfig{
			HomeSectorName: "sector-1",
			HomePlanetName: "Terra Nova",
			HomePlanetType: data.PlanetContinental,
			HomePlanetSize: data.SizeMedium,
			HomeColonyType: data.ColonyFrontier,
			SeedCorps: []SeedCorpConfig{
				{Name: "Frontier Exploration Guild", Type: data.CorpExploration, StartingCapital: 3},
				{Name: "Continental Construction Co.", Type: data.CorpConstruction, StartingCapital: 3},
				{Name: "Homestead Agricultural Collective", Type: data.CorpAgriculture, StartingCapital: 3},
			},
		},
	}
}

// Load reads a GameConfig from configPath with env-var override (STARFORGE_ prefix,
// dot replaced by underscore, mirroring the teacher's LoadConfig), falling
// back to Defaults() for anything unset. Load never errors on a missing
// file — only a malformed one — the same contract as the teacher's
// LoadConfigOrDefault, folded into Load itself since this package has no
// separate "or-default" caller that wants the raw error.
func Load(configPath string) (GameConfig, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("game")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("STARFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Defaults()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", configPath, err)
		}
		return cfg, nil
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad loads a GameConfig and panics on error — for use in main.go,
// mirroring the teacher's MustLoadConfig.
func MustLoad(configPath string) GameConfig {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// ToYAML round-trips a GameConfig to its YAML form directly through
// yaml.v3, independent of viper's own decoder, so the effective
// configuration can be dumped or used to seed a new override file
// (SPEC_FULL.md §A's config-tooling note). cmd/turnctl does not call it;
// its `config show` prints Describe().
func (c GameConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// FromYAML parses raw YAML bytes into a GameConfig and validates the
// result, the inverse of ToYAML.
func FromYAML(raw []byte) (GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: failed to parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return GameConfig{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// Describe returns a flat summary of the loaded tables for CLI diagnostics
// (SPEC_FULL.md §C.3) — pure plumbing, not game logic.
func (c GameConfig) Describe() map[string]string {
	return map[string]string{
		"planet_types":   fmt.Sprintf("%d", len(c.Tables.PlanetTypes)),
		"planet_sizes":   fmt.Sprintf("%d", len(c.Tables.PlanetSizes)),
		"deposit_types":  fmt.Sprintf("%d", len(c.Tables.DepositTypes)),
		"colony_types":   fmt.Sprintf("%d", len(c.Tables.ColonyTypes)),
		"corp_types":     fmt.Sprintf("%d", len(c.Tables.CorpTypes)),
		"contract_types": fmt.Sprintf("%d", len(c.Tables.ContractTypes)),
		"roles":          fmt.Sprintf("%d", len(c.Tables.Roles)),
		"size_variants":  fmt.Sprintf("%d", len(c.Tables.SizeVariants)),
		"mission_types":  fmt.Sprintf("%d", len(c.Tables.MissionTypes)),
		"discoveries":    fmt.Sprintf("%d", len(c.Tables.Discoveries)),
		"starting_bp":    fmt.Sprintf("%d", c.Tables.StartingBP),
		"home_sector":    c.Galaxy.HomeSectorName,
		"seed_corps":     fmt.Sprintf("%d", len(c.Galaxy.SeedCorps)),
	}
}
