// Package initialstate builds the engine's starting GameState (spec §6:
// createInitialState). The galaxy generator proper is an out-of-scope
// external collaborator (spec §1) — this package is the one-shot consumer
// of a GameConfig that stands in for it: one home sector, one colonized
// homeworld, and the configured seed corporations.
package initialstate

import (
	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

// Create builds the starting GameState from cfg: Turn 0, the configured
// StartingBP/StartingDebtTokens (via state.New), a single sector holding
// one already-colonized homeworld planet, and one corporation per
// cfg.Galaxy.SeedCorps entry, each present on the homeworld.
func Create(cfg config.GameConfig) state.GameState {
	s := state.New(cfg.Tables)

	sectorID := ids.SectorID(cfg.Galaxy.HomeSectorName)
	s.Galaxy = s.Galaxy.WithSector(galaxy.NewSector(sectorID, galaxy.DensityNormal, 1.0))
	s.Galaxy.Adjacency[sectorID] = []ids.SectorID{}

	planetTypeInfo := cfg.Tables.PlanetType(cfg.Galaxy.HomePlanetType)

	var planetIDStr string
	planetIDStr, s.Sequences.Planet = s.Sequences.Planet.Next()
	planetID := ids.PlanetID(planetIDStr)

	p := planet.New(planetID, cfg.Galaxy.HomePlanetName, sectorID,
		cfg.Galaxy.HomePlanetType, cfg.Galaxy.HomePlanetSize,
		planetTypeInfo.BaseHabitability, nil)
	p = p.WithOrbitScan(0).WithGroundSurvey(0).WithStatus(data.StatusColonized)
	s.Planets[planetID] = p

	colonyTypeInfo := cfg.Tables.ColonyType(cfg.Galaxy.HomeColonyType)
	sizeInfo := cfg.Tables.PlanetSize(cfg.Galaxy.HomePlanetSize)

	var colonyIDStr string
	colonyIDStr, s.Sequences.Colony = s.Sequences.Colony.Next()
	colonyID := ids.ColonyID(colonyIDStr)

	homeColony := colony.New(colonyID, planetID, sectorID, cfg.Galaxy.HomeColonyType,
		sizeInfo.MaxPopLevel, colonyTypeInfo.StartingInfra, 0)

	for _, seed := range cfg.Galaxy.SeedCorps {
		var corpIDStr string
		corpIDStr, s.Sequences.Corp = s.Sequences.Corp.Next()
		corpID := ids.CorpID(corpIDStr)

		corp := corporation.New(corpID, seed.Name, seed.Type, planetID, seed.StartingCapital, 0)
		corp = corp.WithPlanetPresent(planetID)
		s.Corporations[corpID] = corp

		homeColony = homeColony.WithCorporationPresent(corpID)
	}

	s.Colonies[colonyID] = homeColony
	return s
}
