package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
)

func TestGenerate_DeterministicWithMidRand(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpShipbuilding, "planet-1", 0, 1)

	input := ship.BlueprintInput{
		Role:         data.RoleSystemPatrol,
		SizeVariant:  data.SizeVariantStandard,
		BuildingCorp: corp,
		HomeSectorID: "sector-1",
		BuiltTurn:    1,
		RNG:          shared.MidRand(),
	}

	s := ship.Generate("ship-1", "USS Example", input, tables)

	assert.Equal(t, data.ShipUnderConstruction, s.Status())
	assert.Equal(t, 2, s.Derived().BuildTime, "spec S5: SystemPatrol, Standard, level 1 build time")
	assert.Equal(t, 100, s.Condition())
}

func TestGenerate_SameSeedYieldsIdenticalShips(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpShipbuilding, "planet-1", 0, 1)

	buildOnce := func() ship.Ship {
		input := ship.BlueprintInput{
			Role:         data.RoleCruiser,
			SizeVariant:  data.SizeVariantHeavy,
			BuildingCorp: corp,
			HomeSectorID: "sector-1",
			BuiltTurn:    3,
			RNG:          shared.Seeded(42),
		}
		return ship.Generate("ship-1", "USS Example", input, tables)
	}

	a := buildOnce()
	b := buildOnce()

	assert.Equal(t, a.Primary(), b.Primary())
	assert.Equal(t, a.Derived(), b.Derived())
	assert.Equal(t, a.Abilities(), b.Abilities())
}
