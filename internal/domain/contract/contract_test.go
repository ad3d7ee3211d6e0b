package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
)

func TestIsEligible_TypeMatch(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpExploration, "planet-1", 0, 1)
	assert.True(t, contract.IsEligible(corp, data.ContractExploration, tables))
}

func TestIsEligible_Level6Unrestricted(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpAgriculture, "planet-1", 0, 1).WithLevel(6)
	assert.True(t, contract.IsEligible(corp, data.ContractColonization, tables))
}

func TestIsEligible_Level3ExcludesSpecialized(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpAgriculture, "planet-1", 0, 1).WithLevel(3)
	assert.False(t, contract.IsEligible(corp, data.ContractColonization, tables))
	assert.True(t, contract.IsEligible(corp, data.ContractExploration, tables))
}

func TestCreateContract_ShipCommission_InsufficientSpaceInfra(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpShipbuilding, "planet-1", 0, 1)

	low := 2
	params := contract.CreateParams{
		ID:           "contract-1",
		Type:         data.ContractShipCommission,
		Target:       contract.Target{Kind: data.TargetColony, ColonyID: "col-1"},
		AssignedCorp: corp,
		StartTurn:    1,
		Tables:       tables,
		Facts:        contract.TargetFacts{ColonySpaceIndustryLevel: &low},
		ShipCommissionParams: &contract.ShipCommissionParams{
			Role:        data.RoleSystemPatrol,
			SizeVariant: data.SizeVariantStandard,
		},
	}

	_, err := contract.CreateContract(params)
	require.NotNil(t, err)
	assert.Equal(t, contract.KindInsufficientSpaceInfra, err.Kind())
}

func TestCreateContract_ShipCommission_SufficientSpaceInfra(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpShipbuilding, "planet-1", 0, 1)

	sufficient := 3
	params := contract.CreateParams{
		ID:           "contract-1",
		Type:         data.ContractShipCommission,
		Target:       contract.Target{Kind: data.TargetColony, ColonyID: "col-1"},
		AssignedCorp: corp,
		StartTurn:    1,
		Tables:       tables,
		Facts:        contract.TargetFacts{ColonySpaceIndustryLevel: &sufficient},
		ShipCommissionParams: &contract.ShipCommissionParams{
			Role:        data.RoleSystemPatrol,
			SizeVariant: data.SizeVariantStandard,
		},
	}

	created, err := contract.CreateContract(params)
	require.Nil(t, err)
	assert.Equal(t, 2, created.Duration(), "spec S5: deterministic build time of 2 turns")
}

func TestCreateContract_Colonization_InvalidStatus(t *testing.T) {
	tables := data.GetBaseTables()
	corp := corporation.New("corp-1", "Acme", data.CorpConstruction, "planet-1", 0, 1)
	status := data.StatusUndiscovered

	params := contract.CreateParams{
		ID:           "contract-1",
		Type:         data.ContractColonization,
		Target:       contract.Target{Kind: data.TargetPlanet, PlanetID: "planet-1"},
		AssignedCorp: corp,
		StartTurn:    1,
		Tables:       tables,
		Facts:        contract.TargetFacts{PlanetStatus: &status},
		ColonizationParams: &contract.ColonizationParams{
			ColonyType: data.ColonyFrontier,
		},
	}

	_, err := contract.CreateContract(params)
	require.NotNil(t, err)
	assert.Equal(t, contract.KindInvalidPlanetStatus, err.Kind())
}

func TestAdvance_TradeRouteNeverDecrements(t *testing.T) {
	c := contract.New("contract-1", data.ContractTradeRoute, contract.Target{Kind: data.TargetSectorPair}, "corp-1", 2, data.TradeRouteSentinelTurns, 1)
	c = c.Advance()
	assert.Equal(t, data.TradeRouteSentinelTurns, c.TurnsRemaining())
}

func TestAdvance_ReachesDueAtZero(t *testing.T) {
	c := contract.New("contract-1", data.ContractGroundSurvey, contract.Target{Kind: data.TargetPlanet}, "corp-1", 2, 1, 1)
	c = c.Advance()
	assert.True(t, c.IsDue())
}

func TestComplete_IsImmutableThereafter(t *testing.T) {
	c := contract.New("contract-1", data.ContractGroundSurvey, contract.Target{Kind: data.TargetPlanet}, "corp-1", 2, 1, 1)
	c = c.Complete(2)
	assert.Equal(t, data.ContractCompleted, c.Status())
	turn, ok := c.CompletedTurn()
	assert.True(t, ok)
	assert.Equal(t, 2, turn)
}
