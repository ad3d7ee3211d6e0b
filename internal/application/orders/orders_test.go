package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/application/orders"
	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

func newTestState(t *testing.T) state.GameState {
	t.Helper()
	tables := data.GetBaseTables()
	s := state.New(tables)

	s.Galaxy = s.Galaxy.WithSector(galaxy.NewSector("sector-1", galaxy.DensityNormal, 1.0))
	s.Galaxy = s.Galaxy.WithSector(galaxy.NewSector("sector-2", galaxy.DensityNormal, 1.0))
	s.Galaxy.Adjacency["sector-1"] = []ids.SectorID{}

	p := planet.New("planet-1", "Terra Nova", "sector-1", data.PlanetContinental, data.SizeMedium, 7, nil)
	s.Planets["planet-1"] = p.WithOrbitScan(0)

	gov := corporation.New(corporation.GovernmentCorpID, "Government", data.CorpIndustrial, "planet-1", 0, 0).WithLevel(6)
	s.Corporations[corporation.GovernmentCorpID] = gov

	c := colony.New("colony-1", "planet-1", "sector-1", data.ColonyMining, 5, map[data.InfraDomain]int{data.DomainSpaceIndustry: 5}, 0)
	domainState := c.InfraDomainState(data.DomainSpaceIndustry)
	domainState.CurrentCap = 10
	c = c.WithInfraDomainState(data.DomainSpaceIndustry, domainState)
	s.Colonies["colony-1"] = c

	s.CurrentBP = 100
	return s
}

func TestApplyAcceptPlanet_TransitionsToAccepted(t *testing.T) {
	s := newTestState(t)
	next, err := orders.ApplyOrder(s, orders.AcceptPlanetCommand{PlanetID: "planet-1"})
	assert.Nil(t, err)
	assert.Equal(t, data.StatusAccepted, next.Planets["planet-1"].Status())
}

func TestApplyAcceptPlanet_UnknownPlanetFails(t *testing.T) {
	s := newTestState(t)
	_, err := orders.ApplyOrder(s, orders.AcceptPlanetCommand{PlanetID: "does-not-exist"})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindPlanetNotFound, err.Kind())
}

func TestApplyRejectPlanet_WrongStatusFails(t *testing.T) {
	s := newTestState(t)
	s.Planets["planet-1"] = s.Planets["planet-1"].WithStatus(data.StatusColonized)
	_, err := orders.ApplyOrder(s, orders.RejectPlanetCommand{PlanetID: "planet-1"})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindInvalidStatus, err.Kind())
}

func TestApplyInvestPlanet_SpendsFixedCostAndAddsLevel(t *testing.T) {
	s := newTestState(t)
	next, err := orders.ApplyOrder(s, orders.InvestPlanetCommand{ColonyID: "colony-1", Domain: data.DomainSpaceIndustry})
	assert.Nil(t, err)
	assert.Equal(t, s.CurrentBP-orders.InvestPlanetFixedCost, next.CurrentBP)
	assert.Equal(t, 6, next.Colonies["colony-1"].InfraDomainState(data.DomainSpaceIndustry).PublicLevels)
}

func TestApplyInvestPlanet_AtCapFails(t *testing.T) {
	s := newTestState(t)
	c := s.Colonies["colony-1"]
	ds := c.InfraDomainState(data.DomainSpaceIndustry)
	ds.CurrentCap = ds.TotalLevels()
	s.Colonies["colony-1"] = c.WithInfraDomainState(data.DomainSpaceIndustry, ds)

	_, err := orders.ApplyOrder(s, orders.InvestPlanetCommand{ColonyID: "colony-1", Domain: data.DomainSpaceIndustry})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindAtCap, err.Kind())
}

func TestApplyInvestPlanet_ExtractionDomainWithoutDepositFails(t *testing.T) {
	s := newTestState(t)
	_, err := orders.ApplyOrder(s, orders.InvestPlanetCommand{ColonyID: "colony-1", Domain: data.DomainMining})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindNoMatchingDeposit, err.Kind())
}

func TestApplyInvestPlanet_InsufficientBPFails(t *testing.T) {
	s := newTestState(t)
	s.CurrentBP = 1
	_, err := orders.ApplyOrder(s, orders.InvestPlanetCommand{ColonyID: "colony-1", Domain: data.DomainSpaceIndustry})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindInsufficientBP, err.Kind())
}

func TestApplyCreateContract_ShipCommission_MintsContractAndTracksCorp(t *testing.T) {
	s := newTestState(t)
	next, err := orders.ApplyOrder(s, orders.CreateContractCommand{
		Type:           data.ContractShipCommission,
		Target:         contract.Target{Kind: data.TargetColony, ColonyID: "colony-1"},
		AssignedCorpID: corporation.GovernmentCorpID,
		ShipCommissionParams: &contract.ShipCommissionParams{
			Role:        data.RoleSystemPatrol,
			SizeVariant: data.SizeVariantStandard,
		},
	})
	assert.Nil(t, err)
	assert.Len(t, next.Contracts, 1)
	gov := next.Corporations[corporation.GovernmentCorpID]
	assert.Len(t, gov.ActiveContracts(), 1)
}

func TestApplyCreateContract_UnknownCorpFails(t *testing.T) {
	s := newTestState(t)
	_, err := orders.ApplyOrder(s, orders.CreateContractCommand{
		Type:           data.ContractExploration,
		Target:         contract.Target{Kind: data.TargetSector, SectorID: "sector-1"},
		AssignedCorpID: "corp-nonexistent",
	})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindCorpNotFound, err.Kind())
}

func TestApplyCreateTradeRoute_RequiresAdjacentSectors(t *testing.T) {
	s := newTestState(t)
	_, err := orders.ApplyOrder(s, orders.CreateTradeRouteCommand{
		SectorA: "sector-1",
		SectorB: "sector-2",
		CorpID:  corporation.GovernmentCorpID,
	})
	assert.NotNil(t, err)
	assert.Equal(t, contract.KindSectorsNotAdjacent, err.Kind())
}

func TestApplyCancelTradeRoute_NonTradeRouteContractFails(t *testing.T) {
	s := newTestState(t)
	c := contract.New("contract-1", data.ContractExploration, contract.Target{Kind: data.TargetSector, SectorID: "sector-1"}, corporation.GovernmentCorpID, 1, 2, 0)
	s.Contracts["contract-1"] = c

	_, err := orders.ApplyOrder(s, orders.CancelTradeRouteCommand{ContractID: "contract-1"})
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindNotTradeRoute, err.Kind())
}

func TestApplyCancelTradeRoute_CompletesActiveTradeRoute(t *testing.T) {
	s := newTestState(t)
	c := contract.New("contract-1", data.ContractTradeRoute, contract.Target{Kind: data.TargetSectorPair, SectorA: "sector-1", SectorB: "sector-2"}, corporation.GovernmentCorpID, 1, data.TradeRouteSentinelTurns, 0)
	s.Contracts["contract-1"] = c

	next, err := orders.ApplyOrder(s, orders.CancelTradeRouteCommand{ContractID: "contract-1"})
	assert.Nil(t, err)
	assert.False(t, next.Contracts["contract-1"].IsActive())
}

func TestApplyCreateMission_RequiresStationedGovernmentShips(t *testing.T) {
	s := newTestState(t)
	gov := s.Corporations[corporation.GovernmentCorpID]
	sh := ship.Generate("ship-1", "Vanguard", ship.BlueprintInput{
		Role:         data.RoleSystemPatrol,
		SizeVariant:  data.SizeVariantStandard,
		BuildingCorp: gov,
		HomeSectorID: "sector-1",
		BuiltTurn:    0,
		RNG:          shared.MidRand(),
	}, s.Tables).WithStatus(data.ShipStationed)
	s.Ships["ship-1"] = sh

	next, err := orders.ApplyOrder(s, orders.CreateMissionCommand{
		Type:           data.MissionSurvey,
		TargetSectorID: "sector-1",
		ShipIDs:        []ids.ShipID{"ship-1"},
	})
	assert.Nil(t, err)
	assert.Len(t, next.Missions, 1)
	assert.Equal(t, data.ShipOnMission, next.Ships["ship-1"].Status())
}

func TestApplyCreateMission_UnstationedShipFails(t *testing.T) {
	s := newTestState(t)
	gov := s.Corporations[corporation.GovernmentCorpID]
	sh := ship.Generate("ship-1", "Vanguard", ship.BlueprintInput{
		Role:         data.RoleSystemPatrol,
		SizeVariant:  data.SizeVariantStandard,
		BuildingCorp: gov,
		HomeSectorID: "sector-1",
		BuiltTurn:    0,
		RNG:          shared.MidRand(),
	}, s.Tables)
	s.Ships["ship-1"] = sh

	_, err := orders.ApplyOrder(s, orders.CreateMissionCommand{
		Type:           data.MissionSurvey,
		TargetSectorID: "sector-1",
		ShipIDs:        []ids.ShipID{"ship-1"},
	})
	assert.NotNil(t, err)
}
