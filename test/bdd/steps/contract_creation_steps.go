package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

const commissionColonyID = "colony-commission-1"

type contractCreationContext struct {
	corp     corporation.Corporation
	col      colony.Colony
	result   contract.Contract
	err      *shared.DomainError
}

func (cc *contractCreationContext) reset() {
	*cc = contractCreationContext{}
}

func (cc *contractCreationContext) aLevelCorporation(level int) error {
	cc.corp = corporation.New("corp-1", "Frontier Holdings", data.CorpShipbuilding, "planet-1", 0, 0).WithLevel(level)
	return nil
}

func (cc *contractCreationContext) aColonyWithSpaceIndustryLevel(level int) error {
	col := colony.New(commissionColonyID, "planet-1", "sector-1", data.ColonyMining, 5,
		map[data.InfraDomain]int{data.DomainSpaceIndustry: level}, 0)
	cc.col = col
	return nil
}

func (cc *contractCreationContext) iCommissionAStandardSystemPatrolShipAtThatColony() error {
	tables := data.GetBaseTables()
	spaceIndustryLevel := cc.col.InfraDomainState(data.DomainSpaceIndustry).TotalLevels()

	result, err := contract.CreateContract(contract.CreateParams{
		ID:           "contract-ship-1",
		Type:         data.ContractShipCommission,
		Target:       contract.Target{Kind: data.TargetColony, ColonyID: commissionColonyID},
		AssignedCorp: cc.corp,
		StartTurn:    0,
		Tables:       tables,
		Facts:        contract.TargetFacts{ColonySpaceIndustryLevel: &spaceIndustryLevel},
		ShipCommissionParams: &contract.ShipCommissionParams{
			Role:        data.RoleSystemPatrol,
			SizeVariant: data.SizeVariantStandard,
		},
	})
	cc.result = result
	cc.err = err
	return nil
}

func (cc *contractCreationContext) theContractShouldBeCreatedSuccessfully() error {
	if cc.err != nil {
		return fmt.Errorf("expected contract creation to succeed, got error: %s", cc.err.Error())
	}
	return nil
}

func (cc *contractCreationContext) theCommissionedShipsBuildTimeShouldBeTurns(turns int) error {
	if cc.err != nil {
		return fmt.Errorf("expected contract creation to succeed, got error: %s", cc.err.Error())
	}
	if cc.result.Duration() != turns {
		return fmt.Errorf("expected build time %d, got %d", turns, cc.result.Duration())
	}
	return nil
}

func (cc *contractCreationContext) theShipCommissionShouldFailWithErrorKind(kind string) error {
	if cc.err == nil {
		return fmt.Errorf("expected an error of kind %s, got none", kind)
	}
	if string(cc.err.Kind()) != kind {
		return fmt.Errorf("expected error kind %s, got %s", kind, cc.err.Kind())
	}
	return nil
}

// InitializeContractCreationScenario registers the ship-commission
// creation scenarios.
func InitializeContractCreationScenario(ctx *godog.ScenarioContext) {
	cc := &contractCreationContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return c, nil
	})

	ctx.Step(`^a level (\d+) corporation$`, cc.aLevelCorporation)
	ctx.Step(`^a colony with SpaceIndustry level (\d+)$`, cc.aColonyWithSpaceIndustryLevel)
	ctx.Step(`^I commission a Standard SystemPatrol ship at that colony$`, cc.iCommissionAStandardSystemPatrolShipAtThatColony)
	ctx.Step(`^the contract should be created successfully$`, cc.theContractShouldBeCreatedSuccessfully)
	ctx.Step(`^the commissioned ship's build time should be (\d+) turns$`, cc.theCommissionedShipsBuildTimeShouldBeTurns)
	ctx.Step(`^the ship commission should fail with error kind (\w+)$`, cc.theShipCommissionShouldFailWithErrorKind)
}
