package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/internal/application/turn"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

type budgetContext struct {
	state  state.GameState
	result state.GameState
}

func (bc *budgetContext) reset() {
	tables := data.GetBaseTables()
	bc.state = state.New(tables)
	bc.result = state.GameState{}
}

func (bc *budgetContext) aStateWithCurrentBPAndDebtTokens(bp, debt int) error {
	bc.state.CurrentBP = bp
	bc.state.DebtTokens = debt

	gov := corporation.New(corporation.GovernmentCorpID, "Government", data.CorpIndustrial, "planet-1", 0, 0).WithLevel(0)
	bc.state.Corporations[corporation.GovernmentCorpID] = gov
	return nil
}

func (bc *budgetContext) anActiveContractAssignedToTheGovernmentCorpWithBPPerTurn(bpPerTurn int) error {
	c := contract.New("contract-debt-1", data.ContractExploration,
		contract.Target{Kind: data.TargetSector, SectorID: "sector-1"},
		corporation.GovernmentCorpID, bpPerTurn, 10, 0)
	bc.state.Contracts[c.ID()] = c
	return nil
}

func (bc *budgetContext) theBudgetPhaseRuns() error {
	next, _, err := turn.ResolveTurn(bc.state, nil, shared.Seeded(1), shared.NoOpLogger{}, nil)
	if err != nil {
		return fmt.Errorf("turn resolution failed: %s", err.Error())
	}
	bc.result = next
	return nil
}

func (bc *budgetContext) currentBPShouldBe(expected int) error {
	if bc.result.CurrentBP != expected {
		return fmt.Errorf("expected currentBP %d, got %d", expected, bc.result.CurrentBP)
	}
	return nil
}

func (bc *budgetContext) debtTokensShouldBe(expected int) error {
	if bc.result.DebtTokens != expected {
		return fmt.Errorf("expected debtTokens %d, got %d", expected, bc.result.DebtTokens)
	}
	return nil
}

// InitializeBudgetScenario registers the debt-escalation scenarios. The
// contract phase runs ahead of the budget phase inside ResolveTurn, but a
// freshly created exploration contract has duration 10 and is nowhere
// near due, so it only contributes its bpPerTurn expense this turn.
func InitializeBudgetScenario(ctx *godog.ScenarioContext) {
	bc := &budgetContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		bc.reset()
		return c, nil
	})

	ctx.Step(`^a state with currentBP (-?\d+) and debtTokens (\d+)$`, bc.aStateWithCurrentBPAndDebtTokens)
	ctx.Step(`^an active contract assigned to the government corp with bpPerTurn (\d+)$`, bc.anActiveContractAssignedToTheGovernmentCorpWithBPPerTurn)
	ctx.Step(`^the budget phase runs$`, bc.theBudgetPhaseRuns)
	ctx.Step(`^currentBP should be (-?\d+)$`, bc.currentBPShouldBe)
	ctx.Step(`^debtTokens should be (\d+)$`, bc.debtTokensShouldBe)
}
