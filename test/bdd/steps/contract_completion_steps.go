package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/internal/application/turn"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

const (
	completionPlanetID ids.PlanetID = "planet-colonize-1"
	completionCorpID   ids.CorpID   = "corp-colonize-1"
)

type contractCompletionContext struct {
	state          state.GameState
	beforeCapital  int
	bpPerTurn      int
	duration       int
	result         state.GameState
	err            *shared.DomainError
}

func (xc *contractCompletionContext) reset() {
	tables := data.GetBaseTables()
	xc.state = state.New(tables)
	xc.state.Galaxy = xc.state.Galaxy.WithSector(galaxy.NewSector("sector-1", galaxy.DensityNormal, 1.0))
	xc.result = state.GameState{}
	xc.err = nil
}

func (xc *contractCompletionContext) anAcceptedPlanetWithNoColony() error {
	p := planet.New(completionPlanetID, "New Horizon", "sector-1", data.PlanetContinental, data.SizeMedium, 6, nil).
		WithOrbitScan(0).WithStatus(data.StatusAccepted)
	xc.state.Planets[completionPlanetID] = p
	return nil
}

func (xc *contractCompletionContext) aCorporationWithCapital(capital int) error {
	corp := corporation.New(completionCorpID, "Frontier Holdings", data.CorpIndustrial, completionPlanetID, capital, 0)
	xc.state.Corporations[completionCorpID] = corp
	xc.beforeCapital = capital
	return nil
}

func (xc *contractCompletionContext) aColonizationContractAssignedToThatCorporationTypeFrontierDueThisTurn(colonyType string) error {
	if colonyType != "Frontier" {
		return fmt.Errorf("unsupported colony type %q in step fixture", colonyType)
	}
	info := xc.state.Tables.ColonyType(data.ColonyFrontier)
	xc.bpPerTurn = info.BPPerTurn
	xc.duration = info.Duration

	c := contract.New("contract-colonize-1", data.ContractColonization,
		contract.Target{Kind: data.TargetPlanet, PlanetID: completionPlanetID},
		completionCorpID, info.BPPerTurn, 1, 0).
		WithColonizationParams(contract.ColonizationParams{ColonyType: data.ColonyFrontier})
	xc.state.Contracts[c.ID()] = c
	return nil
}

func (xc *contractCompletionContext) theContractPhaseResolves() error {
	next, _, err := turn.ResolveTurn(xc.state, nil, shared.Seeded(1), shared.NoOpLogger{}, nil)
	xc.result = next
	xc.err = err
	return nil
}

func (xc *contractCompletionContext) aNewColonyOfTypeFrontierShouldExistOnThePlanet() error {
	if xc.err != nil {
		return fmt.Errorf("turn resolution failed: %s", xc.err.Error())
	}
	found := false
	for _, c := range xc.result.Colonies {
		if c.PlanetID() == completionPlanetID && c.Type() == data.ColonyFrontier {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no Frontier colony found on planet %s", completionPlanetID)
	}
	return nil
}

func (xc *contractCompletionContext) theColonysCorporationsPresentShouldContainTheCorporation() error {
	for _, c := range xc.result.Colonies {
		if c.PlanetID() != completionPlanetID {
			continue
		}
		for _, id := range c.CorporationsPresent() {
			if id == completionCorpID {
				return nil
			}
		}
		return fmt.Errorf("corporation %s not present on new colony", completionCorpID)
	}
	return fmt.Errorf("no colony found on planet %s", completionPlanetID)
}

func (xc *contractCompletionContext) thePlanetStatusShouldBeColonized() error {
	if xc.result.Planets[completionPlanetID].Status() != data.StatusColonized {
		return fmt.Errorf("expected planet status Colonized, got %s", xc.result.Planets[completionPlanetID].Status())
	}
	return nil
}

func (xc *contractCompletionContext) theCorporationsCapitalShouldHaveIncreasedByTheCompletionBonus() error {
	expectedBonus := formula.CompletionBonus(xc.bpPerTurn, xc.duration)
	got := xc.result.Corporations[completionCorpID].Capital() - xc.beforeCapital
	if got != expectedBonus {
		return fmt.Errorf("expected capital increase %d, got %d", expectedBonus, got)
	}
	return nil
}

func (xc *contractCompletionContext) theCorporationsPlanetsPresentShouldContainThePlanetExactlyOnce() error {
	count := 0
	for _, id := range xc.result.Corporations[completionCorpID].PlanetsPresent() {
		if id == completionPlanetID {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("expected planet %s present exactly once, got %d", completionPlanetID, count)
	}
	return nil
}

// InitializeContractCompletionScenario registers the colonization-
// completion scenario (spec §8 S6), driven through the real turn
// pipeline rather than calling the unexported contract phase directly.
func InitializeContractCompletionScenario(ctx *godog.ScenarioContext) {
	xc := &contractCompletionContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		xc.reset()
		return c, nil
	})

	ctx.Step(`^an accepted planet with no colony$`, xc.anAcceptedPlanetWithNoColony)
	ctx.Step(`^a corporation with (\d+) capital$`, xc.aCorporationWithCapital)
	ctx.Step(`^a Colonization contract assigned to that corporation, type (\w+), due this turn$`, xc.aColonizationContractAssignedToThatCorporationTypeFrontierDueThisTurn)
	ctx.Step(`^the contract phase resolves$`, xc.theContractPhaseResolves)
	ctx.Step(`^a new colony of type Frontier should exist on the planet$`, xc.aNewColonyOfTypeFrontierShouldExistOnThePlanet)
	ctx.Step(`^the colony's corporations present should contain the corporation$`, xc.theColonysCorporationsPresentShouldContainTheCorporation)
	ctx.Step(`^the planet status should be Colonized$`, xc.thePlanetStatusShouldBeColonized)
	ctx.Step(`^the corporation's capital should have increased by the completion bonus$`, xc.theCorporationsCapitalShouldHaveIncreasedByTheCompletionBonus)
	ctx.Step(`^the corporation's planets present should contain the planet exactly once$`, xc.theCorporationsPlanetsPresentShouldContainThePlanetExactlyOnce)
}
