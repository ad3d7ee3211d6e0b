package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/internal/domain/formula"
)

type formulaContext struct {
	pop, hab   int
	level      int
	tax        int
	duration   int
}

func (fc *formulaContext) reset() {
	*fc = formulaContext{}
}

func (fc *formulaContext) aColonyWithPopulationLevelAndHabitability(pop, hab int) error {
	fc.pop, fc.hab = pop, hab
	return nil
}

func (fc *formulaContext) iComputeThePlanetTax() error {
	fc.tax = formula.PlanetTax(fc.pop, fc.hab)
	return nil
}

func (fc *formulaContext) thePlanetTaxShouldBe(expected int) error {
	if fc.tax != expected {
		return fmt.Errorf("expected planet tax %d, got %d", expected, fc.tax)
	}
	return nil
}

func (fc *formulaContext) aCorporationAtLevel(level int) error {
	fc.level = level
	return nil
}

func (fc *formulaContext) anExplorationContractIsCreatedForThatCorporation() error {
	fc.duration = formula.ExplorationDuration(fc.level)
	return nil
}

func (fc *formulaContext) theContractDurationShouldBe(expected int) error {
	if fc.duration != expected {
		return fmt.Errorf("expected contract duration %d, got %d", expected, fc.duration)
	}
	return nil
}

// InitializeFormulaScenario registers the planet-tax and exploration-
// duration scenarios, which exercise pure formula functions directly
// without needing a full GameState fixture.
func InitializeFormulaScenario(ctx *godog.ScenarioContext) {
	fc := &formulaContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.reset()
		return c, nil
	})

	ctx.Step(`^a colony with population level (\d+) and habitability (\d+)$`, fc.aColonyWithPopulationLevelAndHabitability)
	ctx.Step(`^I compute the planet tax$`, fc.iComputeThePlanetTax)
	ctx.Step(`^the planet tax should be (\d+)$`, fc.thePlanetTaxShouldBe)

	ctx.Step(`^a corporation at level (\d+)$`, fc.aCorporationAtLevel)
	ctx.Step(`^an exploration contract is created for that corporation$`, fc.anExplorationContractIsCreatedForThatCorporation)
	ctx.Step(`^the contract duration should be (\d+)$`, fc.theContractDurationShouldBe)
}
