package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/test/bdd/steps"
)

// TestFeatures runs every Gherkin scenario under features/ against the
// step definitions in steps/ (spec §8's concrete scenarios S1-S6 plus the
// quantified invariants they ground).
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	steps.InitializePlanetLifecycleScenario(ctx)
	steps.InitializeFormulaScenario(ctx)
	steps.InitializeBudgetScenario(ctx)
	steps.InitializeContractCreationScenario(ctx)
	steps.InitializeContractCompletionScenario(ctx)
}
