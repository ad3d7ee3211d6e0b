package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/nexusforge/starforge-engine/internal/application/orders"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

const lifecyclePlanetID = ids.PlanetID("planet-lifecycle-1")

type planetLifecycleContext struct {
	state        state.GameState
	originalAttr planet.Planet
	resultState  state.GameState
	err          *shared.DomainError
}

func (plc *planetLifecycleContext) reset() {
	plc.state = state.GameState{}
	plc.err = nil
}

func (plc *planetLifecycleContext) aPlanetWithStatus(status string) error {
	tables := data.GetBaseTables()
	plc.state = state.New(tables)

	p := planet.New(lifecyclePlanetID, "Terra Nova", "sector-1", data.PlanetContinental, data.SizeMedium, 7, nil)
	switch status {
	case "OrbitScanned":
		p = p.WithOrbitScan(0)
	case "Colonized":
		p = p.WithOrbitScan(0).WithStatus(data.StatusColonized)
	default:
		return fmt.Errorf("unsupported planet status %q", status)
	}
	plc.originalAttr = p
	plc.state.Planets[lifecyclePlanetID] = p
	return nil
}

func (plc *planetLifecycleContext) iAcceptThePlanet() error {
	next, err := orders.ApplyOrder(plc.state, orders.AcceptPlanetCommand{PlanetID: lifecyclePlanetID})
	plc.resultState = next
	plc.err = err
	return nil
}

func (plc *planetLifecycleContext) iTryToRejectThePlanet() error {
	next, err := orders.ApplyOrder(plc.state, orders.RejectPlanetCommand{PlanetID: lifecyclePlanetID})
	plc.resultState = next
	plc.err = err
	return nil
}

func (plc *planetLifecycleContext) thePlanetStatusShouldBe(status string) error {
	if plc.err != nil {
		return fmt.Errorf("expected success, got error: %s", plc.err.Error())
	}
	got := plc.resultState.Planets[lifecyclePlanetID].Status()
	if string(got) != status {
		return fmt.Errorf("expected planet status %s, got %s", status, got)
	}
	return nil
}

func (plc *planetLifecycleContext) noOtherPlanetFieldShouldHaveChanged() error {
	got := plc.resultState.Planets[lifecyclePlanetID]
	if got.Name() != plc.originalAttr.Name() || got.SectorID() != plc.originalAttr.SectorID() || got.Size() != plc.originalAttr.Size() {
		return fmt.Errorf("unrelated planet fields changed on accept")
	}
	return nil
}

func (plc *planetLifecycleContext) theOrderShouldFailWithErrorKind(kind string) error {
	if plc.err == nil {
		return fmt.Errorf("expected an error of kind %s, got none", kind)
	}
	if string(plc.err.Kind()) != kind {
		return fmt.Errorf("expected error kind %s, got %s", kind, plc.err.Kind())
	}
	return nil
}

// InitializePlanetLifecycleScenario registers the accept/reject lifecycle
// steps.
func InitializePlanetLifecycleScenario(ctx *godog.ScenarioContext) {
	plc := &planetLifecycleContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		plc.reset()
		return c, nil
	})

	ctx.Step(`^a planet with status (\w+)$`, plc.aPlanetWithStatus)
	ctx.Step(`^I accept the planet$`, plc.iAcceptThePlanet)
	ctx.Step(`^I try to reject the planet$`, plc.iTryToRejectThePlanet)
	ctx.Step(`^the planet status should be (\w+)$`, plc.thePlanetStatusShouldBe)
	ctx.Step(`^no other planet field should have changed$`, plc.noOtherPlanetFieldShouldHaveChanged)
	ctx.Step(`^the order should fail with error kind (\w+)$`, plc.theOrderShouldFailWithErrorKind)
}
