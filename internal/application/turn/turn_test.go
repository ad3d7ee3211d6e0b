package turn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/application/orders"
	"github.com/nexusforge/starforge-engine/internal/application/turn"
	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

func newTestState(t *testing.T) state.GameState {
	t.Helper()
	tables := data.GetBaseTables()
	s := state.New(tables)

	s.Galaxy = s.Galaxy.WithSector(galaxy.NewSector("sector-1", galaxy.DensityNormal, 1.0))

	p := planet.New("planet-1", "Terra Nova", "sector-1", data.PlanetContinental, data.SizeMedium, 7, nil)
	s.Planets["planet-1"] = p.WithOrbitScan(0).WithStatus(data.StatusAccepted)

	gov := corporation.New(corporation.GovernmentCorpID, "Government", data.CorpIndustrial, "planet-1", 0, 0).WithLevel(6)
	s.Corporations[corporation.GovernmentCorpID] = gov

	c := colony.New("colony-1", "planet-1", "sector-1", data.ColonyMining, 5, map[data.InfraDomain]int{data.DomainSpaceIndustry: 5}, 0)
	s.Colonies["colony-1"] = c

	s.CurrentBP = 100
	return s
}

func TestResolveTurn_IncrementsTurnAndRunsAllPhases(t *testing.T) {
	s := newTestState(t)
	next, events, err := turn.ResolveTurn(s, nil, shared.Seeded(1), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, next.Turn)
	assert.NotNil(t, events)
}

func TestResolveTurn_RejectedOrderLeavesStateUntouched(t *testing.T) {
	s := newTestState(t)
	next, _, err := turn.ResolveTurn(s, []interface{}{
		orders.AcceptPlanetCommand{PlanetID: "does-not-exist"},
	}, shared.Seeded(1), shared.NoOpLogger{}, nil)
	assert.NotNil(t, err)
	assert.Equal(t, orders.KindPlanetNotFound, err.Kind())
	assert.Equal(t, s.Turn, next.Turn)
	assert.Equal(t, s.CurrentBP, next.CurrentBP)
}

func TestResolveTurn_EventsAccumulateIntoState(t *testing.T) {
	s := newTestState(t)
	next, events, err := turn.ResolveTurn(s, nil, shared.Seeded(42), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, len(events), len(next.Events)-len(s.Events))
}

// TestResolveTurn_DebtEscalation mirrors scenario S3: a contract expense
// that exceeds CurrentBP mints a minimum of one debt token, scaled by
// deficit/3 and capped at 10.
func TestResolveTurn_DebtEscalation_SmallDeficit(t *testing.T) {
	s := newTestState(t)
	s.Corporations[corporation.GovernmentCorpID] = s.Corporations[corporation.GovernmentCorpID].WithLevel(0)
	s.CurrentBP = 5
	s.DebtTokens = 0
	s.Contracts["contract-1"] = contract.New("contract-1", data.ContractShipCommission,
		contract.Target{Kind: data.TargetColony, ColonyID: "colony-1"},
		corporation.GovernmentCorpID, 10, 20, 0)

	next, _, err := turn.ResolveTurn(s, nil, shared.Seeded(7), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, -5, next.CurrentBP)
	assert.Equal(t, 1, next.DebtTokens)
}

func TestResolveTurn_DebtEscalation_CapsAtTen(t *testing.T) {
	s := newTestState(t)
	s.Corporations[corporation.GovernmentCorpID] = s.Corporations[corporation.GovernmentCorpID].WithLevel(0)
	s.CurrentBP = 0
	s.DebtTokens = 0
	s.Contracts["contract-1"] = contract.New("contract-1", data.ContractShipCommission,
		contract.Target{Kind: data.TargetColony, ColonyID: "colony-1"},
		corporation.GovernmentCorpID, 100, 20, 0)

	next, _, err := turn.ResolveTurn(s, nil, shared.Seeded(7), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, -100, next.CurrentBP)
	assert.Equal(t, 10, next.DebtTokens)
}

// TestResolveTurn_ColonizationCompletes mirrors scenario S6: a
// colonization contract due this turn mints a new Colony on its target
// planet and marks the planet Colonized.
func TestResolveTurn_ColonizationCompletes(t *testing.T) {
	s := newTestState(t)
	s.Planets["planet-2"] = planet.New("planet-2", "New Haven", "sector-1", data.PlanetContinental, data.SizeMedium, 7, nil).
		WithOrbitScan(0).WithGroundSurvey(0).WithStatus(data.StatusAccepted)

	col := contract.New("contract-colonize", data.ContractColonization,
		contract.Target{Kind: data.TargetPlanet, PlanetID: "planet-2"},
		corporation.GovernmentCorpID, 5, 1, 0).
		WithColonizationParams(contract.ColonizationParams{ColonyType: data.ColonyMining})
	s.Contracts["contract-colonize"] = col

	next, events, err := turn.ResolveTurn(s, nil, shared.Seeded(3), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, data.StatusColonized, next.Planets["planet-2"].Status())

	foundColony := false
	for _, c := range next.Colonies {
		if c.PlanetID() == "planet-2" {
			foundColony = true
		}
	}
	assert.True(t, foundColony)

	foundEvent := false
	for _, ev := range events {
		if ev.Category == event.CategoryContract {
			foundEvent = true
		}
	}
	assert.True(t, foundEvent)
}

func TestResolveTurn_NoPhaseMutatesInputState(t *testing.T) {
	s := newTestState(t)
	beforeTurn := s.Turn
	beforeColonyCount := len(s.Colonies)

	_, _, err := turn.ResolveTurn(s, nil, shared.Seeded(9), shared.NoOpLogger{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, beforeTurn, s.Turn)
	assert.Equal(t, beforeColonyCount, len(s.Colonies))
}
