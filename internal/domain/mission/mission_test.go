package mission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
)

func newTestMission() mission.Mission {
	return mission.New("mission-1", data.MissionPatrol, "sector-2", []ids.ShipID{"ship-1"}, "captain-1", 2, 2, 3, 1, 1)
}

func TestAdvance_TravelThenExecuteThenReturnThenComplete(t *testing.T) {
	m := newTestMission()

	m = m.Advance(2)
	assert.Equal(t, data.PhaseTravel, m.Phase())
	assert.Equal(t, 1, m.TravelTurnsRemaining())

	m = m.Advance(3)
	assert.Equal(t, data.PhaseExecute, m.Phase())

	m = m.Advance(4)
	assert.Equal(t, data.PhaseExecute, m.Phase())
	assert.Equal(t, 2, m.ExecutionTurnsRemaining())

	m = m.Advance(5)
	m = m.Advance(6)
	assert.Equal(t, data.PhaseReturn, m.Phase())

	m = m.Advance(7)
	assert.Equal(t, data.PhaseComplete, m.Phase())
	turn, ok := m.CompletedTurn()
	assert.True(t, ok)
	assert.Equal(t, 7, turn)
}

func TestAdvance_CompletePhaseIsTerminal(t *testing.T) {
	m := newTestMission()
	for i := 0; i < 10; i++ {
		m = m.Advance(i)
	}
	assert.Equal(t, data.PhaseComplete, m.Phase())
	assert.False(t, m.IsActive())
}
