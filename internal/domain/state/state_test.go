package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

func TestNew_StartsFromTableDefaults(t *testing.T) {
	tables := data.GetBaseTables()
	s := state.New(tables)

	assert.Equal(t, tables.StartingBP, s.CurrentBP)
	assert.Equal(t, tables.StartingDebtTokens, s.DebtTokens)
	assert.Equal(t, 0, s.Turn)
}

func TestClone_MutatingCloneDoesNotAffectOriginal(t *testing.T) {
	s := state.New(data.GetBaseTables())
	cloned := s.Clone()
	cloned.Colonies["colony-1"] = cloned.Colonies["colony-1"]
	cloned.CurrentBP = 999

	assert.NotEqual(t, cloned.CurrentBP, s.CurrentBP)
	assert.Len(t, s.Colonies, 0)
}

func TestDismissEvent_IdempotentAndUnknownIDIsNoOp(t *testing.T) {
	s := state.New(data.GetBaseTables())
	e := event.New("event-1", event.CategoryBudget, event.PriorityInfo, 1, "t", "d")
	s = s.WithEventsAppended(e)

	s = s.DismissEvent("event-1")
	assert.True(t, s.Events[0].Dismissed)

	again := s.DismissEvent("event-1")
	assert.Equal(t, s.Events, again.Events)

	unaffected := s.DismissEvent("does-not-exist")
	assert.Equal(t, s.Events, unaffected.Events)
}

func TestStabilityMalus(t *testing.T) {
	s := state.New(data.GetBaseTables())
	s.DebtTokens = 5
	assert.Equal(t, 2, s.StabilityMalus())
}
