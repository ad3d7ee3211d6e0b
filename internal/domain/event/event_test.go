package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/event"
)

func TestDismiss_IdempotentOnAlreadyDismissed(t *testing.T) {
	e := event.New("event-1", event.CategoryContract, event.PriorityPositive, 3, "Contract complete", "desc")
	once := e.Dismiss()
	twice := once.Dismiss()

	assert.True(t, once.Dismissed)
	assert.Equal(t, once, twice)
}

func TestUndismissed_FiltersAndPreservesOrder(t *testing.T) {
	a := event.New("event-1", event.CategoryColony, event.PriorityWarning, 1, "A", "")
	b := event.New("event-2", event.CategoryColony, event.PriorityWarning, 1, "B", "").Dismiss()
	c := event.New("event-3", event.CategoryColony, event.PriorityWarning, 1, "C", "")

	out := event.Undismissed([]event.Event{a, b, c})

	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "C", out[1].Title)
}
