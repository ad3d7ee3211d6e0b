// Package turn implements resolveTurn (spec §2/§6): the nine-phase
// pipeline that advances one GameState to the next, pure in its inputs
// (state, the pending orders it applies first, an injected Rng) and its output (the
// next state plus every event emitted, in phase then emission order).
package turn

import (
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// mintEvent mints the next event id from s.Sequences.Event and returns the
// updated state alongside the new event — every phase's single entry
// point for creating events, so id-minting is never duplicated ad hoc.
func mintEvent(s state.GameState, category event.Category, priority event.Priority, title, description string, related ...string) (state.GameState, event.Event) {
	idStr, nextSeq := s.Sequences.Event.Next()
	next := s
	next.Sequences.Event = nextSeq
	e := event.New(ids.EventID(idStr), category, priority, next.Turn, title, description, related...)
	return next, e
}
