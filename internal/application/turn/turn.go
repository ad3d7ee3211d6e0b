package turn

import (
	"github.com/nexusforge/starforge-engine/internal/application/orders"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// ResolveTurn is the engine's sole write path (spec §2/§6): apply every
// pending order against the current state, then run the nine fixed phases
// in order, each taking the state the previous phase produced and
// appending its own events. No phase mutates its input; resolveTurn itself
// never mutates s.
//
// logger may be nil, in which case shared.NoOpLogger is used.
//
// clock may be nil, in which case Timestamps is left untouched (callers
// that don't care about wall-clock stamps, e.g. deterministic replay
// tests, can omit it).
func ResolveTurn(s state.GameState, pendingOrders []interface{}, rng shared.Rng, logger shared.Logger, clock shared.Clock) (state.GameState, []event.Event, *shared.DomainError) {
	if logger == nil {
		logger = shared.NoOpLogger{}
	}
	next := s
	for _, o := range pendingOrders {
		applied, err := orders.ApplyOrder(next, o)
		if err != nil {
			return s, nil, err
		}
		next = applied
	}

	next.Turn = next.Turn + 1
	if clock != nil {
		next = next.WithTimestamp(clock.Now())
	}

	var allEvents []event.Event

	var phaseEvents []event.Event
	next, phaseEvents = runContractPhase(next, rng, logger)
	allEvents = append(allEvents, phaseEvents...)

	next, phaseEvents = runColonyPhase(next, rng, logger)
	allEvents = append(allEvents, phaseEvents...)

	next, phaseEvents = runMarketPhase(next, logger)
	allEvents = append(allEvents, phaseEvents...)

	next, phaseEvents = runCorpPhase(next, rng, logger)
	allEvents = append(allEvents, phaseEvents...)

	next, phaseEvents = runSciencePhase(next, logger)
	allEvents = append(allEvents, phaseEvents...)

	next, phaseEvents = runMissionPhase(next, logger)
	allEvents = append(allEvents, phaseEvents...)

	next = runBudgetPhase(next, logger)

	next = runEventPhase(next, allEvents)

	return next, allEvents, nil
}

// runEventPhase is the pipeline's final named stage (spec §2): it folds
// every event every prior phase emitted into state.Events, in phase then
// emission order, so the caller's next read of state sees the full log
// without tracking per-phase event slices itself.
func runEventPhase(next state.GameState, turnEvents []event.Event) state.GameState {
	return next.WithEventsAppended(turnEvents...)
}
