// Package mission implements the Mission entity and its travel/execute/
// return phase machine (spec §3/§4.7).
package mission

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// Report is the summary text attached when a mission completes.
type Report struct {
	Summary string
}

// Mission is owned exclusively by GameState; task-force ships and
// commander are referenced by id.
type Mission struct {
	id                     ids.MissionID
	missionType            data.MissionType
	phase                  data.MissionPhase
	targetSectorID         ids.SectorID
	shipIDs                []ids.ShipID
	commanderCaptainID     ids.CaptainID
	bpPerTurn              int
	travelTurnsRemaining   int
	executionTurnsRemaining int
	returnTurnsRemaining   int
	startTurn              int
	completedTurn          *int
	report                 *Report
}

// New constructs a freshly-created mission in the Travel phase. travelTurns
// is the BFS hop distance to targetSectorID; returnTurns is normally equal
// to travelTurns (spec §4.7).
func New(id ids.MissionID, mt data.MissionType, targetSectorID ids.SectorID, shipIDs []ids.ShipID, commanderCaptainID ids.CaptainID, bpPerTurn, travelTurns, executionTurns, returnTurns, startTurn int) Mission {
	if len(shipIDs) == 0 {
		shared.InvariantViolation("mission %s: task force must have at least one ship", id)
	}
	return Mission{
		id:                      id,
		missionType:             mt,
		phase:                   data.PhaseTravel,
		targetSectorID:          targetSectorID,
		shipIDs:                 append([]ids.ShipID(nil), shipIDs...),
		commanderCaptainID:      commanderCaptainID,
		bpPerTurn:               bpPerTurn,
		travelTurnsRemaining:    travelTurns,
		executionTurnsRemaining: executionTurns,
		returnTurnsRemaining:    returnTurns,
		startTurn:               startTurn,
	}
}

func (m Mission) ID() ids.MissionID                { return m.id }
func (m Mission) Type() data.MissionType           { return m.missionType }
func (m Mission) Phase() data.MissionPhase         { return m.phase }
func (m Mission) TargetSectorID() ids.SectorID     { return m.targetSectorID }
func (m Mission) ShipIDs() []ids.ShipID            { return append([]ids.ShipID(nil), m.shipIDs...) }
func (m Mission) CommanderCaptainID() ids.CaptainID { return m.commanderCaptainID }
func (m Mission) BPPerTurn() int                   { return m.bpPerTurn }
func (m Mission) TravelTurnsRemaining() int        { return m.travelTurnsRemaining }
func (m Mission) ExecutionTurnsRemaining() int     { return m.executionTurnsRemaining }
func (m Mission) ReturnTurnsRemaining() int        { return m.returnTurnsRemaining }
func (m Mission) StartTurn() int                   { return m.startTurn }

func (m Mission) CompletedTurn() (int, bool) {
	if m.completedTurn == nil {
		return 0, false
	}
	return *m.completedTurn, true
}

func (m Mission) Report() (Report, bool) {
	if m.report == nil {
		return Report{}, false
	}
	return *m.report, true
}

// IsActive reports whether this mission still incurs a per-turn expense
// (spec §4.9: completedTurn = none).
func (m Mission) IsActive() bool {
	_, done := m.CompletedTurn()
	return !done
}

// Advance runs one turn of the phase machine, returning the updated
// mission. Phase transitions happen the same turn a counter hits zero
// (spec §4.7): Travel -> Execute -> Return -> Complete.
func (m Mission) Advance(currentTurn int) Mission {
	next := m
	switch m.phase {
	case data.PhaseTravel:
		next.travelTurnsRemaining = decrement(m.travelTurnsRemaining)
		if next.travelTurnsRemaining <= 0 {
			next.phase = data.PhaseExecute
		}
	case data.PhaseExecute:
		next.executionTurnsRemaining = decrement(m.executionTurnsRemaining)
		if next.executionTurnsRemaining <= 0 {
			next.phase = data.PhaseReturn
		}
	case data.PhaseReturn:
		next.returnTurnsRemaining = decrement(m.returnTurnsRemaining)
		if next.returnTurnsRemaining <= 0 {
			next.phase = data.PhaseComplete
			t := currentTurn
			next.completedTurn = &t
		}
	case data.PhaseComplete:
		// already terminal; no-op.
	}
	return next
}

// WithReport returns a copy carrying the completion report.
func (m Mission) WithReport(r Report) Mission {
	next := m
	next.report = &r
	return next
}

func decrement(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

// OrderedIDs sorts mission ids ascending — the deterministic processing
// order spec §5 requires.
func OrderedIDs(missions map[ids.MissionID]Mission) []ids.MissionID {
	out := make([]ids.MissionID, 0, len(missions))
	for id := range missions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
