package turn

import (
	"fmt"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runMissionPhase advances every active mission's phase machine, restoring
// task-force ships to Stationed and attaching a completion report the turn
// a mission reaches Complete (spec §4.7: that bookkeeping is the
// application layer's job, not Mission.Advance's).
func runMissionPhase(s state.GameState, logger shared.Logger) (state.GameState, []event.Event) {
	next := s.Clone()
	var events []event.Event

	for _, missionID := range mission.OrderedIDs(next.Missions) {
		m := next.Missions[missionID]
		if !m.IsActive() {
			continue
		}
		wasPhase := m.Phase()
		m = m.Advance(next.Turn)
		justCompleted := wasPhase != data.PhaseComplete && m.Phase() == data.PhaseComplete

		if justCompleted {
			for _, shipID := range m.ShipIDs() {
				sh, ok := next.Ships[shipID]
				if !ok {
					continue
				}
				next.Ships[shipID] = sh.WithStatus(data.ShipStationed)
			}
			m = m.WithReport(mission.Report{
				Summary: fmt.Sprintf("%s mission to %s concluded", m.Type(), m.TargetSectorID()),
			})

			var ev event.Event
			next, ev = mintEvent(next, event.CategoryMission, event.PriorityPositive,
				"Mission complete",
				fmt.Sprintf("mission %s returned from %s", missionID, m.TargetSectorID()),
				string(missionID))
			events = append(events, ev)
		}

		next.Missions[missionID] = m
	}

	logger.Log("debug", "mission phase complete", map[string]interface{}{"turn": next.Turn, "events": len(events)})
	return next, events
}
