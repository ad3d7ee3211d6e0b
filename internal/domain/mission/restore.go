package mission

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

// Restore reconstructs a Mission from its already-validated field values,
// the persistence-layer counterpart to New.
func Restore(
	id ids.MissionID,
	missionType data.MissionType,
	phase data.MissionPhase,
	targetSectorID ids.SectorID,
	shipIDs []ids.ShipID,
	commanderCaptainID ids.CaptainID,
	bpPerTurn, travelTurnsRemaining, executionTurnsRemaining, returnTurnsRemaining, startTurn int,
	completedTurn *int,
	report *Report,
) Mission {
	return Mission{
		id:                      id,
		missionType:             missionType,
		phase:                   phase,
		targetSectorID:          targetSectorID,
		shipIDs:                 append([]ids.ShipID(nil), shipIDs...),
		commanderCaptainID:      commanderCaptainID,
		bpPerTurn:               bpPerTurn,
		travelTurnsRemaining:    travelTurnsRemaining,
		executionTurnsRemaining: executionTurnsRemaining,
		returnTurnsRemaining:    returnTurnsRemaining,
		startTurn:               startTurn,
		completedTurn:           completedTurn,
		report:                  report,
	}
}
