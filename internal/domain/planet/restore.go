package planet

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

// Restore reconstructs a Planet from its already-validated field values,
// the persistence-layer counterpart to New for planets that have already
// progressed past Undiscovered.
func Restore(
	id ids.PlanetID,
	name string,
	sectorID ids.SectorID,
	planetType data.PlanetType,
	size data.PlanetSize,
	status data.PlanetStatus,
	baseHabitability int,
	deposits []Deposit,
	features []Feature,
	orbitScanTurn *int,
	groundSurveyTurn *int,
) Planet {
	return Planet{
		id:               id,
		name:             name,
		sectorID:         sectorID,
		planetType:       planetType,
		size:             size,
		status:           status,
		baseHabitability: baseHabitability,
		deposits:         append([]Deposit(nil), deposits...),
		features:         append([]Feature(nil), features...),
		orbitScanTurn:    orbitScanTurn,
		groundSurveyTurn: groundSurveyTurn,
	}
}
