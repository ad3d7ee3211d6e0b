package mission

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
)

// Error kinds for mission creation validation.
const (
	KindShipNotFound        shared.Kind = "ShipNotFound"
	KindShipNotOwnedByGovt  shared.Kind = "ShipNotOwnedByGovernment"
	KindShipNotStationed    shared.Kind = "ShipNotStationed"
	KindTargetSectorNotFound shared.Kind = "TargetSectorNotFound"
	KindNoPathToTarget      shared.Kind = "NoPathToTarget"
)

// CaptainExperienceLookup resolves a captain's experience score, used to
// pick the task-force commander.
type CaptainExperienceLookup func(ids.CaptainID) int

// CreateParams is the full input to CreateMission.
type CreateParams struct {
	ID               ids.MissionID
	Type             data.MissionType
	TargetSectorID   ids.SectorID
	TaskForce        []ship.Ship
	Galaxy           galaxy.Galaxy
	Tables           data.Tables
	RNG              shared.Rng
	StartTurn        int
	GovernmentCorpID ids.CorpID
	Experience       CaptainExperienceLookup
}

// CreateMission validates the task force and target, picks the highest-
// experience captain as commander (ties broken by first-listed order),
// computes travel time via BFS, and rolls the execution duration from the
// mission type's [min,max] range (spec §4.7).
func CreateMission(params CreateParams) (Mission, *shared.DomainError) {
	if len(params.TaskForce) == 0 {
		return Mission{}, shared.NewDomainError(KindShipNotFound, "task force must not be empty")
	}
	if _, ok := params.Galaxy.Sectors[params.TargetSectorID]; !ok {
		return Mission{}, shared.NewDomainError(KindTargetSectorNotFound, "target sector %s not found", params.TargetSectorID)
	}

	shipIDs := make([]ids.ShipID, 0, len(params.TaskForce))
	for _, s := range params.TaskForce {
		if s.OwnerCorpID() != params.GovernmentCorpID {
			return Mission{}, shared.NewDomainError(KindShipNotOwnedByGovt, "ship %s is not government-owned", s.ID())
		}
		if s.Status() != data.ShipStationed {
			return Mission{}, shared.NewDomainError(KindShipNotStationed, "ship %s is not Stationed", s.ID())
		}
		shipIDs = append(shipIDs, s.ID())
	}

	departureSectorID := params.TaskForce[0].HomeSectorID()
	travelTurns, reachable := params.Galaxy.Adjacency.ShortestHops(departureSectorID, params.TargetSectorID)
	if !reachable {
		return Mission{}, shared.NewDomainError(KindNoPathToTarget, "no path from %s to %s", departureSectorID, params.TargetSectorID)
	}

	commander := highestExperienceCaptain(params.TaskForce, params.Experience)

	typeInfo := params.Tables.MissionType(params.Type)
	executionTurns := shared.IntRange(params.RNG, typeInfo.DurMin, typeInfo.DurMax)

	bpPerTurn := typeInfo.BaseBP
	for _, s := range params.TaskForce {
		if s.Size() >= 7 {
			bpPerTurn++
		}
	}

	return New(params.ID, params.Type, params.TargetSectorID, shipIDs, commander, bpPerTurn, travelTurns, executionTurns, travelTurns, params.StartTurn), nil
}

func highestExperienceCaptain(taskForce []ship.Ship, experience CaptainExperienceLookup) ids.CaptainID {
	var best ids.CaptainID
	bestExperience := -1
	found := false
	for _, s := range taskForce {
		captainID, ok := s.CaptainID()
		if !ok {
			continue
		}
		exp := experience(captainID)
		if !found || exp > bestExperience {
			best = captainID
			bestExperience = exp
			found = true
		}
	}
	return best
}
