package orders

import (
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// ApplyOrder validates and applies a single order against s, returning the
// resulting state or the validation error that rejected it. Orders never
// partially apply: on error the returned state is the zero value and must
// be ignored (spec §6).
func ApplyOrder(s state.GameState, order interface{}) (state.GameState, *shared.DomainError) {
	switch o := order.(type) {
	case AcceptPlanetCommand:
		return applyAcceptPlanet(s, o)
	case RejectPlanetCommand:
		return applyRejectPlanet(s, o)
	case InvestPlanetCommand:
		return applyInvestPlanet(s, o)
	case CreateContractCommand:
		return applyCreateContract(s, o)
	case CreateTradeRouteCommand:
		return applyCreateTradeRoute(s, o)
	case CancelTradeRouteCommand:
		return applyCancelTradeRoute(s, o)
	case CreateMissionCommand:
		return applyCreateMission(s, o)
	default:
		shared.InvariantViolation("orders: unknown order type %T", order)
		return state.GameState{}, nil
	}
}

func applyAcceptPlanet(s state.GameState, o AcceptPlanetCommand) (state.GameState, *shared.DomainError) {
	p, ok := s.Planets[o.PlanetID]
	if !ok {
		return state.GameState{}, shared.NewDomainError(KindPlanetNotFound, "planet %s not found", o.PlanetID)
	}
	if p.Status() != data.StatusOrbitScanned && p.Status() != data.StatusGroundSurveyed {
		return state.GameState{}, shared.NewDomainError(KindInvalidStatus, "planet %s must be OrbitScanned or GroundSurveyed, got %s", o.PlanetID, p.Status())
	}
	next := s.Clone()
	next.Planets[o.PlanetID] = p.WithStatus(data.StatusAccepted)
	return next, nil
}

func applyRejectPlanet(s state.GameState, o RejectPlanetCommand) (state.GameState, *shared.DomainError) {
	p, ok := s.Planets[o.PlanetID]
	if !ok {
		return state.GameState{}, shared.NewDomainError(KindPlanetNotFound, "planet %s not found", o.PlanetID)
	}
	if p.Status() != data.StatusOrbitScanned && p.Status() != data.StatusGroundSurveyed {
		return state.GameState{}, shared.NewDomainError(KindInvalidStatus, "planet %s must be OrbitScanned or GroundSurveyed, got %s", o.PlanetID, p.Status())
	}
	next := s.Clone()
	next.Planets[o.PlanetID] = p.WithStatus(data.StatusRejected)
	return next, nil
}

// applyInvestPlanet spends the fixed BP cost to add one public level to a
// colony's infra domain (spec §6).
func applyInvestPlanet(s state.GameState, o InvestPlanetCommand) (state.GameState, *shared.DomainError) {
	c, ok := s.Colonies[o.ColonyID]
	if !ok {
		return state.GameState{}, shared.NewDomainError(KindColonyNotFound, "colony %s not found", o.ColonyID)
	}
	if s.CurrentBP < InvestPlanetFixedCost {
		return state.GameState{}, shared.NewDomainError(KindInsufficientBP, "investing requires %d BP, have %d", InvestPlanetFixedCost, s.CurrentBP)
	}
	if data.ExtractionDomains[o.Domain] {
		p, ok := s.Planets[c.PlanetID()]
		if !ok || p.BestMatchingDepositMaxInfraBonus(o.Domain, s.Tables) == nil {
			return state.GameState{}, shared.NewDomainError(KindNoMatchingDeposit, "colony %s has no deposit extracting into domain %s", o.ColonyID, o.Domain)
		}
	}

	domainState := c.InfraDomainState(o.Domain)
	if domainState.TotalLevels() >= domainState.CurrentCap {
		return state.GameState{}, shared.NewDomainError(KindAtCap, "colony %s domain %s is at its infrastructure cap %d", o.ColonyID, o.Domain, domainState.CurrentCap)
	}
	domainState.PublicLevels++
	next := s.Clone()
	next.Colonies[o.ColonyID] = c.WithInfraDomainState(o.Domain, domainState)
	next.CurrentBP -= InvestPlanetFixedCost
	return next, nil
}

func applyCreateContract(s state.GameState, o CreateContractCommand) (state.GameState, *shared.DomainError) {
	corp, ok := s.Corporations[o.AssignedCorpID]
	if !ok {
		return state.GameState{}, shared.NewDomainError(KindCorpNotFound, "corp %s not found", o.AssignedCorpID)
	}
	facts := resolveTargetFacts(s, o.Type, o.Target)

	idStr, nextSeq := s.Sequences.Contract.Next()
	id := ids.ContractID(idStr)

	c, err := contract.CreateContract(contract.CreateParams{
		ID:                   id,
		Type:                 o.Type,
		Target:               o.Target,
		AssignedCorp:         corp,
		StartTurn:            s.Turn,
		Tables:               s.Tables,
		Facts:                facts,
		ColonizationParams:   o.ColonizationParams,
		ShipCommissionParams: o.ShipCommissionParams,
	})
	if err != nil {
		return state.GameState{}, err
	}

	next := s.Clone()
	next.Sequences.Contract = nextSeq
	next.Contracts[c.ID()] = c
	next.Corporations[o.AssignedCorpID] = corp.WithActiveContract(c.ID())
	return next, nil
}

func applyCreateTradeRoute(s state.GameState, o CreateTradeRouteCommand) (state.GameState, *shared.DomainError) {
	return applyCreateContract(s, CreateContractCommand{
		Type: data.ContractTradeRoute,
		Target: contract.Target{
			Kind:    data.TargetSectorPair,
			SectorA: o.SectorA,
			SectorB: o.SectorB,
		},
		AssignedCorpID: o.CorpID,
	})
}

func applyCancelTradeRoute(s state.GameState, o CancelTradeRouteCommand) (state.GameState, *shared.DomainError) {
	c, ok := s.Contracts[o.ContractID]
	if !ok {
		return state.GameState{}, shared.NewDomainError(KindContractNotFound, "contract %s not found", o.ContractID)
	}
	if !c.IsTradeRoute() {
		return state.GameState{}, shared.NewDomainError(KindNotTradeRoute, "contract %s is not a trade route", o.ContractID)
	}
	if !c.IsActive() {
		return state.GameState{}, shared.NewDomainError(KindInvalidStatus, "contract %s is already completed", o.ContractID)
	}
	next := s.Clone()
	next.Contracts[o.ContractID] = c.Cancel(s.Turn)
	return next, nil
}

// captainExperience looks up a captain's experience score from GameState.
// The engine does not yet model a dedicated Captain entity beyond the id
// minted at creation time, so every captain reads as equally experienced;
// the first-listed-ship tiebreak in mission.CreateMission then picks the
// task force's nominal leader deterministically.
func captainExperience(ids.CaptainID) int { return 0 }

func applyCreateMission(s state.GameState, o CreateMissionCommand) (state.GameState, *shared.DomainError) {
	taskForce := make([]ship.Ship, 0, len(o.ShipIDs))
	for _, shipID := range o.ShipIDs {
		sh, ok := s.Ships[shipID]
		if !ok {
			return state.GameState{}, shared.NewDomainError(mission.KindShipNotFound, "ship %s not found", shipID)
		}
		taskForce = append(taskForce, sh)
	}

	idStr, nextSeq := s.Sequences.Mission.Next()
	id := ids.MissionID(idStr)

	m, err := mission.CreateMission(mission.CreateParams{
		ID:               id,
		Type:             o.Type,
		TargetSectorID:   o.TargetSectorID,
		TaskForce:        taskForce,
		Galaxy:           s.Galaxy,
		Tables:           s.Tables,
		RNG:              shared.MidRand(),
		StartTurn:        s.Turn,
		GovernmentCorpID: corporation.GovernmentCorpID,
		Experience:       captainExperience,
	})
	if err != nil {
		return state.GameState{}, err
	}

	next := s.Clone()
	next.Sequences.Mission = nextSeq
	next.Missions[m.ID()] = m
	for _, shipID := range o.ShipIDs {
		sh := next.Ships[shipID]
		next.Ships[shipID] = sh.WithStatus(data.ShipOnMission)
	}
	return next, nil
}

// resolveTargetFacts resolves contract.TargetFacts from GameState for the
// given contract type/target — the application-layer lookups the domain
// layer deliberately never performs itself (spec §9).
func resolveTargetFacts(s state.GameState, ct data.ContractType, target contract.Target) contract.TargetFacts {
	facts := contract.TargetFacts{}

	switch ct {
	case data.ContractExploration:
		_, facts.SectorExists = s.Galaxy.Sectors[target.SectorID]
		facts.HasAnyColonies = len(s.Colonies) > 0
		facts.TargetSectorHasOrIsAdjacentToColony = sectorHasOrIsAdjacentToColony(s, target.SectorID)

	case data.ContractGroundSurvey, data.ContractColonization:
		if p, ok := s.Planets[target.PlanetID]; ok {
			status := p.Status()
			facts.PlanetStatus = &status
		}

	case data.ContractShipCommission:
		if c, ok := s.Colonies[target.ColonyID]; ok {
			level := c.InfraDomainState(data.DomainSpaceIndustry).TotalLevels()
			facts.ColonySpaceIndustryLevel = &level
		}

	case data.ContractTradeRoute:
		_, facts.SectorAExists = s.Galaxy.Sectors[target.SectorA]
		_, facts.SectorBExists = s.Galaxy.Sectors[target.SectorB]
		facts.SectorsAdjacent = s.Galaxy.Adjacency.Adjacent(target.SectorA, target.SectorB)
	}

	return facts
}

func sectorHasOrIsAdjacentToColony(s state.GameState, sectorID ids.SectorID) bool {
	colonySectors := map[ids.SectorID]bool{}
	for _, c := range s.Colonies {
		colonySectors[c.SectorID()] = true
	}
	if colonySectors[sectorID] {
		return true
	}
	for _, neighbor := range s.Galaxy.Adjacency[sectorID] {
		if colonySectors[neighbor] {
			return true
		}
	}
	return false
}
