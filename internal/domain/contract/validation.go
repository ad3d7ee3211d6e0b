package contract

import (
	"math"

	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// IsEligible implements spec §4.3's three-way eligibility rule: type match,
// or level >= 6 (unrestricted), or level >= 3 and the contract type is not
// specialized.
func IsEligible(corp corporation.Corporation, ct data.ContractType, tables data.Tables) bool {
	info := tables.ContractType(ct)
	for _, allowed := range info.EligibleCorpTypes {
		if corp.Type() == allowed {
			return true
		}
	}
	if corp.Level() >= 6 {
		return true
	}
	if corp.Level() >= 3 && !data.SpecializedContractTypes[ct] {
		return true
	}
	return false
}

// TargetFacts bundles the externally-resolved facts CreateContract needs
// about the target — resolved by the caller (application layer) from
// GameState, since the domain layer never reaches into global maps
// itself (spec §9: entities reference each other by id only).
type TargetFacts struct {
	SectorExists            bool
	PlanetStatus             *data.PlanetStatus
	SectorAExists            bool
	SectorBExists            bool
	SectorsAdjacent          bool
	HasAnyColonies           bool
	TargetSectorHasOrIsAdjacentToColony bool
	ColonySpaceIndustryLevel *int
}

// CreateParams is the full input to CreateContract.
type CreateParams struct {
	ID                   ids.ContractID
	Type                 data.ContractType
	Target               Target
	AssignedCorp         corporation.Corporation
	StartTurn            int
	Tables               data.Tables
	Facts                TargetFacts
	ColonizationParams   *ColonizationParams
	ShipCommissionParams *ShipCommissionParams
}

// CreateContract validates params against spec §4.3's rules and, on
// success, returns a new Active contract with its bp/turn and duration
// derived deterministically (ship commission uses RNG=midRand per spec).
func CreateContract(params CreateParams) (Contract, *shared.DomainError) {
	info := params.Tables.ContractType(params.Type)

	if !IsEligible(params.AssignedCorp, params.Type, params.Tables) {
		return Contract{}, shared.NewDomainError(KindCorpNotEligible, "corp %s is not eligible for contract type %s", params.AssignedCorp.ID(), params.Type)
	}

	if params.Target.Kind != info.TargetKind {
		return Contract{}, shared.NewDomainError(KindInvalidTargetType, "contract type %s requires target kind %s, got %s", params.Type, info.TargetKind, params.Target.Kind)
	}

	switch params.Type {
	case data.ContractExploration:
		if params.Facts.HasAnyColonies && !params.Facts.TargetSectorHasOrIsAdjacentToColony {
			return Contract{}, shared.NewDomainError(KindSectorOutOfRange, "exploration target sector must contain or be adjacent to a player colony")
		}
		if !params.Facts.SectorExists {
			return Contract{}, shared.NewDomainError(KindTargetNotFound, "sector not found")
		}
		duration := formula.ExplorationDuration(params.AssignedCorp.Level())
		return New(params.ID, params.Type, params.Target, params.AssignedCorp.ID(), info.BaseBPPerTurn, duration, params.StartTurn), nil

	case data.ContractGroundSurvey:
		if params.Facts.PlanetStatus == nil {
			return Contract{}, shared.NewDomainError(KindTargetNotFound, "planet not found")
		}
		status := *params.Facts.PlanetStatus
		if status != data.StatusOrbitScanned && status != data.StatusAccepted {
			return Contract{}, shared.NewDomainError(KindInvalidPlanetStatus, "ground survey target must be OrbitScanned or Accepted, got %s", status)
		}
		return New(params.ID, params.Type, params.Target, params.AssignedCorp.ID(), info.BaseBPPerTurn, info.BaseDuration, params.StartTurn), nil

	case data.ContractColonization:
		if params.Facts.PlanetStatus == nil {
			return Contract{}, shared.NewDomainError(KindTargetNotFound, "planet not found")
		}
		status := *params.Facts.PlanetStatus
		if status != data.StatusAccepted && status != data.StatusGroundSurveyed {
			return Contract{}, shared.NewDomainError(KindInvalidPlanetStatus, "colonization target must be Accepted or GroundSurveyed, got %s", status)
		}
		if params.ColonizationParams == nil {
			return Contract{}, shared.NewDomainError(KindMissingColonyType, "colonization contract requires colonization params")
		}
		colonyInfo := params.Tables.ColonyType(params.ColonizationParams.ColonyType)
		c := New(params.ID, params.Type, params.Target, params.AssignedCorp.ID(), colonyInfo.BPPerTurn, colonyInfo.Duration, params.StartTurn)
		return c.WithColonizationParams(*params.ColonizationParams), nil

	case data.ContractShipCommission:
		if params.ShipCommissionParams == nil {
			return Contract{}, shared.NewDomainError(KindMissingShipParams, "ship commission contract requires ship params")
		}
		roleInfo := params.Tables.Role(params.ShipCommissionParams.Role)
		variantInfo := params.Tables.SizeVariant(params.ShipCommissionParams.SizeVariant)
		required := int(math.Floor(float64(roleInfo.BaseSize) * variantInfo.SizeMultiplier))
		if params.Facts.ColonySpaceIndustryLevel == nil {
			return Contract{}, shared.NewDomainError(KindTargetNotFound, "colony not found")
		}
		if *params.Facts.ColonySpaceIndustryLevel < required {
			return Contract{}, shared.NewDomainError(KindInsufficientSpaceInfra, "colony SpaceIndustry level %d below required %d", *params.Facts.ColonySpaceIndustryLevel, required)
		}

		corpMod := formula.CorpMod(params.AssignedCorp.Level())
		rawSize := formula.RawSize(roleInfo.BaseSize, corpMod)
		bpPerTurn := formula.ShipCommissionBPPerTurn(rawSize, variantInfo.SizeCostMultiplier)
		baseBuildTime := formula.BaseBuildTime(rawSize, roleInfo.BuildTimeBonus)
		buildTime := formula.BuildTime(baseBuildTime, variantInfo.SizeBuildTimeMultiplier)
		actualBuildTime := formula.ActualBuildTime(buildTime, params.AssignedCorp.Level())

		c := New(params.ID, params.Type, params.Target, params.AssignedCorp.ID(), bpPerTurn, actualBuildTime, params.StartTurn)
		return c.WithShipCommissionParams(*params.ShipCommissionParams), nil

	case data.ContractTradeRoute:
		if !params.Facts.SectorAExists || !params.Facts.SectorBExists {
			return Contract{}, shared.NewDomainError(KindTargetNotFound, "trade route sector not found")
		}
		if !params.Facts.SectorsAdjacent {
			return Contract{}, shared.NewDomainError(KindSectorsNotAdjacent, "trade route sectors must be adjacent")
		}
		return New(params.ID, params.Type, params.Target, params.AssignedCorp.ID(), info.BaseBPPerTurn, data.TradeRouteSentinelTurns, params.StartTurn), nil

	default:
		shared.InvariantViolation("unknown contract type %s", params.Type)
		return Contract{}, nil
	}
}
