// Package orders implements the discriminated order variants and the
// validateOrder/applyOrder API of spec §6. Validation and application are
// pure functions of (GameState, Order) -> (GameState, error); the mediator
// package wires these into the teacher's CQRS dispatch style for callers
// that want request/response routing instead of direct calls.
package orders

import (
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// Error kinds for order validation (spec §6, per order type).
const (
	KindPlanetNotFound    shared.Kind = "PlanetNotFound"
	KindInvalidStatus     shared.Kind = "InvalidStatus"
	KindColonyNotFound    shared.Kind = "ColonyNotFound"
	KindInsufficientBP    shared.Kind = "InsufficientBP"
	KindNoMatchingDeposit shared.Kind = "NoMatchingDeposit"
	KindAtCap             shared.Kind = "AtCap"
	KindContractNotFound  shared.Kind = "ContractNotFound"
	KindNotTradeRoute     shared.Kind = "NotTradeRoute"
	KindCorpNotFound      shared.Kind = "CorpNotFound"
)

// InvestPlanetFixedCost is the fixed BP cost of an InvestPlanet order
// (spec §6).
const InvestPlanetFixedCost = 3

// AcceptPlanetCommand accepts a discovered planet, status ∈
// {OrbitScanned, GroundSurveyed} -> Accepted.
type AcceptPlanetCommand struct {
	PlanetID ids.PlanetID
}

// RejectPlanetCommand rejects a discovered planet, status ∈
// {OrbitScanned, GroundSurveyed} -> Rejected.
type RejectPlanetCommand struct {
	PlanetID ids.PlanetID
}

// InvestPlanetCommand spends a fixed 3 BP to add one public level to a
// colony's domain.
type InvestPlanetCommand struct {
	ColonyID ids.ColonyID
	Domain   data.InfraDomain
}

// CreateContractCommand creates a new contract of any type (spec §4.3).
type CreateContractCommand struct {
	Type                 data.ContractType
	Target               contract.Target
	AssignedCorpID       ids.CorpID
	ColonizationParams   *contract.ColonizationParams
	ShipCommissionParams *contract.ShipCommissionParams
}

// CreateTradeRouteCommand creates a TradeRoute contract between two
// adjacent sectors.
type CreateTradeRouteCommand struct {
	SectorA ids.SectorID
	SectorB ids.SectorID
	CorpID  ids.CorpID
}

// CancelTradeRouteCommand cancels an active trade-route contract.
type CancelTradeRouteCommand struct {
	ContractID ids.ContractID
}

// CreateMissionCommand assembles and dispatches a new task-force mission.
type CreateMissionCommand struct {
	Type           data.MissionType
	TargetSectorID ids.SectorID
	ShipIDs        []ids.ShipID
}
