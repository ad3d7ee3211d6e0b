// Package contract implements the Contract entity and its state machine
// (spec §3/§4.3): creation validation, per-turn advancement, and
// completion effects.
package contract

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// Target is the tagged variant over a contract's object (spec §9):
// exactly one of SectorID, PlanetID, ColonyID, or the SectorPair fields is
// meaningful, selected by Kind.
type Target struct {
	Kind       data.TargetKind
	SectorID   ids.SectorID
	PlanetID   ids.PlanetID
	ColonyID   ids.ColonyID
	SectorA    ids.SectorID
	SectorB    ids.SectorID
}

// ColonizationParams carries the extra data a Colonization contract needs
// at completion time.
type ColonizationParams struct {
	ColonyType data.ColonyType
}

// ShipCommissionParams carries the extra data a ShipCommission contract
// needs at completion time.
type ShipCommissionParams struct {
	Role        data.ShipRole
	SizeVariant data.SizeVariant
}

// Contract is owned exclusively by GameState; target and assigned corp are
// referenced by id only.
type Contract struct {
	id                   ids.ContractID
	contractType         data.ContractType
	status               data.ContractStatus
	target               Target
	assignedCorpID       ids.CorpID
	bpPerTurn            int
	duration             int
	turnsRemaining       int
	startTurn            int
	completedTurn        *int
	colonizationParams   *ColonizationParams
	shipCommissionParams *ShipCommissionParams
}

// New constructs a freshly-created Active contract. turnsRemaining starts
// equal to duration.
func New(id ids.ContractID, ct data.ContractType, target Target, assignedCorpID ids.CorpID, bpPerTurn, duration, startTurn int) Contract {
	if bpPerTurn < 1 {
		shared.InvariantViolation("contract %s: bpPerTurn must be >= 1, got %d", id, bpPerTurn)
	}
	return Contract{
		id:             id,
		contractType:   ct,
		status:         data.ContractActive,
		target:         target,
		assignedCorpID: assignedCorpID,
		bpPerTurn:      bpPerTurn,
		duration:       duration,
		turnsRemaining: duration,
		startTurn:      startTurn,
	}
}

func (c Contract) ID() ids.ContractID                 { return c.id }
func (c Contract) Type() data.ContractType             { return c.contractType }
func (c Contract) Status() data.ContractStatus         { return c.status }
func (c Contract) Target() Target                      { return c.target }
func (c Contract) AssignedCorpID() ids.CorpID          { return c.assignedCorpID }
func (c Contract) BPPerTurn() int                      { return c.bpPerTurn }
func (c Contract) Duration() int                       { return c.duration }
func (c Contract) TurnsRemaining() int                 { return c.turnsRemaining }
func (c Contract) StartTurn() int                      { return c.startTurn }

func (c Contract) CompletedTurn() (int, bool) {
	if c.completedTurn == nil {
		return 0, false
	}
	return *c.completedTurn, true
}

func (c Contract) ColonizationParams() (ColonizationParams, bool) {
	if c.colonizationParams == nil {
		return ColonizationParams{}, false
	}
	return *c.colonizationParams, true
}

func (c Contract) ShipCommissionParams() (ShipCommissionParams, bool) {
	if c.shipCommissionParams == nil {
		return ShipCommissionParams{}, false
	}
	return *c.shipCommissionParams, true
}

// WithColonizationParams returns a copy carrying colonization params.
func (c Contract) WithColonizationParams(p ColonizationParams) Contract {
	next := c
	next.colonizationParams = &p
	return next
}

// WithShipCommissionParams returns a copy carrying ship-commission params.
func (c Contract) WithShipCommissionParams(p ShipCommissionParams) Contract {
	next := c
	next.shipCommissionParams = &p
	return next
}

// IsTradeRoute reports whether this contract is exempt from normal
// turnsRemaining decrement (spec §3: sentinel 9999, never auto-completes).
func (c Contract) IsTradeRoute() bool { return c.contractType == data.ContractTradeRoute }

// Advance decrements turnsRemaining by one turn (clamped at 0). Trade
// routes are never advanced by the contract phase (spec §4.3).
func (c Contract) Advance() Contract {
	if c.IsTradeRoute() {
		return c
	}
	next := c
	if next.turnsRemaining > 0 {
		next.turnsRemaining--
	} else {
		next.turnsRemaining = 0
	}
	return next
}

// IsDue reports whether this contract's turnsRemaining has reached 0 and
// it is still Active (ready to complete this phase).
func (c Contract) IsDue() bool {
	return c.status == data.ContractActive && !c.IsTradeRoute() && c.turnsRemaining <= 0
}

// Complete returns a copy transitioned to Completed at completedTurn. A
// completed contract is immutable thereafter (spec §3 invariant) — callers
// must not call Advance/Complete again on the result.
func (c Contract) Complete(completedTurn int) Contract {
	next := c
	next.status = data.ContractCompleted
	t := completedTurn
	next.completedTurn = &t
	return next
}

// Cancel returns a copy transitioned to Completed immediately (used for
// CancelTradeRoute orders, spec §6) without a completion-bonus payout.
func (c Contract) Cancel(completedTurn int) Contract {
	return c.Complete(completedTurn)
}

// IsActive reports whether this contract still incurs a per-turn expense
// (spec §4.9: active contracts/missions, completedTurn = none).
func (c Contract) IsActive() bool {
	_, done := c.CompletedTurn()
	return !done
}

// OrderedIDs sorts contract ids ascending — the deterministic processing
// order spec §5 requires.
func OrderedIDs(contracts map[ids.ContractID]Contract) []ids.ContractID {
	out := make([]ids.ContractID, 0, len(contracts))
	for id := range contracts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
