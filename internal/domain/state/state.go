// Package state implements GameState, the single aggregate the turn
// pipeline transforms (spec §3): turn number, budget, debt, every entity
// map, the galaxy, undismissed events, and the id sequences that mint new
// entities deterministically.
package state

import (
	"time"

	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/market"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
)

// BudgetEntry is one line of the per-turn income/expense breakdown
// (spec §3/§4.9).
type BudgetEntry struct {
	Label  string
	Amount int
}

// Sequences bundles every entity kind's deterministic id minting counter,
// carried by value so a functional-update copy of GameState also copies
// each counter's current position (spec §5).
type Sequences struct {
	Planet   ids.Sequence
	Sector   ids.Sequence
	Colony   ids.Sequence
	Corp     ids.Sequence
	Ship     ids.Sequence
	Contract ids.Sequence
	Mission  ids.Sequence
	Captain  ids.Sequence
	Modifier ids.Sequence
	Event    ids.Sequence
}

// NewSequences constructs the full set of id sequences, each prefixed by
// its entity kind.
func NewSequences() Sequences {
	return Sequences{
		Planet:   ids.NewSequence("planet"),
		Sector:   ids.NewSequence("sector"),
		Colony:   ids.NewSequence("colony"),
		Corp:     ids.NewSequence("corp"),
		Ship:     ids.NewSequence("ship"),
		Contract: ids.NewSequence("contract"),
		Mission:  ids.NewSequence("mission"),
		Captain:  ids.NewSequence("captain"),
		Modifier: ids.NewSequence("modifier"),
		Event:    ids.NewSequence("event"),
	}
}

// GameState is the engine's sole aggregate, owned exclusively by the
// caller between turns (spec §5). Every field here is treated as
// immutable by convention — phases build fresh maps rather than editing
// in place (functional-update discipline).
type GameState struct {
	Turn               int
	CurrentBP          int
	DebtTokens          int
	BudgetBreakdown     []BudgetEntry
	EmpireBonuses       map[string]float64
	Tables              data.Tables
	Galaxy              galaxy.Galaxy
	Colonies            map[ids.ColonyID]colony.Colony
	Planets             map[ids.PlanetID]planet.Planet
	Corporations        map[ids.CorpID]corporation.Corporation
	Contracts           map[ids.ContractID]contract.Contract
	Ships               map[ids.ShipID]ship.Ship
	Missions            map[ids.MissionID]mission.Mission
	SectorMarkets       map[ids.SectorID]market.SectorMarketState
	Events              []event.Event
	Sequences           Sequences
	UnlockedDiscoveries []ids.DiscoveryID

	// Timestamps are informational only (spec §3) — no phase reads them
	// to drive simulation logic.
	Timestamps Timestamps
}

// Timestamps records when a GameState was created and when it was last
// advanced by the turn pipeline. Populated by the application layer
// through shared.Clock; the domain layer never reads its own clock.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithTimestamp returns a copy with UpdatedAt set to now, stamping
// CreatedAt too the first time it's called on a zero-value Timestamps.
func (s GameState) WithTimestamp(now time.Time) GameState {
	next := s
	if next.Timestamps.CreatedAt.IsZero() {
		next.Timestamps.CreatedAt = now
	}
	next.Timestamps.UpdatedAt = now
	return next
}

// New constructs an empty GameState shell with starting BP/debt and the
// given tables; createInitialState (application layer) populates galaxy,
// colonies, and corps on top of this.
func New(tables data.Tables) GameState {
	return GameState{
		Turn:         0,
		CurrentBP:    tables.StartingBP,
		DebtTokens:   tables.StartingDebtTokens,
		EmpireBonuses: map[string]float64{},
		Tables:       tables,
		Galaxy:       galaxy.NewGalaxy(),
		Colonies:     map[ids.ColonyID]colony.Colony{},
		Planets:      map[ids.PlanetID]planet.Planet{},
		Corporations: map[ids.CorpID]corporation.Corporation{},
		Contracts:    map[ids.ContractID]contract.Contract{},
		Ships:        map[ids.ShipID]ship.Ship{},
		Missions:     map[ids.MissionID]mission.Mission{},
		SectorMarkets: map[ids.SectorID]market.SectorMarketState{},
		Sequences:    NewSequences(),
	}
}

// StabilityMalus is the global debt-derived stability penalty, read
// directly by the colony stability formula rather than expressed as a
// per-colony modifier (spec §4.2).
func (s GameState) StabilityMalus() int { return s.DebtTokens / 2 }

// Clone produces a shallow-structural copy of s with every map replaced by
// a fresh map of the same contents — the functional-update starting point
// every phase builds its result from (spec §5's "no phase mutates its
// input").
func (s GameState) Clone() GameState {
	next := s
	next.Colonies = cloneMap(s.Colonies)
	next.Planets = cloneMap(s.Planets)
	next.Corporations = cloneMap(s.Corporations)
	next.Contracts = cloneMap(s.Contracts)
	next.Ships = cloneMap(s.Ships)
	next.Missions = cloneMap(s.Missions)
	next.SectorMarkets = cloneMap(s.SectorMarkets)
	next.Events = append([]event.Event(nil), s.Events...)
	next.BudgetBreakdown = append([]BudgetEntry(nil), s.BudgetBreakdown...)
	next.EmpireBonuses = cloneMap(s.EmpireBonuses)
	next.UnlockedDiscoveries = append([]ids.DiscoveryID(nil), s.UnlockedDiscoveries...)
	return next
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	next := make(map[K]V, len(m))
	for k, v := range m {
		next[k] = v
	}
	return next
}

// WithEventsAppended returns a copy with events appended, in emission
// order (spec §9: never intersperse or reorder).
func (s GameState) WithEventsAppended(events ...event.Event) GameState {
	next := s
	next.Events = append(append([]event.Event(nil), s.Events...), events...)
	return next
}

// DismissEvent marks the event with the given id dismissed. Dismissing an
// already-dismissed or unknown event is a no-op (spec §8 property 8;
// SPEC_FULL.md §C.2 supplements the unknown-id case as also a no-op, since
// the UI may race a dismiss against a turn that already removed old
// events).
func (s GameState) DismissEvent(id ids.EventID) GameState {
	next := s
	next.Events = make([]event.Event, len(s.Events))
	for i, e := range s.Events {
		if e.ID == id {
			next.Events[i] = e.Dismiss()
		} else {
			next.Events[i] = e
		}
	}
	return next
}
