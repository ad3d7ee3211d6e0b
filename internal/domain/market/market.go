// Package market implements the Sector Market State (spec §3/§4.5):
// per-resource production/consumption balance, recomputed fresh each turn.
package market

import (
	"sort"

	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

// Resource identifies one of the tradeable/consumable goods tracked per
// sector (food and consumer goods are the two shortage-producing
// resources named explicitly by spec §4.5; transport capacity and raw
// materials round out the set the formula library produces).
type Resource string

const (
	ResourceFood           Resource = "Food"
	ResourceConsumerGoods  Resource = "ConsumerGoods"
	ResourceTransportCapacity Resource = "TransportCapacity"
	ResourceRawMaterials   Resource = "RawMaterials"
	ResourceEnergy         Resource = "Energy"
)

// Balance is one resource's production/consumption/trade balance within a
// sector for the turn just resolved.
type Balance struct {
	Production    float64
	Consumption   float64
	InboundTrade  float64
	OutboundTrade float64
}

// NetSurplus is production plus inbound trade minus consumption and
// outbound trade (spec §4.5 step 2).
func (b Balance) NetSurplus() float64 {
	return b.Production + b.InboundTrade - b.Consumption - b.OutboundTrade
}

// InShortage reports whether this resource's net surplus is negative.
func (b Balance) InShortage() bool { return b.NetSurplus() < 0 }

// SectorMarketState is one sector's per-resource balances for the turn.
type SectorMarketState struct {
	SectorID ids.SectorID
	Balances map[Resource]Balance
}

// New constructs an empty market state for a sector.
func New(sectorID ids.SectorID) SectorMarketState {
	return SectorMarketState{SectorID: sectorID, Balances: map[Resource]Balance{}}
}

// WithBalance returns a copy with resource r's balance replaced.
func (s SectorMarketState) WithBalance(r Resource, b Balance) SectorMarketState {
	next := SectorMarketState{SectorID: s.SectorID, Balances: make(map[Resource]Balance, len(s.Balances)+1)}
	for k, v := range s.Balances {
		next.Balances[k] = v
	}
	next.Balances[r] = b
	return next
}

// ShortageResources returns, in a stable sorted order, every resource
// currently in shortage in this sector.
func (s SectorMarketState) ShortageResources() []Resource {
	var out []Resource
	for r, b := range s.Balances {
		if b.InShortage() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OrderedSectorIDs sorts sector ids ascending for deterministic iteration.
func OrderedSectorIDs(states map[ids.SectorID]SectorMarketState) []ids.SectorID {
	out := make([]ids.SectorID, 0, len(states))
	for id := range states {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
