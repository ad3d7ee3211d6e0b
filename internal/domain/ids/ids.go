// Package ids defines the opaque, type-distinct entity identifiers used
// throughout the engine (spec §3). Each is a distinct Go string type so the
// compiler rejects passing a ColonyID where a PlanetID is expected; values
// are produced by Sequence, a deterministic per-entity-kind counter carried
// on GameState — never by a random or time-based generator, since the
// engine's determinism contract (spec §5) forbids non-deterministic ids
// inside a turn.
package ids

import "fmt"

type (
	PlanetID     string
	SectorID     string
	ColonyID     string
	CorpID       string
	ShipID       string
	ContractID   string
	MissionID    string
	CaptainID    string
	ModifierID   string
	DiscoveryID  string
	SchematicID  string
	EventID      string
)

// Sequence is a deterministic monotonic counter used to mint new ids of one
// kind. It is carried by value inside GameState so that copying state for a
// functional update also copies the counter's current position.
type Sequence struct {
	prefix string
	next   uint64
}

// NewSequence creates a Sequence that mints ids as "<prefix>-<n>" starting
// at 1.
func NewSequence(prefix string) Sequence {
	return Sequence{prefix: prefix, next: 1}
}

// Next returns the next id string in the sequence and advances it. The
// returned Sequence must replace the caller's copy (value semantics).
func (s Sequence) Next() (string, Sequence) {
	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	return id, Sequence{prefix: s.prefix, next: s.next + 1}
}

// Prefix returns the sequence's entity-kind prefix, for snapshot code.
func (s Sequence) Prefix() string { return s.prefix }

// NextValue returns the counter value Next will mint on its next call, for
// snapshot code.
func (s Sequence) NextValue() uint64 { return s.next }

// RestoreSequence reconstructs a Sequence at a specific counter position,
// the persistence-layer counterpart to NewSequence.
func RestoreSequence(prefix string, next uint64) Sequence {
	return Sequence{prefix: prefix, next: next}
}
