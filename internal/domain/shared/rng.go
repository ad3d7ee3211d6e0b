package shared

import "math/rand"

// Rng is the injectable randomness capability accepted by the engine. It
// returns a uniform value in [0,1). The core never reads a global random
// source; every call site that needs randomness takes an Rng explicitly so
// that resolveTurn stays a pure function of (state, orders, rng).
type Rng interface {
	Float64() float64
}

// rngFunc adapts a bare func() float64 to the Rng interface.
type rngFunc func() float64

func (f rngFunc) Float64() float64 { return f() }

// Seeded returns a deterministic Rng derived from a uint64 seed. Two calls
// with the same seed, consumed in the same order, produce identical
// sequences — required by the engine's determinism contract.
func Seeded(seed uint64) Rng {
	source := rand.NewSource(int64(seed))
	r := rand.New(source)
	return rngFunc(r.Float64)
}

// MidRand returns an Rng that always yields 0.5, used to compute the
// deterministic blueprint/cost estimates spec §4.3 requires at contract
// creation time (bp/turn and duration must not depend on the eventual
// construction roll).
func MidRand() Rng {
	return rngFunc(func() float64 { return 0.5 })
}

// IntRange draws a uniform integer in [lo, hi] inclusive from the given Rng.
func IntRange(r Rng, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := hi - lo + 1
	return lo + int(r.Float64()*float64(span))
}

// WeightedPick performs a weighted-random selection over parallel weight
// slices, consuming exactly one Rng draw. Returns -1 if weights is empty or
// all weights are non-positive. Visitation order is the slice order, so
// replays from the same seed reproduce the same pick (spec §5).
func WeightedPick(r Rng, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	roll := r.Float64() * total
	cursor := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cursor += w
		if roll < cursor {
			return i
		}
	}
	// Floating point edge case: return the last positive-weight index.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
