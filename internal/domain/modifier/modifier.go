// Package modifier implements the uniform per-entity stat adjustment
// mechanism described in spec §4.1: a filtered, ordered list of Add/Multiply
// adjustments applied to a named numeric target.
package modifier

import "github.com/nexusforge/starforge-engine/internal/domain/ids"

// Operation is the arithmetic a Modifier applies.
type Operation string

const (
	Add      Operation = "add"
	Multiply Operation = "multiply"
)

// SourceType tags where a Modifier came from, so transient ones (shortage)
// can be cleared and re-derived each market phase (spec §4.5).
type SourceType string

const (
	SourceFeature    SourceType = "feature"
	SourceColonyType SourceType = "colonyType"
	SourceSchematic  SourceType = "schematic"
	SourceShortage   SourceType = "shortage"
	SourceEvent      SourceType = "event"
)

// Comparison is the operator used by a Modifier's optional Condition.
type Comparison string

const (
	LessOrEqual    Comparison = "<="
	GreaterOrEqual Comparison = ">="
)

// Condition gates a Modifier on an attribute read from a ConditionContext.
// A missing context attribute makes the condition fail, omitting the
// modifier (spec §4.1 step 2).
type Condition struct {
	Attribute  string
	Comparison Comparison
	Threshold  float64
	Scope      string
}

// Evaluate checks the condition against ctx. Missing attribute => false.
func (c *Condition) Evaluate(ctx ConditionContext) bool {
	if ctx == nil {
		return false
	}
	value, ok := ctx[c.Attribute]
	if !ok {
		return false
	}
	switch c.Comparison {
	case LessOrEqual:
		return value <= c.Threshold
	case GreaterOrEqual:
		return value >= c.Threshold
	default:
		return false
	}
}

// ConditionContext is a flat attribute namespace a Condition reads from.
type ConditionContext map[string]float64

// Modifier is a declarative adjustment to a named numeric stat (spec §3).
type Modifier struct {
	ID                 ids.ModifierID
	Target             string
	Operation          Operation
	Value              float64
	SourceType         SourceType
	SourceID           string
	SourceDisplayName  string
	Condition          *Condition
}

// applicable filters modifiers to those targeting `target` whose condition
// (if any) evaluates true against ctx.
func applicable(target string, mods []Modifier, ctx ConditionContext) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.Target != target {
			continue
		}
		if m.Condition != nil && !m.Condition.Evaluate(ctx) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Resolve applies the filtered modifier list to base following the strict
// order of spec §4.1: sum all Add modifiers first, then apply every
// Multiply modifier in list order (stable — never re-sorted), then clamp.
// clampMin/clampMax are pointers so "no clamp" (growthPerTurn) is expressible.
func Resolve(base float64, target string, mods []Modifier, clampMin, clampMax *float64, ctx ConditionContext) float64 {
	applied := applicable(target, mods, ctx)

	adjusted := base
	for _, m := range applied {
		if m.Operation == Add {
			adjusted += m.Value
		}
	}
	for _, m := range applied {
		if m.Operation == Multiply {
			adjusted *= m.Value
		}
	}

	if clampMin != nil && adjusted < *clampMin {
		adjusted = *clampMin
	}
	if clampMax != nil && adjusted > *clampMax {
		adjusted = *clampMax
	}
	return adjusted
}

// BreakdownEntry is one line of a modifier breakdown (diagnostics/UI
// contract, spec §4.1).
type BreakdownEntry struct {
	SourceDisplayName string
	Operation         Operation
	Value             float64
}

// Breakdown returns, in preserved list order, one entry per applicable
// modifier for target.
func Breakdown(target string, mods []Modifier, ctx ConditionContext) []BreakdownEntry {
	applied := applicable(target, mods, ctx)
	out := make([]BreakdownEntry, 0, len(applied))
	for _, m := range applied {
		out = append(out, BreakdownEntry{
			SourceDisplayName: m.SourceDisplayName,
			Operation:         m.Operation,
			Value:             m.Value,
		})
	}
	return out
}

// ClearBySourceType returns a copy of mods with every entry of the given
// source type removed — used by the market phase to clear transient
// shortage modifiers before recomputing them (spec §4.5).
func ClearBySourceType(mods []Modifier, st SourceType) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.SourceType == st {
			continue
		}
		out = append(out, m)
	}
	return out
}

func clampPtr(v float64) *float64 { return &v }

// ClampRange is a small helper for callers building the (min,max) pointer
// pair Resolve expects.
func ClampRange(min, max float64) (*float64, *float64) {
	return clampPtr(min), clampPtr(max)
}
