package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
)

func TestResolve_AddThenMultiply(t *testing.T) {
	// Arrange: base 4, +2 (Add), then *3 (Multiply) — order matters.
	mods := []modifier.Modifier{
		{Target: "habitability", Operation: modifier.Add, Value: 2},
		{Target: "habitability", Operation: modifier.Multiply, Value: 3},
	}

	// Act
	got := modifier.Resolve(4, "habitability", mods, nil, nil, nil)

	// Assert: (4+2)*3 = 18, never 4*3+2 = 14.
	assert.Equal(t, 18.0, got)
}

func TestResolve_FiltersToTarget(t *testing.T) {
	mods := []modifier.Modifier{
		{Target: "stability", Operation: modifier.Add, Value: 100},
		{Target: "habitability", Operation: modifier.Add, Value: 1},
	}

	got := modifier.Resolve(0, "habitability", mods, nil, nil, nil)
	assert.Equal(t, 1.0, got)
}

func TestResolve_Clamp(t *testing.T) {
	min, max := modifier.ClampRange(0, 10)
	mods := []modifier.Modifier{{Target: "x", Operation: modifier.Add, Value: 100}}

	got := modifier.Resolve(0, "x", mods, min, max, nil)
	assert.Equal(t, 10.0, got)
}

func TestResolve_MissingConditionAttributeOmitsModifier(t *testing.T) {
	mods := []modifier.Modifier{
		{
			Target:    "growth",
			Operation: modifier.Add,
			Value:     5,
			Condition: &modifier.Condition{Attribute: "debtTokens", Comparison: modifier.GreaterOrEqual, Threshold: 3},
		},
	}

	got := modifier.Resolve(0, "growth", mods, nil, nil, modifier.ConditionContext{})
	assert.Equal(t, 0.0, got, "missing context attribute must omit the modifier")
}

func TestResolve_ConditionGatesModifier(t *testing.T) {
	mods := []modifier.Modifier{
		{
			Target:    "growth",
			Operation: modifier.Add,
			Value:     5,
			Condition: &modifier.Condition{Attribute: "military", Comparison: modifier.GreaterOrEqual, Threshold: 3},
		},
	}

	below := modifier.Resolve(0, "growth", mods, nil, nil, modifier.ConditionContext{"military": 1})
	above := modifier.Resolve(0, "growth", mods, nil, nil, modifier.ConditionContext{"military": 5})

	assert.Equal(t, 0.0, below)
	assert.Equal(t, 5.0, above)
}

func TestBreakdown_PreservesOrder(t *testing.T) {
	mods := []modifier.Modifier{
		{Target: "habitability", Operation: modifier.Add, Value: 1, SourceDisplayName: "Volcanic Ash"},
		{Target: "habitability", Operation: modifier.Multiply, Value: 2, SourceDisplayName: "Orbital Array"},
		{Target: "accessibility", Operation: modifier.Add, Value: 9, SourceDisplayName: "ignored"},
	}

	entries := modifier.Breakdown("habitability", mods, nil)

	assert.Len(t, entries, 2)
	assert.Equal(t, "Volcanic Ash", entries[0].SourceDisplayName)
	assert.Equal(t, "Orbital Array", entries[1].SourceDisplayName)
}

func TestClearBySourceType(t *testing.T) {
	mods := []modifier.Modifier{
		{Target: "qualityOfLife", SourceType: modifier.SourceShortage, Value: -2},
		{Target: "qualityOfLife", SourceType: modifier.SourceFeature, Value: 1},
	}

	cleared := modifier.ClearBySourceType(mods, modifier.SourceShortage)

	assert.Len(t, cleared, 1)
	assert.Equal(t, modifier.SourceFeature, cleared[0].SourceType)
}
