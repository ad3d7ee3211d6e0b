package data

import "github.com/nexusforge/starforge-engine/internal/domain/ids"

// PlanetTypeInfo is the static row for a PlanetType: its baseline
// habitability before modifiers (spec §4.2 habitability formula).
type PlanetTypeInfo struct {
	Type            PlanetType `mapstructure:"type" yaml:"type" validate:"required"`
	BaseHabitability int       `mapstructure:"base_habitability" yaml:"base_habitability" validate:"min=0,max=10"`
}

// PlanetSizeInfo maps a PlanetSize to its max population level.
type PlanetSizeInfo struct {
	Size         PlanetSize `mapstructure:"size" yaml:"size" validate:"required"`
	MaxPopLevel  int        `mapstructure:"max_pop_level" yaml:"max_pop_level" validate:"min=1"`
}

// DepositTypeInfo is the static row for a DepositType (spec §3/§4.2).
type DepositTypeInfo struct {
	Type             DepositType `mapstructure:"type" yaml:"type" validate:"required"`
	ExtractionDomain InfraDomain `mapstructure:"extraction_domain" yaml:"extraction_domain" validate:"required"`
	MaxInfraBonus    int         `mapstructure:"max_infra_bonus" yaml:"max_infra_bonus" validate:"min=0"`
}

// ColonyTypeInfo is the static row for a ColonyType (spec §4.3/§6).
type ColonyTypeInfo struct {
	Type               ColonyType          `mapstructure:"type" yaml:"type" validate:"required"`
	StartingInfra      map[InfraDomain]int `mapstructure:"starting_infra" yaml:"starting_infra"`
	BPPerTurn          int                 `mapstructure:"bp_per_turn" yaml:"bp_per_turn" validate:"min=1"`
	Duration           int                 `mapstructure:"duration" yaml:"duration" validate:"min=1"`
	PassiveModifierTag string              `mapstructure:"passive_modifier_tag" yaml:"passive_modifier_tag"`
}

// CorpTypeInfo maps a CorpType to its primary infrastructure domains, used
// by the corporate AI when level < 3 (spec §4.6).
type CorpTypeInfo struct {
	Type            CorpType      `mapstructure:"type" yaml:"type" validate:"required"`
	PrimaryDomains  []InfraDomain `mapstructure:"primary_domains" yaml:"primary_domains"`
}

// ContractTypeInfo is the static row for a ContractType (spec §4.3/§6).
type ContractTypeInfo struct {
	Type               ContractType `mapstructure:"type" yaml:"type" validate:"required"`
	EligibleCorpTypes  []CorpType   `mapstructure:"eligible_corp_types" yaml:"eligible_corp_types"`
	TargetKind         TargetKind   `mapstructure:"target_kind" yaml:"target_kind" validate:"required"`
	BaseBPPerTurn      int          `mapstructure:"base_bp_per_turn" yaml:"base_bp_per_turn" validate:"min=1"`
	BaseDuration       int          `mapstructure:"base_duration" yaml:"base_duration" validate:"min=1"`
}

// RoleInfo is the static row for a ShipRole (spec §4.8).
type RoleInfo struct {
	Role            ShipRole `mapstructure:"role" yaml:"role" validate:"required"`
	BaseSize        int      `mapstructure:"base_size" yaml:"base_size" validate:"min=1"`
	BuildTimeBonus  int      `mapstructure:"build_time_bonus" yaml:"build_time_bonus" validate:"min=0"`
	PowerProjectionBonus int `mapstructure:"power_projection_bonus" yaml:"power_projection_bonus"`
	HullPointsBonus      int `mapstructure:"hull_points_bonus" yaml:"hull_points_bonus"`
	BaseFirepower   int      `mapstructure:"base_firepower" yaml:"base_firepower" validate:"min=0"`
	BaseArmor       int      `mapstructure:"base_armor" yaml:"base_armor" validate:"min=0"`
	BaseEvasion     int      `mapstructure:"base_evasion" yaml:"base_evasion" validate:"min=0"`
	BaseSpeed       int      `mapstructure:"base_speed" yaml:"base_speed" validate:"min=0"`
	BaseSensors     int      `mapstructure:"base_sensors" yaml:"base_sensors" validate:"min=0"`
}

// SizeVariantInfo is the static row for a SizeVariant (spec §4.8).
type SizeVariantInfo struct {
	Variant                  SizeVariant `mapstructure:"variant" yaml:"variant" validate:"required"`
	SizeMultiplier           float64     `mapstructure:"size_multiplier" yaml:"size_multiplier" validate:"gt=0"`
	SizeBuildTimeMultiplier  float64     `mapstructure:"size_build_time_multiplier" yaml:"size_build_time_multiplier" validate:"gt=0"`
	SizeCostMultiplier       float64     `mapstructure:"size_cost_multiplier" yaml:"size_cost_multiplier" validate:"gt=0"`
}

// MissionTypeInfo is the static row for a MissionType (spec §4.7/§6).
type MissionTypeInfo struct {
	Type      MissionType `mapstructure:"type" yaml:"type" validate:"required"`
	BaseBP    int         `mapstructure:"base_bp" yaml:"base_bp" validate:"min=1"`
	DurMin    int         `mapstructure:"dur_min" yaml:"dur_min" validate:"min=1"`
	DurMax    int         `mapstructure:"dur_max" yaml:"dur_max" validate:"gtefield=DurMin"`
}

// Discovery is a level-gated science-corp draw (SPEC_FULL.md §C.1 — the
// distilled spec names "empire-wide bonuses (cumulative from discoveries)"
// in §3 but does not detail the discovery pool; this supplements it).
type Discovery struct {
	ID           ids.DiscoveryID `mapstructure:"id" yaml:"id" validate:"required"`
	Name         string          `mapstructure:"name" yaml:"name" validate:"required"`
	MinCorpLevel int             `mapstructure:"min_corp_level" yaml:"min_corp_level" validate:"min=1,max=10"`
	Cost         int             `mapstructure:"cost" yaml:"cost" validate:"min=1"`
	BonusTarget  string          `mapstructure:"bonus_target" yaml:"bonus_target" validate:"required"`
	BonusValue   float64         `mapstructure:"bonus_value" yaml:"bonus_value"`
}
