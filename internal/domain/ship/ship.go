// Package ship implements the Ship entity and the blueprint generator
// (spec §3/§4.8): deterministic stat derivation from role, tech bonuses,
// corp level, schematics, and size variant.
package ship

import (
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// PrimaryStats are the five rolled stats a blueprint derives.
type PrimaryStats struct {
	Firepower int
	Armor     int
	Evasion   int
	Speed     int
	Sensors   int
}

// DerivedStats are the stats computed from PrimaryStats and size.
type DerivedStats struct {
	HullPoints      int
	PowerProjection int
	BPPerTurn       int
	BuildTime       int
}

// Ship is owned exclusively by GameState; captain and owner corp are held
// by id.
type Ship struct {
	id               ids.ShipID
	name             string
	role             data.ShipRole
	sizeVariant      data.SizeVariant
	size             int
	primary          PrimaryStats
	derived          DerivedStats
	abilities        formula.ShipAbilities
	condition        int
	captainID        *ids.CaptainID
	status           data.ShipStatus
	homeSectorID     ids.SectorID
	ownerCorpID      ids.CorpID
	appliedModifiers []modifier.Modifier
	schematicIDs     []ids.SchematicID
	builtTurn        int
}

func (s Ship) ID() ids.ShipID                     { return s.id }
func (s Ship) Name() string                        { return s.name }
func (s Ship) Role() data.ShipRole                 { return s.role }
func (s Ship) SizeVariant() data.SizeVariant       { return s.sizeVariant }
func (s Ship) Size() int                           { return s.size }
func (s Ship) Primary() PrimaryStats               { return s.primary }
func (s Ship) Derived() DerivedStats               { return s.derived }
func (s Ship) Abilities() formula.ShipAbilities    { return s.abilities }
func (s Ship) Condition() int                      { return s.condition }
func (s Ship) Status() data.ShipStatus             { return s.status }
func (s Ship) HomeSectorID() ids.SectorID          { return s.homeSectorID }
func (s Ship) OwnerCorpID() ids.CorpID             { return s.ownerCorpID }
func (s Ship) BuiltTurn() int                      { return s.builtTurn }
func (s Ship) SchematicIDs() []ids.SchematicID     { return append([]ids.SchematicID(nil), s.schematicIDs...) }

func (s Ship) CaptainID() (ids.CaptainID, bool) {
	if s.captainID == nil {
		return "", false
	}
	return *s.captainID, true
}

// IsGovernmentOwned reports whether this ship belongs to the government
// sentinel rather than a real corporation (spec §9 open question).
func (s Ship) IsGovernmentOwned() bool { return s.ownerCorpID == corporation.GovernmentCorpID }

// WithStatus returns a copy transitioned to status st.
func (s Ship) WithStatus(st data.ShipStatus) Ship {
	next := s
	next.status = st
	return next
}

// WithCaptain returns a copy assigned captain id.
func (s Ship) WithCaptain(captainID ids.CaptainID) Ship {
	next := s
	next.captainID = &captainID
	return next
}

// SchematicBonus is one schematic's flat bonus to a named blueprint target
// ("firepower", "hullPoints", "powerProjection", ...).
type SchematicBonus struct {
	Target string
	Value  int
}

// schematicBonusSum sums every bonus targeting `target` across bonuses.
func schematicBonusSum(bonuses []SchematicBonus, target string) int {
	total := 0
	for _, b := range bonuses {
		if b.Target == target {
			total += b.Value
		}
	}
	return total
}

// BlueprintInput bundles everything the generator needs (spec §4.8).
type BlueprintInput struct {
	Role            data.ShipRole
	SizeVariant     data.SizeVariant
	BuildingCorp    corporation.Corporation
	TechBonuses     map[string]int
	SchematicBonuses []SchematicBonus
	HomeSectorID    ids.SectorID
	BuiltTurn       int
	RNG             shared.Rng
}

// Generate derives a brand-new Ship from input, reading role/size-variant
// rows from tables. Every stage floors before combining with the next so
// floating-point rounding mode cannot affect the result (spec §5).
func Generate(id ids.ShipID, name string, input BlueprintInput, tables data.Tables) Ship {
	roleInfo := tables.Role(input.Role)
	variantInfo := tables.SizeVariant(input.SizeVariant)
	level := input.BuildingCorp.Level()
	corpMod := formula.CorpMod(level)

	rollStat := func(base, target string, roleBase int) int {
		tech := input.TechBonuses[target]
		schematics := schematicBonusSum(input.SchematicBonuses, target)
		multiplier := 0.8 + input.RNG.Float64()*0.4
		return formula.BlueprintStat(roleBase, tech, corpMod, schematics, multiplier)
	}

	primary := PrimaryStats{
		Firepower: rollStat("firepower", "firepower", roleInfo.BaseFirepower),
		Armor:     rollStat("armor", "armor", roleInfo.BaseArmor),
		Evasion:   rollStat("evasion", "evasion", roleInfo.BaseEvasion),
		Speed:     rollStat("speed", "speed", roleInfo.BaseSpeed),
		Sensors:   rollStat("sensors", "sensors", roleInfo.BaseSensors),
	}

	rawSize := formula.RawSize(roleInfo.BaseSize, corpMod)
	size := formula.FinalSize(rawSize, variantInfo.SizeMultiplier)

	baseBuildTime := formula.BaseBuildTime(rawSize, roleInfo.BuildTimeBonus)
	buildTime := formula.BuildTime(baseBuildTime, variantInfo.SizeBuildTimeMultiplier)
	actualBuildTime := formula.ActualBuildTime(buildTime, level)
	bpPerTurn := formula.ShipCommissionBPPerTurn(rawSize, variantInfo.SizeCostMultiplier)

	derived := DerivedStats{
		HullPoints:      formula.HullPoints(size, primary.Armor, schematicBonusSum(input.SchematicBonuses, "hullPoints"), roleInfo.HullPointsBonus),
		PowerProjection: formula.PowerProjection(size, schematicBonusSum(input.SchematicBonuses, "powerProjection"), roleInfo.PowerProjectionBonus),
		BPPerTurn:       bpPerTurn,
		BuildTime:       actualBuildTime,
	}

	abilities := formula.DeriveShipAbilities(primary.Firepower, primary.Armor, primary.Evasion, primary.Speed, primary.Sensors, size)

	schematicIDs := make([]ids.SchematicID, 0)

	return Ship{
		id:           id,
		name:         name,
		role:         input.Role,
		sizeVariant:  input.SizeVariant,
		size:         size,
		primary:      primary,
		derived:      derived,
		abilities:    abilities,
		condition:    100,
		status:       data.ShipUnderConstruction,
		homeSectorID: input.HomeSectorID,
		ownerCorpID:  input.BuildingCorp.ID(),
		schematicIDs: schematicIDs,
		builtTurn:    input.BuiltTurn,
	}
}
