// Package formula holds the pure numeric functions spec §4.2 names:
// production, taxation, attribute cascade, growth, capital, exploration,
// and ship-ability formulas. Every function here is stateless and takes
// its modifier list explicitly — none reach into global state.
package formula

import (
	"math"

	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
)

func floorInt(f float64) int { return int(math.Floor(f)) }

// Extraction is infraLevel scaled by a deposit richness modifier; may be
// non-integer since richnessModifier is a multiplier, not a count.
func Extraction(infraLevel int, richnessModifier float64) float64 {
	return float64(infraLevel) * richnessModifier
}

// ExtractionCap maps a deposit richness tier to its output ceiling.
func ExtractionCap(richness string) int {
	switch richness {
	case "Poor":
		return 5
	case "Moderate":
		return 10
	case "Rich":
		return 15
	case "Exceptional":
		return 20
	default:
		return 0
	}
}

// Manufacturing: full infraLevel if inputs are available, otherwise a
// degraded half-rate floor (never below 1 while infraLevel > 0).
func Manufacturing(infraLevel int, inputsAvailable bool) int {
	if inputsAvailable {
		return infraLevel
	}
	if infraLevel <= 0 {
		return 0
	}
	if v := infraLevel / 2; v > 0 {
		return v
	}
	return 1
}

// IndustrialInput is the quantity of each required input resource an
// industry domain consumes per turn.
func IndustrialInput(infraLevel int) int { return infraLevel }

// FoodConsumption, ConsumerGoodsConsumption and TransportCapacityConsumption
// are all population-equal per spec §4.2.
func FoodConsumption(pop int) int                  { return pop }
func ConsumerGoodsConsumption(pop int) int         { return pop }
func TransportCapacityConsumption(pop int) int     { return pop }

// InfraCap computes a domain's level ceiling for a colony at popLevel.
// Civilian scales as (popLevel+1)*2; every other domain as popLevel*2.
// Extraction domains are additionally capped by the best matching
// deposit's maxInfraBonus; with no matching deposit the cap is 0.
func InfraCap(popLevel int, isCivilian, isExtractionDomain bool, bestMatchingDepositMaxInfraBonus *int) int {
	var base int
	if isCivilian {
		base = (popLevel + 1) * 2
	} else {
		base = popLevel * 2
	}
	if !isExtractionDomain {
		return base
	}
	if bestMatchingDepositMaxInfraBonus == nil {
		return 0
	}
	if *bestMatchingDepositMaxInfraBonus < base {
		return *bestMatchingDepositMaxInfraBonus
	}
	return base
}

// PlanetTax computes the per-colony tax contribution. 0 below population 5.
func PlanetTax(pop, hab int) int {
	if pop < 5 {
		return 0
	}
	raw := floorInt(float64(pop*pop) / 4)
	penalty := max0(10-hab) * max(1, pop/3)
	return max(0, raw-penalty)
}

// CorpTax computes a corporation's per-turn tax contribution from its level.
func CorpTax(level int) int { return (level * level) / 5 }

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Habitability resolves the cascading attribute from its base-from-
// planet-type value, clamped to [0,10].
func Habitability(baseFromPlanetType int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	min0, max10 := modifier.ClampRange(0, 10)
	return floorInt(modifier.Resolve(float64(baseFromPlanetType), "habitability", mods, min0, max10, ctx))
}

// Accessibility resolves from transport infra level, clamped to [0,10].
func Accessibility(transportLevel int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	base := 3 + transportLevel/2
	min0, max10 := modifier.ClampRange(0, 10)
	return floorInt(modifier.Resolve(float64(base), "accessibility", mods, min0, max10, ctx))
}

// Dynamism resolves from accessibility, population, and total corporate
// infrastructure, clamped to [0,10].
func Dynamism(accessibility, pop, totalCorporateInfra int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	base := (accessibility+pop)/2 + min(3, totalCorporateInfra/10)
	min0, max10 := modifier.ClampRange(0, 10)
	return floorInt(modifier.Resolve(float64(base), "dynamism", mods, min0, max10, ctx))
}

// QualityOfLife resolves from habitability, clamped to [0,10].
func QualityOfLife(hab int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	base := 10 - max0(10-hab)/3
	min0, max10 := modifier.ClampRange(0, 10)
	return floorInt(modifier.Resolve(float64(base), "qualityOfLife", mods, min0, max10, ctx))
}

// Stability resolves from qualityOfLife, global debtTokens (read directly,
// never as a per-colony modifier), and military infra level, clamped to
// [0,10].
func Stability(qol, debtTokens, militaryLevel int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	base := 10 - max0(5-qol) - debtTokens/2 + min(3, militaryLevel/3)
	min0, max10 := modifier.ClampRange(0, 10)
	return floorInt(modifier.Resolve(float64(base), "stability", mods, min0, max10, ctx))
}

// GrowthPerTurn resolves from qualityOfLife, stability, accessibility, and
// habitability. Not clamped.
func GrowthPerTurn(qol, stability, accessibility, hab int, mods []modifier.Modifier, ctx modifier.ConditionContext) int {
	base := (qol+stability+accessibility)/3 - 3 - max0(10-hab)/3
	return floorInt(modifier.Resolve(float64(base), "growth", mods, nil, nil, ctx))
}

// GrowthTickResult is the outcome of applying one turn's growth
// accumulator step.
type GrowthTickResult struct {
	NewGrowth  int
	NewPop     int
	LeveledUp  bool
	LeveledDown bool
}

// GrowthTick applies the population growth accumulator for one turn.
// Level-up and level-down are mutually exclusive.
func GrowthTick(oldGrowth, growthPerTurn, pop, maxPopLevel, civilianLevels int) GrowthTickResult {
	newGrowth := min(10, oldGrowth+growthPerTurn)

	if newGrowth >= 10 && pop < maxPopLevel && civilianLevels >= (pop+1)*2 {
		return GrowthTickResult{NewGrowth: 0, NewPop: pop + 1, LeveledUp: true}
	}
	if newGrowth <= -1 && pop > 1 {
		return GrowthTickResult{NewGrowth: 9, NewPop: pop - 1, LeveledDown: true}
	}
	return GrowthTickResult{NewGrowth: newGrowth, NewPop: pop}
}

// OrganicGrowthChancePercent is the per-turn percent chance of an organic
// infrastructure growth event, driven by colony dynamism.
func OrganicGrowthChancePercent(dynamism int) int { return dynamism * 5 }

// CapitalGain computes a corp's per-turn capital accrual. random01Floor0Or1
// must already be the floored 0-or-1 draw described in spec §4.2 — callers
// supply it via the injected RNG so the core never reads randomness itself.
func CapitalGain(ownedInfra int, random01Floor0Or1 int) int {
	return random01Floor0Or1 + ownedInfra/10
}

// CompletionBonus is the capital payout on contract completion.
func CompletionBonus(bpPerTurn, duration int) int { return (bpPerTurn * duration) / 5 }

// LevelUpCost, AcquisitionCost, MaxOwnedInfra are corp-economy constants
// derived from level.
func LevelUpCost(level int) int    { return level * 3 }
func AcquisitionCost(level int) int { return level * 5 }
func MaxOwnedInfra(level int) int   { return level * 4 }

// ExplorationDuration is the exploration contract's duration in turns,
// scaled down as the assigned corp's level rises.
func ExplorationDuration(corpLevel int) int {
	return max(2, 4-corpLevel/2)
}

// OrbitScanTier maps a corp's level to the scan detail tier it unlocks.
func OrbitScanTier(corpLevel int) int {
	switch {
	case corpLevel <= 2:
		return 1
	case corpLevel <= 6:
		return 2
	default:
		return 3
	}
}

// ShipAbilities are the three derived combat/utility scores computed from
// a ship's primary stats and size.
type ShipAbilities struct {
	Fight        int
	Investigation int
	Support      int
}

// DeriveShipAbilities computes fight/investigation/support from a ship's
// primary stats per spec §4.2.
func DeriveShipAbilities(firepower, armor, evasion, speed, sensors, size int) ShipAbilities {
	fight := floorInt(float64(firepower+floorInt(float64(armor)*0.75)+floorInt(float64(evasion)*0.5)) * float64(size) / 2)
	investigation := floorInt(float64(floorInt(float64(speed)*0.75)+sensors) * float64(size) / 2)
	support := floorInt(float64(floorInt(float64(firepower)*0.5)+floorInt(float64(sensors)*0.75)) * float64(size) / 2)
	return ShipAbilities{Fight: fight, Investigation: investigation, Support: support}
}

// CorpMod is the corp-level scaling factor used throughout blueprint
// generation (spec §4.3/§4.8).
func CorpMod(level int) float64 { return 0.7 + float64(level)*0.06 }

// BlueprintStat derives one final primary stat value: role base plus tech
// bonus, scaled by corpMod, plus schematic bonuses, scaled by the random
// multiplier — each stage floored before combining with the next, so
// floating-point rounding mode cannot affect the result (spec §5).
func BlueprintStat(roleBase, techBonus int, corpMod float64, schematicBonusSum int, randomMultiplier float64) int {
	scaled := floorInt(float64(roleBase+techBonus) * corpMod)
	withSchematics := scaled + schematicBonusSum
	return floorInt(float64(withSchematics) * randomMultiplier)
}

// RawSize is the pre-size-variant ship size derived from role and corp
// level.
func RawSize(roleBaseSize int, corpMod float64) int {
	return floorInt(float64(roleBaseSize) * corpMod)
}

// FinalSize applies the size-variant multiplier to a raw size.
func FinalSize(rawSize int, sizeMultiplier float64) int {
	return floorInt(float64(rawSize) * sizeMultiplier)
}

// BaseBuildTime, BuildTime and ActualBuildTime chain the build-time
// derivation of spec §4.3's ship-commission cost calculation.
func BaseBuildTime(rawSize, roleBuildTimeBonus int) int {
	return max(3, rawSize) + roleBuildTimeBonus
}

func BuildTime(baseBuildTime int, sizeBuildTimeMultiplier float64) int {
	return max(1, floorInt(float64(baseBuildTime)*sizeBuildTimeMultiplier))
}

func ActualBuildTime(buildTime, level int) int {
	return max(1, floorInt(float64(buildTime)*(1-float64(level)*0.05)))
}

// ShipCommissionBPPerTurn is the contract bp/turn cost derived from raw
// ship size and size-variant cost multiplier.
func ShipCommissionBPPerTurn(rawSize int, sizeCostMultiplier float64) int {
	return max(1, floorInt(float64(max(1, rawSize/3))*sizeCostMultiplier))
}

// HullPoints and PowerProjection are derived stats combining size, armor,
// schematic bonuses and a flat role bonus.
func HullPoints(size, armor int, schematicHullPointsSum, roleHullPointsBonus int) int {
	return size*5 + armor*10 + schematicHullPointsSum + roleHullPointsBonus
}

func PowerProjection(size int, schematicPowerProjectionSum, rolePowerProjectionBonus int) int {
	return floorInt(float64(size)*1.5) + schematicPowerProjectionSum + rolePowerProjectionBonus
}
