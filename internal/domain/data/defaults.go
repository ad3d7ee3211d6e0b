package data

// Tables is the bundle of static definitions spec §6 requires the engine to
// expose. infrastructure/config loads a Tables value (defaults overridden by
// YAML/env) and every formula/domain package reads from it instead of
// hard-coding constants.
type Tables struct {
	PlanetTypes   []PlanetTypeInfo   `mapstructure:"planet_types" yaml:"planet_types" validate:"dive"`
	PlanetSizes   []PlanetSizeInfo   `mapstructure:"planet_sizes" yaml:"planet_sizes" validate:"dive"`
	DepositTypes  []DepositTypeInfo  `mapstructure:"deposit_types" yaml:"deposit_types" validate:"dive"`
	ColonyTypes   []ColonyTypeInfo   `mapstructure:"colony_types" yaml:"colony_types" validate:"dive"`
	CorpTypes     []CorpTypeInfo     `mapstructure:"corp_types" yaml:"corp_types" validate:"dive"`
	ContractTypes []ContractTypeInfo `mapstructure:"contract_types" yaml:"contract_types" validate:"dive"`
	Roles         []RoleInfo         `mapstructure:"roles" yaml:"roles" validate:"dive"`
	SizeVariants  []SizeVariantInfo  `mapstructure:"size_variants" yaml:"size_variants" validate:"dive"`
	MissionTypes  []MissionTypeInfo  `mapstructure:"mission_types" yaml:"mission_types" validate:"dive"`
	Discoveries   []Discovery        `mapstructure:"discoveries" yaml:"discoveries" validate:"dive"`

	StartingBP         int `mapstructure:"starting_bp" yaml:"starting_bp" validate:"min=0"`
	StartingDebtTokens int `mapstructure:"starting_debt_tokens" yaml:"starting_debt_tokens" validate:"min=0,max=10"`
}

// GetBaseTables returns the engine's built-in default tables — the
// same role a teacher's GetBaseCorporations()/SetDefaults() plays: concrete
// starting content, not placeholders, used whenever no override config is
// supplied.
func GetBaseTables() Tables {
	return Tables{
		PlanetTypes: []PlanetTypeInfo{
			{Type: PlanetContinental, BaseHabitability: 7},
			{Type: PlanetOceanic, BaseHabitability: 6},
			{Type: PlanetJungle, BaseHabitability: 5},
			{Type: PlanetTundra, BaseHabitability: 4},
			{Type: PlanetDesert, BaseHabitability: 3},
			{Type: PlanetVolcanic, BaseHabitability: 1},
			{Type: PlanetBarren, BaseHabitability: 1},
			{Type: PlanetGasGiant, BaseHabitability: 0},
		},
		PlanetSizes: []PlanetSizeInfo{
			{Size: SizeTiny, MaxPopLevel: 3},
			{Size: SizeSmall, MaxPopLevel: 5},
			{Size: SizeMedium, MaxPopLevel: 7},
			{Size: SizeLarge, MaxPopLevel: 9},
			{Size: SizeHuge, MaxPopLevel: 10},
		},
		DepositTypes: []DepositTypeInfo{
			{Type: DepositOre, ExtractionDomain: DomainMining, MaxInfraBonus: 8},
			{Type: DepositRareMetals, ExtractionDomain: DomainMining, MaxInfraBonus: 6},
			{Type: DepositGas, ExtractionDomain: DomainEnergy, MaxInfraBonus: 8},
			{Type: DepositCrystals, ExtractionDomain: DomainMining, MaxInfraBonus: 5},
			{Type: DepositOrganics, ExtractionDomain: DomainAgricultural, MaxInfraBonus: 8},
		},
		ColonyTypes: []ColonyTypeInfo{
			{
				Type: ColonyFrontier,
				StartingInfra: map[InfraDomain]int{
					DomainCivilian: 2, DomainAgricultural: 1,
				},
				BPPerTurn: 3, Duration: 6, PassiveModifierTag: "frontier_resilience",
			},
			{
				Type: ColonyMining,
				StartingInfra: map[InfraDomain]int{
					DomainCivilian: 1, DomainMining: 2,
				},
				BPPerTurn: 4, Duration: 6, PassiveModifierTag: "mining_subsidy",
			},
			{
				Type: ColonyScience,
				StartingInfra: map[InfraDomain]int{
					DomainCivilian: 1, DomainScience: 2,
				},
				BPPerTurn: 5, Duration: 7, PassiveModifierTag: "science_grant",
			},
			{
				Type: ColonyMilitary,
				StartingInfra: map[InfraDomain]int{
					DomainCivilian: 1, DomainMilitary: 2,
				},
				BPPerTurn: 5, Duration: 7, PassiveModifierTag: "martial_law",
			},
		},
		CorpTypes: []CorpTypeInfo{
			{Type: CorpExploration, PrimaryDomains: []InfraDomain{DomainCivilian, DomainTransport}},
			{Type: CorpConstruction, PrimaryDomains: []InfraDomain{DomainConstruction, DomainCivilian}},
			{Type: CorpIndustrial, PrimaryDomains: []InfraDomain{DomainLowIndustry, DomainHighIndustry}},
			{Type: CorpShipbuilding, PrimaryDomains: []InfraDomain{DomainSpaceIndustry, DomainHighIndustry}},
			{Type: CorpScience, PrimaryDomains: []InfraDomain{DomainScience, DomainEnergy}},
			{Type: CorpTransport, PrimaryDomains: []InfraDomain{DomainTransport, DomainCommerce}},
			{Type: CorpMilitary, PrimaryDomains: []InfraDomain{DomainMilitary, DomainSpaceIndustry}},
			{Type: CorpAgriculture, PrimaryDomains: []InfraDomain{DomainAgricultural, DomainCommerce}},
			{Type: CorpExploitation, PrimaryDomains: []InfraDomain{DomainMining, DomainEnergy}},
		},
		ContractTypes: []ContractTypeInfo{
			{
				Type:              ContractExploration,
				EligibleCorpTypes: []CorpType{CorpExploration},
				TargetKind:        TargetSector,
				BaseBPPerTurn:     2,
				BaseDuration:      4,
			},
			{
				Type:              ContractGroundSurvey,
				EligibleCorpTypes: []CorpType{CorpExploration, CorpScience},
				TargetKind:        TargetPlanet,
				BaseBPPerTurn:     2,
				BaseDuration:      2,
			},
			{
				Type:              ContractColonization,
				EligibleCorpTypes: []CorpType{CorpConstruction},
				TargetKind:        TargetPlanet,
				BaseBPPerTurn:     3,
				BaseDuration:      6,
			},
			{
				Type:              ContractShipCommission,
				EligibleCorpTypes: []CorpType{CorpShipbuilding},
				TargetKind:        TargetColony,
				BaseBPPerTurn:     1,
				BaseDuration:      2,
			},
			{
				Type:              ContractTradeRoute,
				EligibleCorpTypes: []CorpType{CorpTransport},
				TargetKind:        TargetSectorPair,
				BaseBPPerTurn:     2,
				BaseDuration:      TradeRouteSentinelTurns,
			},
		},
		Roles: []RoleInfo{
			{
				Role: RoleSystemPatrol, BaseSize: 3, BuildTimeBonus: 0,
				PowerProjectionBonus: 0, HullPointsBonus: 2,
				BaseFirepower: 4, BaseArmor: 3, BaseEvasion: 5, BaseSpeed: 6, BaseSensors: 4,
			},
			{
				Role: RoleScout, BaseSize: 2, BuildTimeBonus: 0,
				PowerProjectionBonus: 0, HullPointsBonus: 0,
				BaseFirepower: 1, BaseArmor: 1, BaseEvasion: 7, BaseSpeed: 9, BaseSensors: 8,
			},
			{
				Role: RoleFreighter, BaseSize: 5, BuildTimeBonus: 1,
				PowerProjectionBonus: 0, HullPointsBonus: 4,
				BaseFirepower: 1, BaseArmor: 4, BaseEvasion: 2, BaseSpeed: 3, BaseSensors: 2,
			},
			{
				Role: RoleCruiser, BaseSize: 7, BuildTimeBonus: 2,
				PowerProjectionBonus: 3, HullPointsBonus: 6,
				BaseFirepower: 8, BaseArmor: 7, BaseEvasion: 3, BaseSpeed: 4, BaseSensors: 5,
			},
			{
				Role: RoleCarrier, BaseSize: 9, BuildTimeBonus: 3,
				PowerProjectionBonus: 5, HullPointsBonus: 8,
				BaseFirepower: 3, BaseArmor: 6, BaseEvasion: 1, BaseSpeed: 2, BaseSensors: 6,
			},
		},
		SizeVariants: []SizeVariantInfo{
			{Variant: SizeVariantLight, SizeMultiplier: 0.75, SizeBuildTimeMultiplier: 0.75, SizeCostMultiplier: 0.75},
			{Variant: SizeVariantStandard, SizeMultiplier: 1.0, SizeBuildTimeMultiplier: 1.0, SizeCostMultiplier: 1.0},
			{Variant: SizeVariantHeavy, SizeMultiplier: 1.25, SizeBuildTimeMultiplier: 1.25, SizeCostMultiplier: 1.25},
		},
		MissionTypes: []MissionTypeInfo{
			{Type: MissionPatrol, BaseBP: 2, DurMin: 2, DurMax: 4},
			{Type: MissionSurvey, BaseBP: 2, DurMin: 3, DurMax: 6},
			{Type: MissionCombatStrike, BaseBP: 4, DurMin: 1, DurMax: 3},
			{Type: MissionDiplomatic, BaseBP: 3, DurMin: 2, DurMax: 5},
		},
		Discoveries: []Discovery{
			{ID: "disc-survey-drones", Name: "Survey Drone Swarms", MinCorpLevel: 1, Cost: 3, BonusTarget: "explorationGainBonus", BonusValue: 1},
			{ID: "disc-soil-synth", Name: "Synthetic Soil Amendment", MinCorpLevel: 2, Cost: 4, BonusTarget: "habitabilityBonus", BonusValue: 1},
			{ID: "disc-fusion-grid", Name: "Fusion Grid Efficiency", MinCorpLevel: 4, Cost: 6, BonusTarget: "energyOutputBonus", BonusValue: 2},
			{ID: "disc-hull-alloys", Name: "Adaptive Hull Alloys", MinCorpLevel: 6, Cost: 8, BonusTarget: "hullPointsBonus", BonusValue: 3},
			{ID: "disc-ftl-nav", Name: "Faster-Than-Light Navigation Tables", MinCorpLevel: 8, Cost: 10, BonusTarget: "missionSpeedBonus", BonusValue: 1},
		},
		StartingBP:         50,
		StartingDebtTokens: 0,
	}
}

// PlanetTypeInfo looks up a planet type's static row. Panics (invariant
// violation) if the type is unknown — a planet must never carry a type
// absent from its own engine's tables.
func (t Tables) PlanetType(pt PlanetType) PlanetTypeInfo {
	for _, row := range t.PlanetTypes {
		if row.Type == pt {
			return row
		}
	}
	panic("unknown planet type: " + string(pt))
}

func (t Tables) PlanetSize(sz PlanetSize) PlanetSizeInfo {
	for _, row := range t.PlanetSizes {
		if row.Size == sz {
			return row
		}
	}
	panic("unknown planet size: " + string(sz))
}

func (t Tables) DepositType(dt DepositType) DepositTypeInfo {
	for _, row := range t.DepositTypes {
		if row.Type == dt {
			return row
		}
	}
	panic("unknown deposit type: " + string(dt))
}

func (t Tables) ColonyType(ct ColonyType) ColonyTypeInfo {
	for _, row := range t.ColonyTypes {
		if row.Type == ct {
			return row
		}
	}
	panic("unknown colony type: " + string(ct))
}

func (t Tables) CorpType(ct CorpType) CorpTypeInfo {
	for _, row := range t.CorpTypes {
		if row.Type == ct {
			return row
		}
	}
	panic("unknown corp type: " + string(ct))
}

func (t Tables) ContractType(ct ContractType) ContractTypeInfo {
	for _, row := range t.ContractTypes {
		if row.Type == ct {
			return row
		}
	}
	panic("unknown contract type: " + string(ct))
}

func (t Tables) Role(r ShipRole) RoleInfo {
	for _, row := range t.Roles {
		if row.Role == r {
			return row
		}
	}
	panic("unknown ship role: " + string(r))
}

func (t Tables) SizeVariant(sv SizeVariant) SizeVariantInfo {
	for _, row := range t.SizeVariants {
		if row.Variant == sv {
			return row
		}
	}
	panic("unknown size variant: " + string(sv))
}

func (t Tables) MissionType(mt MissionType) MissionTypeInfo {
	for _, row := range t.MissionTypes {
		if row.Type == mt {
			return row
		}
	}
	panic("unknown mission type: " + string(mt))
}
