// Package cli implements turnctl's commands: loading a JSON game-state
// snapshot and a JSON order batch, running the turn pipeline, and writing
// the resulting snapshot and event list back out (SPEC_FULL.md §A).
//
// Domain entities hold their fields unexported by design, so this package
// defines a parallel set of plain, JSON-tagged documents and two
// directions of conversion between them and the real domain/state types —
// the same role the teacher's PlayerModel/modelToPlayer/playerToModel
// trio plays for its GORM-backed persistence, adapted here to a flat JSON
// file instead of a database row.
package cli

import (
	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/event"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/galaxy"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/market"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/planet"
	"github.com/nexusforge/starforge-engine/internal/domain/ship"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// SectorDoc is one sector's JSON form.
type SectorDoc struct {
	ID               ids.SectorID     `json:"id"`
	Density          galaxy.DensityTag `json:"density"`
	ExplorationPct   int              `json:"exploration_pct"`
	ThreatModifier   float64          `json:"threat_modifier"`
	FirstEnteredTurn *int             `json:"first_entered_turn,omitempty"`
}

// GalaxyDoc is the galaxy's JSON form: sectors plus adjacency.
type GalaxyDoc struct {
	Sectors   []SectorDoc                      `json:"sectors"`
	Adjacency map[ids.SectorID][]ids.SectorID `json:"adjacency"`
}

// ColonyDoc is a colony's JSON form.
type ColonyDoc struct {
	ID                  ids.ColonyID                          `json:"id"`
	PlanetID            ids.PlanetID                           `json:"planet_id"`
	SectorID            ids.SectorID                           `json:"sector_id"`
	Type                data.ColonyType                        `json:"type"`
	PopulationLevel     int                                    `json:"population_level"`
	MaxPopLevel         int                                    `json:"max_pop_level"`
	GrowthAccumulator   int                                    `json:"growth_accumulator"`
	Attributes          colony.Attributes                      `json:"attributes"`
	PreviousAttributes  *colony.Attributes                     `json:"previous_attributes,omitempty"`
	Infra               map[data.InfraDomain]colony.InfraDomainState `json:"infra"`
	CorporationsPresent []ids.CorpID                           `json:"corporations_present"`
	Modifiers           []modifier.Modifier                    `json:"modifiers"`
	FoundedTurn         int                                    `json:"founded_turn"`
}

// PlanetDoc is a planet's JSON form.
type PlanetDoc struct {
	ID               ids.PlanetID     `json:"id"`
	Name             string           `json:"name"`
	SectorID         ids.SectorID     `json:"sector_id"`
	Type             data.PlanetType  `json:"type"`
	Size             data.PlanetSize  `json:"size"`
	Status           data.PlanetStatus `json:"status"`
	BaseHabitability int              `json:"base_habitability"`
	Deposits         []planet.Deposit `json:"deposits"`
	Features         []planet.Feature `json:"features"`
	OrbitScanTurn    *int             `json:"orbit_scan_turn,omitempty"`
	GroundSurveyTurn *int             `json:"ground_survey_turn,omitempty"`
}

// HoldingDoc is one (colony, domain) -> level entry in a corp's holdings,
// flattened for JSON since corporation.HoldingKey isn't a valid map key in
// JSON (struct keys aren't supported by encoding/json).
type HoldingDoc struct {
	ColonyID ids.ColonyID      `json:"colony_id"`
	Domain   data.InfraDomain  `json:"domain"`
	Level    int               `json:"level"`
}

// CorporationDoc is a corporation's JSON form.
type CorporationDoc struct {
	ID              ids.CorpID          `json:"id"`
	Name            string              `json:"name"`
	Type            data.CorpType       `json:"type"`
	Level           int                 `json:"level"`
	Capital         int                 `json:"capital"`
	HomePlanetID    ids.PlanetID        `json:"home_planet_id"`
	PlanetsPresent  []ids.PlanetID      `json:"planets_present"`
	Holdings        []HoldingDoc        `json:"holdings"`
	SchematicIDs    []ids.SchematicID   `json:"schematic_ids"`
	Patents         []string            `json:"patents"`
	ActiveContracts []ids.ContractID    `json:"active_contracts"`
	FoundedTurn     int                 `json:"founded_turn"`
}

// ContractDoc is a contract's JSON form.
type ContractDoc struct {
	ID                   ids.ContractID                 `json:"id"`
	Type                 data.ContractType               `json:"type"`
	Status               data.ContractStatus             `json:"status"`
	Target               contract.Target                 `json:"target"`
	AssignedCorpID       ids.CorpID                       `json:"assigned_corp_id"`
	BPPerTurn            int                              `json:"bp_per_turn"`
	Duration             int                              `json:"duration"`
	TurnsRemaining       int                              `json:"turns_remaining"`
	StartTurn            int                              `json:"start_turn"`
	CompletedTurn        *int                             `json:"completed_turn,omitempty"`
	ColonizationParams   *contract.ColonizationParams     `json:"colonization_params,omitempty"`
	ShipCommissionParams *contract.ShipCommissionParams   `json:"ship_commission_params,omitempty"`
}

// ShipDoc is a ship's JSON form.
type ShipDoc struct {
	ID               ids.ShipID            `json:"id"`
	Name             string                `json:"name"`
	Role             data.ShipRole         `json:"role"`
	SizeVariant      data.SizeVariant      `json:"size_variant"`
	Size             int                   `json:"size"`
	Primary          ship.PrimaryStats     `json:"primary"`
	Derived          ship.DerivedStats     `json:"derived"`
	Abilities        formula.ShipAbilities `json:"abilities"`
	Condition        int                   `json:"condition"`
	CaptainID        *ids.CaptainID        `json:"captain_id,omitempty"`
	Status           data.ShipStatus       `json:"status"`
	HomeSectorID     ids.SectorID          `json:"home_sector_id"`
	OwnerCorpID      ids.CorpID            `json:"owner_corp_id"`
	AppliedModifiers []modifier.Modifier   `json:"applied_modifiers"`
	SchematicIDs     []ids.SchematicID     `json:"schematic_ids"`
	BuiltTurn        int                   `json:"built_turn"`
}

// MissionDoc is a mission's JSON form.
type MissionDoc struct {
	ID                      ids.MissionID       `json:"id"`
	Type                    data.MissionType    `json:"type"`
	Phase                   data.MissionPhase   `json:"phase"`
	TargetSectorID          ids.SectorID        `json:"target_sector_id"`
	ShipIDs                 []ids.ShipID        `json:"ship_ids"`
	CommanderCaptainID      ids.CaptainID       `json:"commander_captain_id"`
	BPPerTurn               int                 `json:"bp_per_turn"`
	TravelTurnsRemaining    int                 `json:"travel_turns_remaining"`
	ExecutionTurnsRemaining int                 `json:"execution_turns_remaining"`
	ReturnTurnsRemaining    int                 `json:"return_turns_remaining"`
	StartTurn               int                `json:"start_turn"`
	CompletedTurn           *int                `json:"completed_turn,omitempty"`
	Report                  *mission.Report     `json:"report,omitempty"`
}

// SequenceDoc is one id Sequence's JSON form.
type SequenceDoc struct {
	Prefix string `json:"prefix"`
	Next   uint64 `json:"next"`
}

// SequencesDoc bundles every entity kind's SequenceDoc.
type SequencesDoc struct {
	Planet   SequenceDoc `json:"planet"`
	Sector   SequenceDoc `json:"sector"`
	Colony   SequenceDoc `json:"colony"`
	Corp     SequenceDoc `json:"corp"`
	Ship     SequenceDoc `json:"ship"`
	Contract SequenceDoc `json:"contract"`
	Mission  SequenceDoc `json:"mission"`
	Captain  SequenceDoc `json:"captain"`
	Modifier SequenceDoc `json:"modifier"`
	Event    SequenceDoc `json:"event"`
}

// BudgetEntryDoc mirrors state.BudgetEntry.
type BudgetEntryDoc struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// StateDocument is the full JSON form of a state.GameState, produced by
// ToSnapshot and consumed by FromSnapshot.
type StateDocument struct {
	Turn                int                                     `json:"turn"`
	CurrentBP           int                                     `json:"current_bp"`
	DebtTokens          int                                     `json:"debt_tokens"`
	BudgetBreakdown     []BudgetEntryDoc                         `json:"budget_breakdown"`
	EmpireBonuses       map[string]float64                      `json:"empire_bonuses"`
	Tables              data.Tables                             `json:"tables"`
	Galaxy              GalaxyDoc                                `json:"galaxy"`
	Colonies            []ColonyDoc                              `json:"colonies"`
	Planets             []PlanetDoc                              `json:"planets"`
	Corporations        []CorporationDoc                         `json:"corporations"`
	Contracts           []ContractDoc                            `json:"contracts"`
	Ships               []ShipDoc                                `json:"ships"`
	Missions            []MissionDoc                             `json:"missions"`
	SectorMarkets       map[ids.SectorID]market.SectorMarketState `json:"sector_markets"`
	Events              []event.Event                            `json:"events"`
	Sequences           SequencesDoc                              `json:"sequences"`
	UnlockedDiscoveries []ids.DiscoveryID                        `json:"unlocked_discoveries"`
}

// ToSnapshot flattens a GameState into its JSON document form.
func ToSnapshot(s state.GameState) StateDocument {
	doc := StateDocument{
		Turn:                s.Turn,
		CurrentBP:           s.CurrentBP,
		DebtTokens:          s.DebtTokens,
		EmpireBonuses:       s.EmpireBonuses,
		Tables:              s.Tables,
		SectorMarkets:       s.SectorMarkets,
		Events:              s.Events,
		UnlockedDiscoveries: s.UnlockedDiscoveries,
		Sequences:           sequencesToDoc(s.Sequences),
	}

	for _, entry := range s.BudgetBreakdown {
		doc.BudgetBreakdown = append(doc.BudgetBreakdown, BudgetEntryDoc{Label: entry.Label, Amount: entry.Amount})
	}

	for _, sec := range s.Galaxy.Sectors {
		firstEntered, ok := sec.FirstEnteredTurn()
		var firstEnteredPtr *int
		if ok {
			firstEnteredPtr = &firstEntered
		}
		doc.Galaxy.Sectors = append(doc.Galaxy.Sectors, SectorDoc{
			ID:               sec.ID(),
			Density:          sec.Density(),
			ExplorationPct:   sec.ExplorationPct(),
			ThreatModifier:   sec.ThreatModifier(),
			FirstEnteredTurn: firstEnteredPtr,
		})
	}
	doc.Galaxy.Adjacency = map[ids.SectorID][]ids.SectorID(s.Galaxy.Adjacency)

	for id, c := range s.Colonies {
		cd := ColonyDoc{
			ID:                  id,
			PlanetID:            c.PlanetID(),
			SectorID:            c.SectorID(),
			Type:                c.Type(),
			PopulationLevel:     c.PopulationLevel(),
			MaxPopLevel:         c.MaxPopLevel(),
			GrowthAccumulator:   c.GrowthAccumulator(),
			Attributes:          c.Attributes(),
			CorporationsPresent: c.CorporationsPresent(),
			Modifiers:           c.Modifiers(),
			FoundedTurn:         c.FoundedTurn(),
			Infra:               map[data.InfraDomain]colony.InfraDomainState{},
		}
		if prev, ok := c.PreviousAttributes(); ok {
			cd.PreviousAttributes = &prev
		}
		for _, d := range c.Domains() {
			cd.Infra[d] = c.InfraDomainState(d)
		}
		doc.Colonies = append(doc.Colonies, cd)
	}

	for id, p := range s.Planets {
		pd := PlanetDoc{
			ID:               id,
			Name:             p.Name(),
			SectorID:         p.SectorID(),
			Type:             p.Type(),
			Size:             p.Size(),
			Status:           p.Status(),
			BaseHabitability: p.BaseHabitability(),
			Deposits:         p.Deposits(),
			Features:         p.Features(),
		}
		if turn, ok := p.OrbitScanTurn(); ok {
			t := turn
			pd.OrbitScanTurn = &t
		}
		if turn, ok := p.GroundSurveyTurn(); ok {
			t := turn
			pd.GroundSurveyTurn = &t
		}
		doc.Planets = append(doc.Planets, pd)
	}

	for id, corp := range s.Corporations {
		crd := CorporationDoc{
			ID:              id,
			Name:            corp.Name(),
			Type:            corp.Type(),
			Level:           corp.Level(),
			Capital:         corp.Capital(),
			HomePlanetID:    corp.HomePlanetID(),
			PlanetsPresent:  corp.PlanetsPresent(),
			SchematicIDs:    corp.SchematicIDs(),
			Patents:         corp.Patents(),
			ActiveContracts: corp.ActiveContracts(),
			FoundedTurn:     corp.FoundedTurn(),
		}
		for key, level := range corp.Holdings() {
			crd.Holdings = append(crd.Holdings, HoldingDoc{ColonyID: key.ColonyID, Domain: key.Domain, Level: level})
		}
		doc.Corporations = append(doc.Corporations, crd)
	}

	for id, c := range s.Contracts {
		cd := ContractDoc{
			ID:             id,
			Type:           c.Type(),
			Status:         c.Status(),
			Target:         c.Target(),
			AssignedCorpID: c.AssignedCorpID(),
			BPPerTurn:      c.BPPerTurn(),
			Duration:       c.Duration(),
			TurnsRemaining: c.TurnsRemaining(),
			StartTurn:      c.StartTurn(),
		}
		if turn, ok := c.CompletedTurn(); ok {
			t := turn
			cd.CompletedTurn = &t
		}
		if p, ok := c.ColonizationParams(); ok {
			cd.ColonizationParams = &p
		}
		if p, ok := c.ShipCommissionParams(); ok {
			cd.ShipCommissionParams = &p
		}
		doc.Contracts = append(doc.Contracts, cd)
	}

	for id, sh := range s.Ships {
		shd := ShipDoc{
			ID:               id,
			Name:             sh.Name(),
			Role:             sh.Role(),
			SizeVariant:      sh.SizeVariant(),
			Size:             sh.Size(),
			Primary:          sh.Primary(),
			Derived:          sh.Derived(),
			Abilities:        sh.Abilities(),
			Condition:        sh.Condition(),
			Status:           sh.Status(),
			HomeSectorID:     sh.HomeSectorID(),
			OwnerCorpID:      sh.OwnerCorpID(),
			AppliedModifiers: sh.AppliedModifiers(),
			SchematicIDs:     sh.SchematicIDs(),
			BuiltTurn:        sh.BuiltTurn(),
		}
		if captainID, ok := sh.CaptainID(); ok {
			c := captainID
			shd.CaptainID = &c
		}
		doc.Ships = append(doc.Ships, shd)
	}

	for id, m := range s.Missions {
		md := MissionDoc{
			ID:                      id,
			Type:                    m.Type(),
			Phase:                   m.Phase(),
			TargetSectorID:          m.TargetSectorID(),
			ShipIDs:                 m.ShipIDs(),
			CommanderCaptainID:      m.CommanderCaptainID(),
			BPPerTurn:               m.BPPerTurn(),
			TravelTurnsRemaining:    m.TravelTurnsRemaining(),
			ExecutionTurnsRemaining: m.ExecutionTurnsRemaining(),
			ReturnTurnsRemaining:    m.ReturnTurnsRemaining(),
			StartTurn:               m.StartTurn(),
		}
		if turn, ok := m.CompletedTurn(); ok {
			t := turn
			md.CompletedTurn = &t
		}
		if r, ok := m.Report(); ok {
			md.Report = &r
		}
		doc.Missions = append(doc.Missions, md)
	}

	return doc
}

func sequencesToDoc(seq state.Sequences) SequencesDoc {
	return SequencesDoc{
		Planet:   SequenceDoc{Prefix: seq.Planet.Prefix(), Next: seq.Planet.NextValue()},
		Sector:   SequenceDoc{Prefix: seq.Sector.Prefix(), Next: seq.Sector.NextValue()},
		Colony:   SequenceDoc{Prefix: seq.Colony.Prefix(), Next: seq.Colony.NextValue()},
		Corp:     SequenceDoc{Prefix: seq.Corp.Prefix(), Next: seq.Corp.NextValue()},
		Ship:     SequenceDoc{Prefix: seq.Ship.Prefix(), Next: seq.Ship.NextValue()},
		Contract: SequenceDoc{Prefix: seq.Contract.Prefix(), Next: seq.Contract.NextValue()},
		Mission:  SequenceDoc{Prefix: seq.Mission.Prefix(), Next: seq.Mission.NextValue()},
		Captain:  SequenceDoc{Prefix: seq.Captain.Prefix(), Next: seq.Captain.NextValue()},
		Modifier: SequenceDoc{Prefix: seq.Modifier.Prefix(), Next: seq.Modifier.NextValue()},
		Event:    SequenceDoc{Prefix: seq.Event.Prefix(), Next: seq.Event.NextValue()},
	}
}

func sequenceFromDoc(d SequenceDoc) ids.Sequence {
	return ids.RestoreSequence(d.Prefix, d.Next)
}

// FromSnapshot rebuilds a GameState from its JSON document form, the
// inverse of ToSnapshot.
func FromSnapshot(doc StateDocument) state.GameState {
	s := state.GameState{
		Turn:                doc.Turn,
		CurrentBP:           doc.CurrentBP,
		DebtTokens:          doc.DebtTokens,
		EmpireBonuses:       doc.EmpireBonuses,
		Tables:              doc.Tables,
		Colonies:            map[ids.ColonyID]colony.Colony{},
		Planets:             map[ids.PlanetID]planet.Planet{},
		Corporations:        map[ids.CorpID]corporation.Corporation{},
		Contracts:           map[ids.ContractID]contract.Contract{},
		Ships:               map[ids.ShipID]ship.Ship{},
		Missions:            map[ids.MissionID]mission.Mission{},
		SectorMarkets:       doc.SectorMarkets,
		Events:              doc.Events,
		UnlockedDiscoveries: doc.UnlockedDiscoveries,
		Sequences: state.Sequences{
			Planet:   sequenceFromDoc(doc.Sequences.Planet),
			Sector:   sequenceFromDoc(doc.Sequences.Sector),
			Colony:   sequenceFromDoc(doc.Sequences.Colony),
			Corp:     sequenceFromDoc(doc.Sequences.Corp),
			Ship:     sequenceFromDoc(doc.Sequences.Ship),
			Contract: sequenceFromDoc(doc.Sequences.Contract),
			Mission:  sequenceFromDoc(doc.Sequences.Mission),
			Captain:  sequenceFromDoc(doc.Sequences.Captain),
			Modifier: sequenceFromDoc(doc.Sequences.Modifier),
			Event:    sequenceFromDoc(doc.Sequences.Event),
		},
	}

	for _, entry := range doc.BudgetBreakdown {
		s.BudgetBreakdown = append(s.BudgetBreakdown, state.BudgetEntry{Label: entry.Label, Amount: entry.Amount})
	}

	gl := galaxy.NewGalaxy()
	for _, sd := range doc.Galaxy.Sectors {
		sec := galaxy.NewSector(sd.ID, sd.Density, sd.ThreatModifier)
		if sd.ExplorationPct > 0 || sd.FirstEnteredTurn != nil {
			turn := 0
			if sd.FirstEnteredTurn != nil {
				turn = *sd.FirstEnteredTurn
			}
			sec = sec.WithExplorationGain(sd.ExplorationPct, turn)
		}
		gl = gl.WithSector(sec)
	}
	gl.Adjacency = galaxy.Graph(doc.Galaxy.Adjacency)
	s.Galaxy = gl

	for _, cd := range doc.Colonies {
		s.Colonies[cd.ID] = colony.Restore(
			cd.ID, cd.PlanetID, cd.SectorID, cd.Type,
			cd.PopulationLevel, cd.MaxPopLevel, cd.GrowthAccumulator,
			cd.Attributes, cd.PreviousAttributes, cd.Infra,
			cd.CorporationsPresent, cd.Modifiers, cd.FoundedTurn,
		)
	}

	for _, pd := range doc.Planets {
		s.Planets[pd.ID] = planet.Restore(
			pd.ID, pd.Name, pd.SectorID, pd.Type, pd.Size, pd.Status,
			pd.BaseHabitability, pd.Deposits, pd.Features,
			pd.OrbitScanTurn, pd.GroundSurveyTurn,
		)
	}

	for _, crd := range doc.Corporations {
		holdings := make(map[corporation.HoldingKey]int, len(crd.Holdings))
		for _, h := range crd.Holdings {
			holdings[corporation.HoldingKey{ColonyID: h.ColonyID, Domain: h.Domain}] = h.Level
		}
		s.Corporations[crd.ID] = corporation.Restore(
			crd.ID, crd.Name, crd.Type, crd.Level, crd.Capital, crd.HomePlanetID,
			crd.PlanetsPresent, holdings, crd.SchematicIDs, crd.Patents,
			crd.ActiveContracts, crd.FoundedTurn,
		)
	}

	for _, cd := range doc.Contracts {
		s.Contracts[cd.ID] = contract.Restore(
			cd.ID, cd.Type, cd.Status, cd.Target, cd.AssignedCorpID,
			cd.BPPerTurn, cd.Duration, cd.TurnsRemaining, cd.StartTurn,
			cd.CompletedTurn, cd.ColonizationParams, cd.ShipCommissionParams,
		)
	}

	for _, shd := range doc.Ships {
		s.Ships[shd.ID] = ship.Restore(
			shd.ID, shd.Name, shd.Role, shd.SizeVariant, shd.Size,
			shd.Primary, shd.Derived, shd.Abilities, shd.Condition,
			shd.CaptainID, shd.Status, shd.HomeSectorID, shd.OwnerCorpID,
			shd.AppliedModifiers, shd.SchematicIDs, shd.BuiltTurn,
		)
	}

	for _, md := range doc.Missions {
		s.Missions[md.ID] = mission.Restore(
			md.ID, md.Type, md.Phase, md.TargetSectorID, md.ShipIDs,
			md.CommanderCaptainID, md.BPPerTurn, md.TravelTurnsRemaining,
			md.ExecutionTurnsRemaining, md.ReturnTurnsRemaining, md.StartTurn,
			md.CompletedTurn, md.Report,
		)
	}

	return s
}
