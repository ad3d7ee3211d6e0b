// Package planet holds the Planet and Deposit entities (spec §3): status is
// a strictly monotonic information dimension, only Rejected is a sideways
// terminal, and mutation happens exclusively via the with-style methods
// below so contract completion effects never edit a planet in place.
package planet

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// Deposit is an extractable resource vein on a planet.
type Deposit struct {
	Type             data.DepositType
	Richness         data.DepositRichness
	RichnessRevealed bool
}

// Feature is a planet-level trait discovered over time, ordered by
// discovery and carrying modifiers applied at colonization.
type Feature struct {
	Name      string
	Modifiers []modifier.Modifier
}

// Planet is owned by its Sector (denormalized reference held by id only,
// per spec §9's no-direct-handles rule).
type Planet struct {
	id             ids.PlanetID
	name           string
	sectorID       ids.SectorID
	planetType     data.PlanetType
	size           data.PlanetSize
	status         data.PlanetStatus
	baseHabitability int
	deposits       []Deposit
	features       []Feature
	orbitScanTurn  *int
	groundSurveyTurn *int
}

// New constructs an Undiscovered planet. Deposits/features are supplied by
// the (out-of-scope) galaxy generator or exploration-phase discovery logic.
func New(id ids.PlanetID, name string, sectorID ids.SectorID, pt data.PlanetType, size data.PlanetSize, baseHabitability int, deposits []Deposit) Planet {
	if baseHabitability < 0 || baseHabitability > 10 {
		shared.InvariantViolation("planet %s: baseHabitability out of [0,10]: %d", id, baseHabitability)
	}
	return Planet{
		id:               id,
		name:             name,
		sectorID:         sectorID,
		planetType:       pt,
		size:             size,
		status:           data.StatusUndiscovered,
		baseHabitability: baseHabitability,
		deposits:         append([]Deposit(nil), deposits...),
	}
}

func (p Planet) ID() ids.PlanetID               { return p.id }
func (p Planet) Name() string                   { return p.name }
func (p Planet) SectorID() ids.SectorID         { return p.sectorID }
func (p Planet) Type() data.PlanetType          { return p.planetType }
func (p Planet) Size() data.PlanetSize          { return p.size }
func (p Planet) Status() data.PlanetStatus      { return p.status }
func (p Planet) BaseHabitability() int          { return p.baseHabitability }
func (p Planet) Deposits() []Deposit            { return append([]Deposit(nil), p.deposits...) }
func (p Planet) Features() []Feature            { return append([]Feature(nil), p.features...) }

func (p Planet) OrbitScanTurn() (int, bool) {
	if p.orbitScanTurn == nil {
		return 0, false
	}
	return *p.orbitScanTurn, true
}

func (p Planet) GroundSurveyTurn() (int, bool) {
	if p.groundSurveyTurn == nil {
		return 0, false
	}
	return *p.groundSurveyTurn, true
}

// WithStatus returns a copy transitioned to status s.
func (p Planet) WithStatus(s data.PlanetStatus) Planet {
	next := p
	next.status = s
	return next
}

// WithOrbitScan returns a copy set to OrbitScanned at turn, with deposit
// types revealed (richness stays hidden until ground survey).
func (p Planet) WithOrbitScan(turn int) Planet {
	next := p
	next.status = data.StatusOrbitScanned
	t := turn
	next.orbitScanTurn = &t
	return next
}

// WithGroundSurvey returns a copy set to GroundSurveyed at turn, with
// every deposit's richness revealed.
func (p Planet) WithGroundSurvey(turn int) Planet {
	next := p
	next.status = data.StatusGroundSurveyed
	t := turn
	next.groundSurveyTurn = &t
	next.deposits = make([]Deposit, len(p.deposits))
	for i, d := range p.deposits {
		d.RichnessRevealed = true
		next.deposits[i] = d
	}
	return next
}

// WithFeatureAppended returns a copy with f appended to the ordered
// feature list.
func (p Planet) WithFeatureAppended(f Feature) Planet {
	next := p
	next.features = append(append([]Feature(nil), p.features...), f)
	return next
}

// BestMatchingDepositMaxInfraBonus returns the maxInfraBonus of the
// deposit matching domain's extraction (per data.Tables), or nil if no
// deposit on this planet extracts into that domain.
func (p Planet) BestMatchingDepositMaxInfraBonus(domain data.InfraDomain, tables data.Tables) *int {
	best := -1
	for _, d := range p.deposits {
		info := tables.DepositType(d.Type)
		if info.ExtractionDomain != domain {
			continue
		}
		if info.MaxInfraBonus > best {
			best = info.MaxInfraBonus
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}
