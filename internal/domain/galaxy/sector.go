// Package galaxy holds the Sector entity and the galaxy's adjacency graph
// spec §3/§9 describe: a plain id-keyed map, never a graph library, since
// sector counts stay small and BFS over an adjacency list is the natural
// idiomatic-Go answer (grounded on the teacher's flat id-keyed domain maps,
// e.g. internal/domain/navigation).
package galaxy

import (
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
)

// DensityTag classifies a sector's stellar density, used by the galaxy
// generator (out of scope here, consumed as pre-existing state).
type DensityTag string

const (
	DensitySparse DensityTag = "Sparse"
	DensityNormal DensityTag = "Normal"
	DensityDense  DensityTag = "Dense"
)

// Sector is owned by the Galaxy; created at generation and never destroyed.
type Sector struct {
	id                ids.SectorID
	density           DensityTag
	explorationPct    int
	threatModifier    float64
	firstEnteredTurn  *int
}

// NewSector constructs a freshly-generated, unexplored sector.
func NewSector(id ids.SectorID, density DensityTag, threatModifier float64) Sector {
	if threatModifier < 0 {
		shared.InvariantViolation("sector %s: threatModifier must be >= 0, got %f", id, threatModifier)
	}
	return Sector{
		id:             id,
		density:        density,
		explorationPct: 0,
		threatModifier: threatModifier,
	}
}

func (s Sector) ID() ids.SectorID                { return s.id }
func (s Sector) Density() DensityTag             { return s.density }
func (s Sector) ExplorationPct() int             { return s.explorationPct }
func (s Sector) ThreatModifier() float64         { return s.threatModifier }
func (s Sector) FirstEnteredTurn() (int, bool) {
	if s.firstEnteredTurn == nil {
		return 0, false
	}
	return *s.firstEnteredTurn, true
}

// WithExplorationGain returns a copy with explorationPct increased by gain,
// capped at 100, and firstEnteredTurn set if this is the first entry.
func (s Sector) WithExplorationGain(gain, currentTurn int) Sector {
	next := s
	next.explorationPct = s.explorationPct + gain
	if next.explorationPct > 100 {
		next.explorationPct = 100
	}
	if next.firstEnteredTurn == nil {
		turn := currentTurn
		next.firstEnteredTurn = &turn
	}
	return next
}

// Graph is the galaxy's sector adjacency list, keyed by sector id.
type Graph map[ids.SectorID][]ids.SectorID

// Adjacent reports whether b is directly adjacent to a.
func (g Graph) Adjacent(a, b ids.SectorID) bool {
	for _, n := range g[a] {
		if n == b {
			return true
		}
	}
	return false
}

// ShortestHops runs a breadth-first search over the adjacency graph and
// returns the hop distance from start to target, or (0, false) if no path
// exists. Visits neighbors in the graph's stored order so results are
// deterministic across runs (spec §5).
func (g Graph) ShortestHops(start, target ids.SectorID) (int, bool) {
	if start == target {
		return 0, true
	}
	visited := map[ids.SectorID]bool{start: true}
	queue := []ids.SectorID{start}
	dist := map[ids.SectorID]int{start: 0}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			dist[neighbor] = dist[current] + 1
			if neighbor == target {
				return dist[neighbor], true
			}
			queue = append(queue, neighbor)
		}
	}
	return 0, false
}

// Galaxy is the collection of sectors plus their adjacency graph.
type Galaxy struct {
	Sectors   map[ids.SectorID]Sector
	Adjacency Graph
}

// NewGalaxy constructs an empty galaxy shell; the generator (out of scope)
// populates Sectors/Adjacency as a one-shot starting-state producer.
func NewGalaxy() Galaxy {
	return Galaxy{
		Sectors:   map[ids.SectorID]Sector{},
		Adjacency: Graph{},
	}
}

// WithSector returns a copy of the galaxy with sector s inserted or
// replaced — functional-update discipline per spec §5.
func (gl Galaxy) WithSector(s Sector) Galaxy {
	next := Galaxy{
		Sectors:   make(map[ids.SectorID]Sector, len(gl.Sectors)+1),
		Adjacency: gl.Adjacency,
	}
	for id, sec := range gl.Sectors {
		next.Sectors[id] = sec
	}
	next.Sectors[s.ID()] = s
	return next
}
