package corporation

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

// Holdings returns a copy of the corp's full (colony, domain) -> level
// map, for snapshot/persistence code that needs every holding rather than
// a single lookup.
func (c Corporation) Holdings() map[HoldingKey]int {
	next := make(map[HoldingKey]int, len(c.holdings))
	for k, v := range c.holdings {
		next[k] = v
	}
	return next
}

// Restore reconstructs a Corporation from its already-validated field
// values, the persistence-layer counterpart to New.
func Restore(
	id ids.CorpID,
	name string,
	corpType data.CorpType,
	level, capital int,
	homePlanetID ids.PlanetID,
	planetsPresent []ids.PlanetID,
	holdings map[HoldingKey]int,
	schematicIDs []ids.SchematicID,
	patents []string,
	activeContracts []ids.ContractID,
	foundedTurn int,
) Corporation {
	return Corporation{
		id:              id,
		name:            name,
		corpType:        corpType,
		level:           level,
		capital:         capital,
		homePlanetID:    homePlanetID,
		planetsPresent:  append([]ids.PlanetID(nil), planetsPresent...),
		holdings:        holdings,
		schematicIDs:    append([]ids.SchematicID(nil), schematicIDs...),
		patents:         append([]string(nil), patents...),
		activeContracts: append([]ids.ContractID(nil), activeContracts...),
		foundedTurn:     foundedTurn,
	}
}
