package colony

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
)

// Restore reconstructs a Colony from its already-validated field values,
// for use by persistence/snapshot code that needs to rebuild a Colony
// without re-running New's invariant checks (the fields came from a
// previously valid Colony, not from fresh user input).
func Restore(
	id ids.ColonyID,
	planetID ids.PlanetID,
	sectorID ids.SectorID,
	colonyType data.ColonyType,
	populationLevel, maxPopLevel, growthAccumulator int,
	attributes Attributes,
	previousAttributes *Attributes,
	infra map[data.InfraDomain]InfraDomainState,
	corporationsPresent []ids.CorpID,
	modifiers []modifier.Modifier,
	foundedTurn int,
) Colony {
	return Colony{
		id:                  id,
		planetID:            planetID,
		sectorID:            sectorID,
		colonyType:          colonyType,
		populationLevel:     populationLevel,
		maxPopLevel:         maxPopLevel,
		growthAccumulator:   growthAccumulator,
		attributes:          attributes,
		previousAttributes:  previousAttributes,
		infra:               infra,
		corporationsPresent: append([]ids.CorpID(nil), corporationsPresent...),
		modifiers:           append([]modifier.Modifier(nil), modifiers...),
		foundedTurn:         foundedTurn,
	}
}
