package ship

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
	"github.com/nexusforge/starforge-engine/internal/domain/modifier"
)

// Restore reconstructs a Ship from its already-validated field values, the
// persistence-layer counterpart to Generate for ships loaded back from a
// snapshot rather than freshly built from a blueprint roll.
func Restore(
	id ids.ShipID,
	name string,
	role data.ShipRole,
	sizeVariant data.SizeVariant,
	size int,
	primary PrimaryStats,
	derived DerivedStats,
	abilities formula.ShipAbilities,
	condition int,
	captainID *ids.CaptainID,
	status data.ShipStatus,
	homeSectorID ids.SectorID,
	ownerCorpID ids.CorpID,
	appliedModifiers []modifier.Modifier,
	schematicIDs []ids.SchematicID,
	builtTurn int,
) Ship {
	return Ship{
		id:               id,
		name:             name,
		role:             role,
		sizeVariant:      sizeVariant,
		size:             size,
		primary:          primary,
		derived:          derived,
		abilities:        abilities,
		condition:        condition,
		captainID:        captainID,
		status:           status,
		homeSectorID:     homeSectorID,
		ownerCorpID:      ownerCorpID,
		appliedModifiers: append([]modifier.Modifier(nil), appliedModifiers...),
		schematicIDs:     append([]ids.SchematicID(nil), schematicIDs...),
		builtTurn:        builtTurn,
	}
}

// AppliedModifiers returns the modifiers currently applied to this ship's
// stat derivation, for snapshot/persistence code.
func (s Ship) AppliedModifiers() []modifier.Modifier {
	return append([]modifier.Modifier(nil), s.appliedModifiers...)
}
