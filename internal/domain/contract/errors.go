package contract

import "github.com/nexusforge/starforge-engine/internal/domain/shared"

// Error kinds for contract creation, per spec §4.3's taxonomy.
const (
	KindTargetNotFound         shared.Kind = "TargetNotFound"
	KindInvalidTargetType      shared.Kind = "InvalidTargetType"
	KindInvalidPlanetStatus    shared.Kind = "InvalidPlanetStatus"
	KindSectorsNotAdjacent     shared.Kind = "SectorsNotAdjacent"
	KindSectorOutOfRange       shared.Kind = "SectorOutOfRange"
	KindCorpNotFound           shared.Kind = "CorpNotFound"
	KindCorpNotEligible        shared.Kind = "CorpNotEligible"
	KindMissingColonyType      shared.Kind = "MissingColonyType"
	KindMissingShipParams      shared.Kind = "MissingShipParams"
	KindInsufficientSpaceInfra shared.Kind = "InsufficientSpaceInfra"
)
