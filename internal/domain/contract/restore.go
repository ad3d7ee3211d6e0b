package contract

import (
	"github.com/nexusforge/starforge-engine/internal/domain/data"
	"github.com/nexusforge/starforge-engine/internal/domain/ids"
)

// Restore reconstructs a Contract from its already-validated field values,
// the persistence-layer counterpart to New.
func Restore(
	id ids.ContractID,
	contractType data.ContractType,
	status data.ContractStatus,
	target Target,
	assignedCorpID ids.CorpID,
	bpPerTurn, duration, turnsRemaining, startTurn int,
	completedTurn *int,
	colonizationParams *ColonizationParams,
	shipCommissionParams *ShipCommissionParams,
) Contract {
	return Contract{
		id:                   id,
		contractType:         contractType,
		status:               status,
		target:               target,
		assignedCorpID:       assignedCorpID,
		bpPerTurn:            bpPerTurn,
		duration:             duration,
		turnsRemaining:       turnsRemaining,
		startTurn:            startTurn,
		completedTurn:        completedTurn,
		colonizationParams:   colonizationParams,
		shipCommissionParams: shipCommissionParams,
	}
}
