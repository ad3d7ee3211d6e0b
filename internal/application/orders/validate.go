package orders

import (
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// ValidateOrder reports whether order would be accepted against s without
// committing any change — callers (e.g. a UI order-preview) can check
// eligibility before the order is actually submitted for the turn. It
// shares ApplyOrder's validation path exactly, so a nil result here
// guarantees ApplyOrder against the same state will not fail validation.
func ValidateOrder(s state.GameState, order interface{}) *shared.DomainError {
	_, err := ApplyOrder(s, order)
	return err
}
