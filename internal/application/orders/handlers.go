package orders

import (
	"context"

	"github.com/nexusforge/starforge-engine/internal/application/mediator"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// Result is the mediator Response every order handler returns: the state
// after applying the order, or the error it was rejected with.
type Result struct {
	State state.GameState
	Err   error
}

// Register binds every order command type to a handler reading the current
// state from get and applying the dispatched order against it — the
// teacher's command-handler pattern (gobot/internal/application/contract/
// commands), adapted for a pure-state engine instead of a repository.
func Register(m *mediator.Mediator, get func() state.GameState) {
	register(m, AcceptPlanetCommand{}, get)
	register(m, RejectPlanetCommand{}, get)
	register(m, InvestPlanetCommand{}, get)
	register(m, CreateContractCommand{}, get)
	register(m, CreateTradeRouteCommand{}, get)
	register(m, CancelTradeRouteCommand{}, get)
	register(m, CreateMissionCommand{}, get)
}

func register(m *mediator.Mediator, requestType mediator.Request, get func() state.GameState) {
	m.Register(requestType, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		next, err := ApplyOrder(get(), request)
		if err != nil {
			return Result{Err: err}, nil
		}
		return Result{State: next}, nil
	})
}
