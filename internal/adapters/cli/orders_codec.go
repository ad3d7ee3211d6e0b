package cli

import (
	"encoding/json"
	"fmt"

	"github.com/nexusforge/starforge-engine/internal/application/orders"
)

// OrderEnvelope is one entry in a JSON order batch: a discriminator naming
// which orders.*Command variant params decodes into.
type OrderEnvelope struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params"`
}

// OrderBatch is the top-level shape of a turnctl orders file.
type OrderBatch struct {
	Orders []OrderEnvelope `json:"orders"`
}

// DecodeOrders turns a JSON order batch into the pendingOrders slice
// turn.ResolveTurn expects, dispatching on each envelope's Type the same
// way the mediator's registry dispatches on a Go type at runtime.
func DecodeOrders(raw []byte) ([]interface{}, error) {
	var batch OrderBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("cli: failed to parse order batch: %w", err)
	}

	pending := make([]interface{}, 0, len(batch.Orders))
	for i, env := range batch.Orders {
		order, err := decodeOrder(env)
		if err != nil {
			return nil, fmt.Errorf("cli: order %d (%s): %w", i, env.Type, err)
		}
		pending = append(pending, order)
	}
	return pending, nil
}

func decodeOrder(env OrderEnvelope) (interface{}, error) {
	switch env.Type {
	case "AcceptPlanet":
		var cmd orders.AcceptPlanetCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "RejectPlanet":
		var cmd orders.RejectPlanetCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "InvestPlanet":
		var cmd orders.InvestPlanetCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "CreateContract":
		var cmd orders.CreateContractCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "CreateTradeRoute":
		var cmd orders.CreateTradeRouteCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "CancelTradeRoute":
		var cmd orders.CancelTradeRouteCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	case "CreateMission":
		var cmd orders.CreateMissionCommand
		err := json.Unmarshal(env.Params, &cmd)
		return cmd, err
	default:
		return nil, fmt.Errorf("unknown order type %q", env.Type)
	}
}
