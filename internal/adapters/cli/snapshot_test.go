package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/adapters/cli"
	"github.com/nexusforge/starforge-engine/internal/application/initialstate"
	"github.com/nexusforge/starforge-engine/internal/application/turn"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/infrastructure/config"
)

func TestSnapshotRoundTrip_PreservesInitialState(t *testing.T) {
	cfg := config.Defaults()
	s := initialstate.Create(cfg)

	doc := cli.ToSnapshot(s)
	raw, err := json.Marshal(doc)
	assert.Nil(t, err)

	var decoded cli.StateDocument
	assert.Nil(t, json.Unmarshal(raw, &decoded))

	restored := cli.FromSnapshot(decoded)
	assert.Equal(t, s.Turn, restored.Turn)
	assert.Equal(t, s.CurrentBP, restored.CurrentBP)
	assert.Len(t, restored.Planets, len(s.Planets))
	assert.Len(t, restored.Colonies, len(s.Colonies))
	assert.Len(t, restored.Corporations, len(s.Corporations))

	for id, corp := range s.Corporations {
		assert.Equal(t, corp.Name(), restored.Corporations[id].Name())
		assert.Equal(t, corp.HomePlanetID(), restored.Corporations[id].HomePlanetID())
	}
}

func TestSnapshotRoundTrip_SurvivesTurnResolution(t *testing.T) {
	cfg := config.Defaults()
	s := initialstate.Create(cfg)

	doc := cli.ToSnapshot(s)
	raw, err := json.Marshal(doc)
	assert.Nil(t, err)

	var decoded cli.StateDocument
	assert.Nil(t, json.Unmarshal(raw, &decoded))
	restored := cli.FromSnapshot(decoded)

	next, _, domainErr := turn.ResolveTurn(restored, nil, shared.Seeded(5), shared.NoOpLogger{}, nil)
	assert.Nil(t, domainErr)
	assert.Equal(t, 1, next.Turn)
}

func TestDecodeOrders_ParsesAcceptPlanet(t *testing.T) {
	raw := []byte(`{"orders":[{"type":"AcceptPlanet","params":{"PlanetID":"planet-1"}}]}`)
	pending, err := cli.DecodeOrders(raw)
	assert.Nil(t, err)
	assert.Len(t, pending, 1)
}

func TestDecodeOrders_UnknownTypeFails(t *testing.T) {
	raw := []byte(`{"orders":[{"type":"NotARealOrder","params":{}}]}`)
	_, err := cli.DecodeOrders(raw)
	assert.NotNil(t, err)
}
