package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusforge/starforge-engine/internal/domain/market"
)

func TestNetSurplus_NegativeIsShortage(t *testing.T) {
	b := market.Balance{Production: 3, Consumption: 5}
	assert.Equal(t, -2.0, b.NetSurplus())
	assert.True(t, b.InShortage())
}

func TestShortageResources_StableSortedOrder(t *testing.T) {
	s := market.New("sector-1")
	s = s.WithBalance(market.ResourceFood, market.Balance{Production: 1, Consumption: 5})
	s = s.WithBalance(market.ResourceConsumerGoods, market.Balance{Production: 5, Consumption: 1})
	s = s.WithBalance(market.ResourceEnergy, market.Balance{Production: 1, Consumption: 9})

	shortages := s.ShortageResources()
	assert.Equal(t, []market.Resource{market.ResourceEnergy, market.ResourceFood}, shortages)
}
