package economy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
)

func testCatalog() []*models.Card {
	return []*models.Card{
		{Code: "AAAC#001", Name: "The Fool", Rarity: models.RarityCommon},
		{Code: "BBBC#002", Name: "The Star", Rarity: models.RarityCommon},
		{Code: "CCCR#003", Name: "The Moon", Rarity: models.RarityRare},
		{Code: "DDDE#004", Name: "The World", Rarity: models.RarityEpic},
	}
}

func TestPickDropEmptyCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, PickDrop(nil, rng))
}

func TestDropPoolBoundaries(t *testing.T) {
	catalog := testCatalog()
	tests := []struct {
		roll float64
		want string
	}{
		{0, models.RarityCommon},
		{49.999, models.RarityCommon},
		{50, models.RarityRare},
		{79.999, models.RarityRare},
		{80, models.RarityEpic},
		{99.999, models.RarityEpic},
	}
	for _, tt := range tests {
		pool := dropPool(catalog, tt.roll)
		require.NotEmpty(t, pool, "roll %v", tt.roll)
		for _, card := range pool {
			assert.Equal(t, tt.want, models.NormalizeRarity(card.Rarity), "roll %v", tt.roll)
		}
	}
}

func TestPickDropDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog := testCatalog()

	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		card := PickDrop(catalog, rng)
		require.NotNil(t, card)
		counts[models.NormalizeRarity(card.Rarity)]++
	}

	// Expect roughly 50/30/20 with a generous tolerance.
	assert.InDelta(t, 0.50, float64(counts[models.RarityCommon])/draws, 0.05)
	assert.InDelta(t, 0.30, float64(counts[models.RarityRare])/draws, 0.05)
	assert.InDelta(t, 0.20, float64(counts[models.RarityEpic])/draws, 0.05)
}

func TestPickDropEmptyTierFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	commonsOnly := []*models.Card{
		{Code: "AAAC#001", Rarity: models.RarityCommon},
		{Code: "BBBC#002", Rarity: models.RarityCommon},
	}
	for i := 0; i < 1000; i++ {
		card := PickDrop(commonsOnly, rng)
		require.NotNil(t, card)
		assert.Equal(t, models.RarityCommon, models.NormalizeRarity(card.Rarity))
	}
}

func TestPickWeeklyPrefersEpics(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	catalog := testCatalog()
	for i := 0; i < 500; i++ {
		card := PickWeekly(catalog, rng)
		require.NotNil(t, card)
		assert.Equal(t, models.RarityEpic, models.NormalizeRarity(card.Rarity))
	}
}

func TestPickWeeklyFallsBackWithoutEpics(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	commonsOnly := []*models.Card{{Code: "AAAC#001", Rarity: models.RarityCommon}}
	card := PickWeekly(commonsOnly, rng)
	require.NotNil(t, card)
	assert.Equal(t, "AAAC#001", card.Code)
}

func TestPickDaily(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	catalog := testCatalog()

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		card := PickDaily(catalog, rng)
		require.NotNil(t, card)
		seen[card.Code] = true
	}
	// Uniform over the whole catalog reaches every card.
	assert.Len(t, seen, len(catalog))

	assert.Nil(t, PickDaily(nil, rng))
}

func TestRollHunt(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	vital := 0
	const rolls = 20000
	for i := 0; i < rolls; i++ {
		reward := RollHunt(rng)
		if reward.VitalCrystal > 0 {
			vital++
			assert.Equal(t, int64(config.HuntVital), reward.VitalCrystal)
			assert.Zero(t, reward.LoveQuartz)
		} else {
			assert.Equal(t, int64(config.HuntQuartz), reward.LoveQuartz)
			assert.Zero(t, reward.VitalCrystal)
		}
	}
	assert.InDelta(t, config.HuntVitalChance, float64(vital)/rolls, 0.03)
}
