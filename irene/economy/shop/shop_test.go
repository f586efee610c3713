package shop

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories/fakes"
	"github.com/lovequartz/irene/irene/economy"
)

func newTestService() (*Service, *fakes.UserStore, *fakes.UserCardStore) {
	users := fakes.NewUserStore()
	userCards := fakes.NewUserCardStore()
	cards := fakes.NewCardStore(
		&models.Card{Code: "AAAC#001", Name: "The Fool", Rarity: models.RarityCommon},
		&models.Card{Code: "BBBC#002", Name: "The Star", Rarity: models.RarityCommon},
		&models.Card{Code: "CCCR#003", Name: "The Moon", Rarity: models.RarityRare},
		&models.Card{Code: "DDDE#004", Name: "The World", Rarity: models.RarityEpic},
	)
	s := NewService(fakes.TxRunner{}, cards, users, userCards, fakes.NewShopStore(), rand.New(rand.NewSource(1)))
	return s, users, userCards
}

func TestCurrentRegeneratesWhenStale(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	state, err := s.Current(ctx)
	require.NoError(t, err)
	require.Len(t, state.Items, config.ShopEpicSlots+config.ShopRareSlots+config.ShopCommonSlots)
	assert.Equal(t, now, state.LastUpdate)

	var epics, rares, commons int
	for _, item := range state.Items {
		switch item.Rarity {
		case models.RarityEpic:
			epics++
			assert.Equal(t, int64(config.ShopEpicPrice), item.Price)
			assert.Equal(t, models.CurrencyVital, item.Currency)
		case models.RarityRare:
			rares++
			assert.Equal(t, int64(config.ShopRarePrice), item.Price)
			assert.Equal(t, models.CurrencyLove, item.Currency)
		case models.RarityCommon:
			commons++
			assert.Equal(t, int64(config.ShopCommonPrice), item.Price)
			assert.Equal(t, models.CurrencyLove, item.Currency)
		}
	}
	assert.Equal(t, config.ShopEpicSlots, epics)
	assert.Equal(t, config.ShopRareSlots, rares)
	assert.Equal(t, config.ShopCommonSlots, commons)
}

func TestCurrentStableWithinWindow(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first, err := s.Current(ctx)
	require.NoError(t, err)

	// Within the rotation window the listing must not change.
	now = now.Add(config.ShopRotation - time.Minute)
	second, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.LastUpdate, second.LastUpdate)

	// Past the window it regenerates.
	now = now.Add(2 * time.Minute)
	third, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, third.LastUpdate)
}

func TestBuy(t *testing.T) {
	s, users, userCards := newTestService()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	state, err := s.Current(ctx)
	require.NoError(t, err)
	users.Seed(models.User{DiscordID: "alice", LoveQuartz: 100000, VitalCrystal: 10})

	item, err := s.Buy(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, state.Items[0].Code, item.Code)

	owned, _ := userCards.GetAmount(ctx, nil, "alice", item.Code)
	assert.Equal(t, int64(1), owned)

	u := users.Snapshot("alice")
	start := map[models.Currency]int64{models.CurrencyLove: 100000, models.CurrencyVital: 10}
	assert.Equal(t, start[item.Currency]-item.Price, u.Balance(item.Currency))
	other := otherCurrency(item.Currency)
	assert.Equal(t, start[other], u.Balance(other), "only the matching currency is charged")

	// Purchases do not deplete the listing.
	after, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Items, after.Items)
}

func TestBuyInvalidIndex(t *testing.T) {
	s, users, _ := newTestService()
	ctx := context.Background()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	users.Seed(models.User{DiscordID: "alice", LoveQuartz: 100000})

	_, err := s.Buy(ctx, "alice", 0)
	assert.ErrorIs(t, err, economy.ErrInvalidSelection)
	_, err = s.Buy(ctx, "alice", 99)
	assert.ErrorIs(t, err, economy.ErrInvalidSelection)
	assert.Equal(t, int64(100000), users.Snapshot("alice").LoveQuartz, "failed buy must not charge")
}

func TestBuyInsufficientFunds(t *testing.T) {
	s, users, userCards := newTestService()
	ctx := context.Background()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	users.Seed(models.User{DiscordID: "poor"})

	_, err := s.Buy(ctx, "poor", 1)
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)

	total, _ := userCards.TotalOwned(ctx, "poor")
	assert.Zero(t, total)
}

func otherCurrency(c models.Currency) models.Currency {
	if c == models.CurrencyLove {
		return models.CurrencyVital
	}
	return models.CurrencyLove
}
