package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/database/repositories/fakes"
	"github.com/lovequartz/irene/irene/economy"
)

func newTestService() (*Service, *fakes.UserStore, *fakes.UserCardStore) {
	users := fakes.NewUserStore()
	userCards := fakes.NewUserCardStore()
	cards := fakes.NewCardStore(
		&models.Card{Code: "AAAC#001", Name: "The Fool", Rarity: models.RarityCommon},
		&models.Card{Code: "DDDE#004", Name: "The World", Rarity: models.RarityEpic},
	)
	return NewService(fakes.TxRunner{}, cards, users, userCards, fakes.NewMarketStore()), users, userCards
}

func TestAddDebitsCollection(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 5)

	require.NoError(t, s.Add(ctx, "alice", "aaac#001", 3, 100, models.CurrencyLove))

	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(2), owned, "listed copies leave the collection")

	items, err := s.View(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AAAC#001", items[0].CardCode)
	assert.Equal(t, int64(3), items[0].Quantity)
}

func TestAddMergesIdenticalListings(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 10)

	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 2, 100, models.CurrencyLove))
	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 3, 100, models.CurrencyLove))
	// Different price opens a separate entry.
	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 1, 200, models.CurrencyLove))
	// Different currency opens a separate entry too.
	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 1, 100, models.CurrencyVital))

	items, err := s.View(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(5), items[0].Quantity, "same code, price and currency merge")
}

func TestAddValidation(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 1)

	assert.ErrorIs(t, s.Add(ctx, "alice", "NOPE#000", 1, 100, models.CurrencyLove), repositories.ErrCardNotFound)
	assert.ErrorIs(t, s.Add(ctx, "alice", "AAAC#001", 2, 100, models.CurrencyLove), economy.ErrInsufficientQuantity)
	assert.ErrorIs(t, s.Add(ctx, "alice", "AAAC#001", 0, 100, models.CurrencyLove), economy.ErrInvalidAmount)
	assert.ErrorIs(t, s.Add(ctx, "alice", "AAAC#001", 1, 0, models.CurrencyLove), economy.ErrInvalidAmount)

	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(1), owned, "failed listings must not debit")
}

func TestRemoveReturnsCards(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 4)
	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 4, 100, models.CurrencyLove))

	_, err := s.Remove(ctx, "alice", 2)
	assert.ErrorIs(t, err, economy.ErrInvalidSelection)

	item, err := s.Remove(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), item.Quantity)

	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(4), owned, "delisting returns the full quantity")

	items, err := s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBuyTransfersAndDeletes(t *testing.T) {
	s, users, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "DDDE#004", 2)
	users.Seed(models.User{DiscordID: "bob", LoveQuartz: 1000})
	require.NoError(t, s.Add(ctx, "alice", "DDDE#004", 2, 400, models.CurrencyLove))

	item, err := s.Buy(ctx, "bob", "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, "DDDE#004", item.CardCode)

	// Currency moved buyer to seller.
	assert.Equal(t, int64(600), users.Snapshot("bob").LoveQuartz)
	assert.Equal(t, int64(400), users.Snapshot("alice").LoveQuartz)

	// The full quantity reached the buyer; the seller was debited at listing
	// time, so nothing else changes on their side.
	bobOwned, _ := userCards.GetAmount(ctx, nil, "bob", "DDDE#004")
	aliceOwned, _ := userCards.GetAmount(ctx, nil, "alice", "DDDE#004")
	assert.Equal(t, int64(2), bobOwned)
	assert.Zero(t, aliceOwned)

	items, err := s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items, "a sold entry is deleted")
}

func TestBuyRejections(t *testing.T) {
	s, users, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 1)
	users.Seed(models.User{DiscordID: "bob", LoveQuartz: 10})
	require.NoError(t, s.Add(ctx, "alice", "AAAC#001", 1, 100, models.CurrencyLove))

	_, err := s.Buy(ctx, "alice", "alice", 1)
	assert.ErrorIs(t, err, economy.ErrSelfTarget)

	_, err = s.Buy(ctx, "bob", "alice", 5)
	assert.ErrorIs(t, err, economy.ErrInvalidSelection)

	_, err = s.Buy(ctx, "bob", "alice", 1)
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
	assert.Equal(t, int64(10), users.Snapshot("bob").LoveQuartz, "failed buy must not charge")

	items, err := s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed buy keeps the listing")
}
