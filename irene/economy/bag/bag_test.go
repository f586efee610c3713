package bag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories/fakes"
	"github.com/lovequartz/irene/irene/economy"
)

func newTestService() (*Service, *fakes.UserStore, *fakes.BagStore, *fakes.UserCardStore) {
	users := fakes.NewUserStore()
	bags := fakes.NewBagStore()
	userCards := fakes.NewUserCardStore()
	return NewService(fakes.TxRunner{}, users, bags, userCards), users, bags, userCards
}

func TestStoreAndWithdrawCurrencyRoundTrip(t *testing.T) {
	s, users, _, _ := newTestService()
	ctx := context.Background()
	users.Seed(models.User{DiscordID: "alice", LoveQuartz: 1000, VitalCrystal: 5})

	require.NoError(t, s.StoreCurrency(ctx, "alice", models.CurrencyLove, 400))
	require.NoError(t, s.StoreCurrency(ctx, "alice", models.CurrencyVital, 2))

	u := users.Snapshot("alice")
	assert.Equal(t, int64(600), u.LoveQuartz)
	assert.Equal(t, int64(3), u.VitalCrystal)

	bagRec, err := s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(400), bagRec.LoveQuartz)
	assert.Equal(t, int64(2), bagRec.VitalCrystal)

	require.NoError(t, s.WithdrawCurrency(ctx, "alice", models.CurrencyLove, 400))
	require.NoError(t, s.WithdrawCurrency(ctx, "alice", models.CurrencyVital, 2))

	u = users.Snapshot("alice")
	assert.Equal(t, int64(1000), u.LoveQuartz, "round trip restores the wallet")
	assert.Equal(t, int64(5), u.VitalCrystal)

	bagRec, err = s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, bagRec.LoveQuartz)
	assert.Zero(t, bagRec.VitalCrystal)
}

func TestStoreCurrencyInsufficient(t *testing.T) {
	s, users, _, _ := newTestService()
	ctx := context.Background()
	users.Seed(models.User{DiscordID: "alice", LoveQuartz: 100})

	assert.ErrorIs(t, s.StoreCurrency(ctx, "alice", models.CurrencyLove, 101), economy.ErrInsufficientFunds)
	assert.Equal(t, int64(100), users.Snapshot("alice").LoveQuartz)

	assert.ErrorIs(t, s.WithdrawCurrency(ctx, "alice", models.CurrencyLove, 1), economy.ErrInsufficientFunds)
	assert.ErrorIs(t, s.StoreCurrency(ctx, "alice", models.CurrencyLove, 0), economy.ErrInvalidAmount)
}

func TestStoreAndWithdrawCardsRoundTrip(t *testing.T) {
	s, _, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 3)

	require.NoError(t, s.StoreCards(ctx, "alice", "AAAC#001", 2))

	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(1), owned)

	bagRec, err := s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bagRec.CardAmount("AAAC#001"))

	require.NoError(t, s.WithdrawCards(ctx, "alice", "AAAC#001", 2))

	owned, _ = userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(3), owned, "round trip restores the collection")

	bagRec, err = s.View(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, bagRec.CardAmount("AAAC#001"))
}

func TestStoreCardsInsufficient(t *testing.T) {
	s, _, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 1)

	assert.ErrorIs(t, s.StoreCards(ctx, "alice", "AAAC#001", 2), economy.ErrInsufficientQuantity)
	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(1), owned)

	assert.ErrorIs(t, s.WithdrawCards(ctx, "alice", "AAAC#001", 1), economy.ErrInsufficientQuantity)
}
