package ledger

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
	return NewService(fakes.TxRunner{}, users, cards, userCards), users, userCards
}

func TestAddCards(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()

	require.NoError(t, s.AddCards(ctx, "alice", "aaac#001", 3))
	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(3), owned)

	assert.ErrorIs(t, s.AddCards(ctx, "alice", "NOPE#000", 1), repositories.ErrCardNotFound)
	assert.ErrorIs(t, s.AddCards(ctx, "alice", "AAAC#001", 0), economy.ErrInvalidAmount)
}

func TestRemoveCards(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "AAAC#001", 2)

	assert.ErrorIs(t, s.RemoveCards(ctx, "alice", "AAAC#001", 5), economy.ErrInsufficientQuantity)
	owned, _ := userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Equal(t, int64(2), owned, "failed removal must not change the count")

	require.NoError(t, s.RemoveCards(ctx, "alice", "AAAC#001", 2))
	owned, _ = userCards.GetAmount(ctx, nil, "alice", "AAAC#001")
	assert.Zero(t, owned)
}

func TestTransferCards(t *testing.T) {
	s, _, userCards := newTestService()
	ctx := context.Background()
	userCards.Seed("alice", "DDDE#004", 4)

	assert.ErrorIs(t, s.TransferCards(ctx, "alice", "alice", "DDDE#004", 1), economy.ErrSelfTarget)
	assert.ErrorIs(t, s.TransferCards(ctx, "alice", "bob", "DDDE#004", 9), economy.ErrInsufficientQuantity)

	require.NoError(t, s.TransferCards(ctx, "alice", "bob", "DDDE#004", 3))

	aliceOwned, _ := userCards.GetAmount(ctx, nil, "alice", "DDDE#004")
	bobOwned, _ := userCards.GetAmount(ctx, nil, "bob", "DDDE#004")
	assert.Equal(t, int64(1), aliceOwned)
	assert.Equal(t, int64(3), bobOwned)
	assert.Equal(t, int64(4), aliceOwned+bobOwned, "transfer conserves total copies")
}

func TestCreditAndDebit(t *testing.T) {
	s, users, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, s.Credit(ctx, "alice", models.CurrencyLove, 500))
	require.NoError(t, s.Credit(ctx, "alice", models.CurrencyVital, 2))
	u := users.Snapshot("alice")
	assert.Equal(t, int64(500), u.LoveQuartz)
	assert.Equal(t, int64(2), u.VitalCrystal)

	assert.ErrorIs(t, s.Debit(ctx, "alice", models.CurrencyLove, 501), economy.ErrInsufficientFunds)
	u = users.Snapshot("alice")
	assert.Equal(t, int64(500), u.LoveQuartz, "failed debit must not change the balance")

	require.NoError(t, s.Debit(ctx, "alice", models.CurrencyLove, 500))
	assert.Zero(t, users.Snapshot("alice").LoveQuartz)

	assert.ErrorIs(t, s.Credit(ctx, "alice", models.CurrencyLove, -1), economy.ErrInvalidAmount)
	assert.ErrorIs(t, s.Debit(ctx, "alice", models.CurrencyLove, 0), economy.ErrInvalidAmount)
}

func TestPay(t *testing.T) {
	s, users, _ := newTestService()
	ctx := context.Background()
	users.Seed(models.User{DiscordID: "alice", LoveQuartz: 1000})

	assert.ErrorIs(t, s.Pay(ctx, "alice", "alice", 100), economy.ErrSelfTarget)
	assert.ErrorIs(t, s.Pay(ctx, "alice", "bob", 2000), economy.ErrInsufficientFunds)
	assert.Equal(t, int64(1000), users.Snapshot("alice").LoveQuartz)
	assert.Zero(t, users.Snapshot("bob").LoveQuartz)

	require.NoError(t, s.Pay(ctx, "alice", "bob", 300))
	alice := users.Snapshot("alice")
	bob := users.Snapshot("bob")
	assert.Equal(t, int64(700), alice.LoveQuartz)
	assert.Equal(t, int64(300), bob.LoveQuartz)
	assert.Equal(t, int64(1000), alice.LoveQuartz+bob.LoveQuartz, "payment conserves the total")
}
