package rewards

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

func newTestService(seed int64) (*Service, *fakes.UserStore, *fakes.UserCardStore, *fakes.StateStore) {
	users := fakes.NewUserStore()
	userCards := fakes.NewUserCardStore()
	state := fakes.NewStateStore()
	cards := fakes.NewCardStore(
		&models.Card{Code: "AAAC#001", Name: "The Fool", Rarity: models.RarityCommon},
		&models.Card{Code: "BBBR#002", Name: "The Star", Rarity: models.RarityRare},
		&models.Card{Code: "CCCE#003", Name: "The Sun", Rarity: models.RarityEpic},
	)
	s := NewService(fakes.TxRunner{}, users, cards, userCards, state, rand.New(rand.NewSource(seed)))
	return s, users, userCards, state
}

func TestDrop(t *testing.T) {
	s, users, userCards, _ := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	res, err := s.Drop(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, res.Card)
	assert.Equal(t, int64(1), res.TotalDrops)

	owned, _ := userCards.GetAmount(ctx, nil, "alice", res.Card.Code)
	assert.Equal(t, int64(1), owned)
	assert.Equal(t, at, users.Snapshot("alice").LastDrop)

	// The counter is global and reported from the same increment that the
	// claim commits.
	res, err = s.Drop(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalDrops)
}

func TestDropCooldown(t *testing.T) {
	s, _, userCards, state := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	_, err := s.Drop(ctx, "alice")
	require.NoError(t, err)

	// A second claim within the window fails with the exact remainder.
	at = at.Add(config.DropCooldown - time.Minute)
	_, err = s.Drop(ctx, "alice")
	cd, ok := economy.AsCooldown(err)
	require.True(t, ok)
	assert.Equal(t, "drop", cd.Action)
	assert.Equal(t, time.Minute, cd.Remaining)

	st, _ := state.Get(ctx)
	assert.Equal(t, int64(1), st.TotalDrops, "rejected claims do not count")
	total, _ := userCards.TotalOwned(ctx, "alice")
	assert.Equal(t, int64(1), total)

	// At the boundary the claim is ready again.
	at = at.Add(time.Minute)
	_, err = s.Drop(ctx, "alice")
	require.NoError(t, err)
}

func TestHunt(t *testing.T) {
	s, users, _, _ := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	reward, err := s.Hunt(ctx, "alice")
	require.NoError(t, err)

	u := users.Snapshot("alice")
	if reward.VitalCrystal > 0 {
		assert.Equal(t, int64(config.HuntVital), u.VitalCrystal)
		assert.Zero(t, u.LoveQuartz)
	} else {
		assert.Equal(t, int64(config.HuntQuartz), u.LoveQuartz)
		assert.Zero(t, u.VitalCrystal)
	}
	assert.Equal(t, at, u.LastHunt)

	_, err = s.Hunt(ctx, "alice")
	cd, ok := economy.AsCooldown(err)
	require.True(t, ok)
	assert.Equal(t, "hunt", cd.Action)
}

func TestDaily(t *testing.T) {
	s, users, userCards, _ := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	res, err := s.Daily(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(config.DailyQuartz), res.LoveQuartz)
	require.NotNil(t, res.Card)

	u := users.Snapshot("alice")
	assert.Equal(t, int64(config.DailyQuartz), u.LoveQuartz)
	assert.Equal(t, at, u.LastDaily)
	total, _ := userCards.TotalOwned(ctx, "alice")
	assert.Equal(t, int64(1), total)
}

func TestWeekly(t *testing.T) {
	s, users, userCards, _ := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	res, err := s.Weekly(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(config.WeeklyQuartz), res.LoveQuartz)
	assert.Equal(t, int64(config.WeeklyVital), res.VitalCrystal)
	require.NotNil(t, res.Card)
	assert.Equal(t, models.RarityEpic, res.Card.Rarity, "the weekly card comes from the epic pool")

	u := users.Snapshot("alice")
	assert.Equal(t, int64(config.WeeklyQuartz), u.LoveQuartz)
	assert.Equal(t, int64(config.WeeklyVital), u.VitalCrystal)
	assert.Equal(t, at, u.LastWeekly)
	owned, _ := userCards.GetAmount(ctx, nil, "alice", res.Card.Code)
	assert.Equal(t, int64(1), owned)
}

func TestCooldowns(t *testing.T) {
	s, users, _, _ := newTestService(1)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	users.Seed(models.User{
		DiscordID: "alice",
		LastDrop:  at.Add(-time.Minute),
		LastHunt:  at.Add(-config.HuntCooldown),
	})

	got, err := s.Cooldowns(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.False(t, got["drop"].Ready)
	assert.Equal(t, config.DropCooldown-time.Minute, got["drop"].Remaining)
	assert.True(t, got["hunt"].Ready)
	assert.True(t, got["daily"].Ready, "never claimed means ready")
	assert.True(t, got["weekly"].Ready)
}
