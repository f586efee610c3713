// Package shop implements the rotating card shop. The listing regenerates
// lazily once its rotation window has elapsed; concurrent viewers share a
// single regeneration through singleflight.
package shop

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/uptrace/bun"
	"golang.org/x/sync/singleflight"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy"
)

type Service struct {
	db        economy.TxRunner
	cards     repositories.CardRepository
	users     repositories.UserRepository
	userCards repositories.UserCardRepository
	shop      repositories.ShopRepository

	regen singleflight.Group
	rng   *rand.Rand
	now   func() time.Time
}

func NewService(
	db economy.TxRunner,
	cards repositories.CardRepository,
	users repositories.UserRepository,
	userCards repositories.UserCardRepository,
	shop repositories.ShopRepository,
	rng *rand.Rand,
) *Service {
	return &Service{
		db:        db,
		cards:     cards,
		users:     users,
		userCards: userCards,
		shop:      shop,
		rng:       rng,
		now:       time.Now,
	}
}

// Current returns the active shop listing, regenerating it first when the
// rotation window has elapsed.
func (s *Service) Current(ctx context.Context) (*models.ShopState, error) {
	state, err := s.shop.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.now().Sub(state.LastUpdate) <= config.ShopRotation {
		return state, nil
	}

	v, err, _ := s.regen.Do("rotate", func() (interface{}, error) {
		// Re-check under the flight; a concurrent caller may have rotated
		// while this one waited.
		state, err := s.shop.Get(ctx)
		if err != nil {
			return nil, err
		}
		if s.now().Sub(state.LastUpdate) <= config.ShopRotation {
			return state, nil
		}
		return s.rotate(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.ShopState), nil
}

func (s *Service) rotate(ctx context.Context) (*models.ShopState, error) {
	items := make([]models.ShopItem, 0, config.ShopEpicSlots+config.ShopRareSlots+config.ShopCommonSlots)
	fill := func(rarity string, slots int, price int64, currency models.Currency) error {
		pool, err := s.cards.GetByRarity(ctx, rarity)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			return nil
		}
		for i := 0; i < slots; i++ {
			card := pool[s.rng.Intn(len(pool))]
			items = append(items, models.ShopItem{
				Code:     card.Code,
				Rarity:   rarity,
				Price:    price,
				Currency: currency,
			})
		}
		return nil
	}

	if err := fill(models.RarityEpic, config.ShopEpicSlots, config.ShopEpicPrice, models.CurrencyVital); err != nil {
		return nil, err
	}
	if err := fill(models.RarityRare, config.ShopRareSlots, config.ShopRarePrice, models.CurrencyLove); err != nil {
		return nil, err
	}
	if err := fill(models.RarityCommon, config.ShopCommonSlots, config.ShopCommonPrice, models.CurrencyLove); err != nil {
		return nil, err
	}

	state := &models.ShopState{
		LastUpdate: s.now(),
		Items:      items,
	}
	if err := s.shop.Save(ctx, state); err != nil {
		return nil, err
	}
	slog.Info("Shop rotated",
		slog.String("type", "sys"),
		slog.Int("items", len(items)))
	return state, nil
}

// Buy purchases the shop slot at index (1-based) for userID. The slot stays
// listed afterwards.
func (s *Service) Buy(ctx context.Context, userID string, index int) (*models.ShopItem, error) {
	state, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(state.Items) {
		return nil, economy.ErrInvalidSelection
	}
	item := state.Items[index-1]

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.Balance(item.Currency) < item.Price {
			return economy.ErrInsufficientFunds
		}
		user.AddBalance(item.Currency, -item.Price)
		if err := s.users.Update(ctx, tx, user); err != nil {
			return err
		}
		return s.userCards.Add(ctx, tx, userID, item.Code, 1)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
