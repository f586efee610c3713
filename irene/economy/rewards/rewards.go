// Package rewards implements the timed reward claims: drop, hunt, daily and
// weekly. Each claim checks its cooldown, resolves the payout and advances
// the cooldown timestamp inside one transaction.
package rewards

import (
	"context"
	"math/rand"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy"
)

type Service struct {
	db        economy.TxRunner
	users     repositories.UserRepository
	cards     repositories.CardRepository
	userCards repositories.UserCardRepository
	state     repositories.StateRepository

	rng *rand.Rand
	now func() time.Time
}

func NewService(
	db economy.TxRunner,
	users repositories.UserRepository,
	cards repositories.CardRepository,
	userCards repositories.UserCardRepository,
	state repositories.StateRepository,
	rng *rand.Rand,
) *Service {
	return &Service{
		db:        db,
		users:     users,
		cards:     cards,
		userCards: userCards,
		state:     state,
		rng:       rng,
		now:       time.Now,
	}
}

// DropResult is the outcome of a successful drop claim.
type DropResult struct {
	Card       *models.Card
	TotalDrops int64
}

// Drop claims one card from the rarity table. Returns CooldownError while
// the drop cooldown is running.
func (s *Service) Drop(ctx context.Context, userID string) (*DropResult, error) {
	catalog, err := s.cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var result DropResult
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		if st := economy.CheckCooldown(user.LastDrop, config.DropCooldown, now); !st.Ready {
			return &economy.CooldownError{Action: "drop", Remaining: st.Remaining}
		}

		card := economy.PickDrop(catalog, s.rng)
		if card == nil {
			return economy.ErrEmptyCatalog
		}
		if err := s.userCards.Add(ctx, tx, userID, card.Code, 1); err != nil {
			return err
		}
		user.LastDrop = now
		if err := s.users.Update(ctx, tx, user); err != nil {
			return err
		}
		total, err := s.state.IncrementDrops(ctx, tx)
		if err != nil {
			return err
		}
		result.Card = card
		result.TotalDrops = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Hunt claims the hunt reward: a 25% chance of Vital Crystals, otherwise
// Love Quartz.
func (s *Service) Hunt(ctx context.Context, userID string) (*economy.HuntReward, error) {
	var reward economy.HuntReward
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		if st := economy.CheckCooldown(user.LastHunt, config.HuntCooldown, now); !st.Ready {
			return &economy.CooldownError{Action: "hunt", Remaining: st.Remaining}
		}

		reward = economy.RollHunt(s.rng)
		user.LoveQuartz += reward.LoveQuartz
		user.VitalCrystal += reward.VitalCrystal
		user.LastHunt = now
		return s.users.Update(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// ClaimResult is the outcome of a daily or weekly claim.
type ClaimResult struct {
	LoveQuartz   int64
	VitalCrystal int64
	Card         *models.Card
}

// Daily claims the 24-hour reward: Love Quartz plus one random card.
func (s *Service) Daily(ctx context.Context, userID string) (*ClaimResult, error) {
	catalog, err := s.cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var result ClaimResult
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		if st := economy.CheckCooldown(user.LastDaily, config.DailyCooldown, now); !st.Ready {
			return &economy.CooldownError{Action: "daily", Remaining: st.Remaining}
		}

		card := economy.PickDaily(catalog, s.rng)
		if card == nil {
			return economy.ErrEmptyCatalog
		}
		if err := s.userCards.Add(ctx, tx, userID, card.Code, 1); err != nil {
			return err
		}
		user.LoveQuartz += config.DailyQuartz
		user.LastDaily = now
		if err := s.users.Update(ctx, tx, user); err != nil {
			return err
		}
		result = ClaimResult{LoveQuartz: config.DailyQuartz, Card: card}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Weekly claims the 7-day reward: Love Quartz, one Vital Crystal and one
// epic card.
func (s *Service) Weekly(ctx context.Context, userID string) (*ClaimResult, error) {
	catalog, err := s.cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var result ClaimResult
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		if st := economy.CheckCooldown(user.LastWeekly, config.WeeklyCooldown, now); !st.Ready {
			return &economy.CooldownError{Action: "weekly", Remaining: st.Remaining}
		}

		card := economy.PickWeekly(catalog, s.rng)
		if card == nil {
			return economy.ErrEmptyCatalog
		}
		if err := s.userCards.Add(ctx, tx, userID, card.Code, 1); err != nil {
			return err
		}
		user.LoveQuartz += config.WeeklyQuartz
		user.VitalCrystal += config.WeeklyVital
		user.LastWeekly = now
		if err := s.users.Update(ctx, tx, user); err != nil {
			return err
		}
		result = ClaimResult{
			LoveQuartz:   config.WeeklyQuartz,
			VitalCrystal: config.WeeklyVital,
			Card:         card,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Cooldowns reports the current status of all four timed claims.
func (s *Service) Cooldowns(ctx context.Context, userID string) (map[string]economy.CooldownStatus, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return map[string]economy.CooldownStatus{
		"drop":   economy.CheckCooldown(user.LastDrop, config.DropCooldown, now),
		"hunt":   economy.CheckCooldown(user.LastHunt, config.HuntCooldown, now),
		"daily":  economy.CheckCooldown(user.LastDaily, config.DailyCooldown, now),
		"weekly": economy.CheckCooldown(user.LastWeekly, config.WeeklyCooldown, now),
	}, nil
}
