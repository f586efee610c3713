// Package bag implements the secondary vault accounts. Storing moves value
// out of the wallet or collection into the bag; withdrawing moves it back.
// Bag contents never participate in the shop or the market.
package bag

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy"
)

type Service struct {
	db        economy.TxRunner
	users     repositories.UserRepository
	bags      repositories.BagRepository
	userCards repositories.UserCardRepository
}

func NewService(
	db economy.TxRunner,
	users repositories.UserRepository,
	bags repositories.BagRepository,
	userCards repositories.UserCardRepository,
) *Service {
	return &Service{
		db:        db,
		users:     users,
		bags:      bags,
		userCards: userCards,
	}
}

// View returns the bag for userID, empty when never used.
func (s *Service) View(ctx context.Context, userID string) (*models.Bag, error) {
	return s.bags.Get(ctx, userID)
}

// StoreCurrency moves amount of currency from wallet to bag.
func (s *Service) StoreCurrency(ctx context.Context, userID string, currency models.Currency, amount int64) error {
	if amount <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.Balance(currency) < amount {
			return economy.ErrInsufficientFunds
		}
		bag, err := s.bags.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		user.AddBalance(currency, -amount)
		bag.AddBalance(currency, amount)
		if err := s.users.Update(ctx, tx, user); err != nil {
			return err
		}
		return s.bags.Update(ctx, tx, bag)
	})
}

// WithdrawCurrency moves amount of currency from bag back to wallet.
func (s *Service) WithdrawCurrency(ctx context.Context, userID string, currency models.Currency, amount int64) error {
	if amount <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		bag, err := s.bags.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if bag.Balance(currency) < amount {
			return economy.ErrInsufficientFunds
		}
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		bag.AddBalance(currency, -amount)
		user.AddBalance(currency, amount)
		if err := s.bags.Update(ctx, tx, bag); err != nil {
			return err
		}
		return s.users.Update(ctx, tx, user)
	})
}

// StoreCards moves qty copies of a card from the collection into the bag.
func (s *Service) StoreCards(ctx context.Context, userID, code string, qty int64) error {
	if qty <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		owned, err := s.userCards.GetAmount(ctx, tx, userID, code)
		if err != nil {
			return err
		}
		if owned < qty {
			return economy.ErrInsufficientQuantity
		}
		bag, err := s.bags.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := s.userCards.Remove(ctx, tx, userID, code, qty); err != nil {
			return err
		}
		bag.AddCard(code, qty)
		return s.bags.Update(ctx, tx, bag)
	})
}

// WithdrawCards moves qty copies of a card from the bag back into the
// collection.
func (s *Service) WithdrawCards(ctx context.Context, userID, code string, qty int64) error {
	if qty <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		bag, err := s.bags.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if bag.CardAmount(code) < qty {
			return economy.ErrInsufficientQuantity
		}
		bag.AddCard(code, -qty)
		if err := s.bags.Update(ctx, tx, bag); err != nil {
			return err
		}
		return s.userCards.Add(ctx, tx, userID, code, qty)
	})
}
