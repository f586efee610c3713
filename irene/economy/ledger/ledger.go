// Package ledger moves currency and cards between accounts. Every mutation
// runs inside a single transaction so concurrent commands cannot observe or
// produce partial transfers.
package ledger

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy"
)

type Service struct {
	db        economy.TxRunner
	users     repositories.UserRepository
	cards     repositories.CardRepository
	userCards repositories.UserCardRepository
}

func NewService(
	db economy.TxRunner,
	users repositories.UserRepository,
	cards repositories.CardRepository,
	userCards repositories.UserCardRepository,
) *Service {
	return &Service{
		db:        db,
		users:     users,
		cards:     cards,
		userCards: userCards,
	}
}

// AddCards credits qty copies of a card to userID. The card must exist in
// the catalog.
func (s *Service) AddCards(ctx context.Context, userID, code string, qty int64) error {
	if qty <= 0 {
		return economy.ErrInvalidAmount
	}
	if _, err := s.cards.GetByCode(ctx, code); err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := s.users.GetOrCreate(ctx, tx, userID); err != nil {
			return err
		}
		return s.userCards.Add(ctx, tx, userID, code, qty)
	})
}

// RemoveCards debits qty copies of a card from userID, failing with
// ErrInsufficientQuantity when the user owns fewer.
func (s *Service) RemoveCards(ctx context.Context, userID, code string, qty int64) error {
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
		return s.userCards.Remove(ctx, tx, userID, code, qty)
	})
}

// TransferCards moves qty copies of a card from one user to another as one
// atomic step.
func (s *Service) TransferCards(ctx context.Context, fromID, toID, code string, qty int64) error {
	if fromID == toID {
		return economy.ErrSelfTarget
	}
	if qty <= 0 {
		return economy.ErrInvalidAmount
	}
	if _, err := s.cards.GetByCode(ctx, code); err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		owned, err := s.userCards.GetAmount(ctx, tx, fromID, code)
		if err != nil {
			return err
		}
		if owned < qty {
			return economy.ErrInsufficientQuantity
		}
		if err := s.userCards.Remove(ctx, tx, fromID, code, qty); err != nil {
			return err
		}
		if _, err := s.users.GetOrCreate(ctx, tx, toID); err != nil {
			return err
		}
		if err := s.userCards.Add(ctx, tx, toID, code, qty); err != nil {
			return err
		}
		slog.Info("Cards transferred",
			slog.String("type", "cmd"),
			slog.String("from", fromID),
			slog.String("to", toID),
			slog.String("code", code),
			slog.Int64("qty", qty))
		return nil
	})
}

// Credit adds amount of currency to userID's balance.
func (s *Service) Credit(ctx context.Context, userID string, currency models.Currency, amount int64) error {
	if amount <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := s.users.GetOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		user.AddBalance(currency, amount)
		return s.users.Update(ctx, tx, user)
	})
}

// Debit removes amount of currency from userID's balance, failing with
// ErrInsufficientFunds rather than going negative.
func (s *Service) Debit(ctx context.Context, userID string, currency models.Currency, amount int64) error {
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
		user.AddBalance(currency, -amount)
		return s.users.Update(ctx, tx, user)
	})
}

// Pay moves Love Quartz from one user to another. Both balance changes
// commit together or not at all.
func (s *Service) Pay(ctx context.Context, fromID, toID string, amount int64) error {
	if fromID == toID {
		return economy.ErrSelfTarget
	}
	if amount <= 0 {
		return economy.ErrInvalidAmount
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		from, err := s.users.GetOrCreate(ctx, tx, fromID)
		if err != nil {
			return err
		}
		if from.LoveQuartz < amount {
			return economy.ErrInsufficientFunds
		}
		to, err := s.users.GetOrCreate(ctx, tx, toID)
		if err != nil {
			return err
		}
		from.LoveQuartz -= amount
		to.LoveQuartz += amount
		if err := s.users.Update(ctx, tx, from); err != nil {
			return err
		}
		return s.users.Update(ctx, tx, to)
	})
}
