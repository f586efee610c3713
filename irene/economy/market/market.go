// Package market implements per-seller card listings. Listing a card debits
// the seller's collection up front, so a sale only moves currency to the
// seller and cards to the buyer.
package market

import (
	"context"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy"
)

type Service struct {
	db        economy.TxRunner
	cards     repositories.CardRepository
	users     repositories.UserRepository
	userCards repositories.UserCardRepository
	market    repositories.MarketRepository
}

func NewService(
	db economy.TxRunner,
	cards repositories.CardRepository,
	users repositories.UserRepository,
	userCards repositories.UserCardRepository,
	market repositories.MarketRepository,
) *Service {
	return &Service{
		db:        db,
		cards:     cards,
		users:     users,
		userCards: userCards,
		market:    market,
	}
}

// View returns sellerID's listings in stable insertion order.
func (s *Service) View(ctx context.Context, sellerID string) ([]*models.MarketItem, error) {
	var items []*models.MarketItem
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		items, err = s.market.GetBySeller(ctx, tx, sellerID)
		return err
	})
	return items, err
}

// Add lists qty copies of a card at price. The copies leave the seller's
// collection immediately. An existing listing with the same card, price and
// currency absorbs the quantity instead of creating a second entry.
func (s *Service) Add(ctx context.Context, sellerID, code string, qty, price int64, currency models.Currency) error {
	if qty <= 0 || price <= 0 {
		return economy.ErrInvalidAmount
	}
	card, err := s.cards.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		owned, err := s.userCards.GetAmount(ctx, tx, sellerID, card.Code)
		if err != nil {
			return err
		}
		if owned < qty {
			return economy.ErrInsufficientQuantity
		}
		if err := s.userCards.Remove(ctx, tx, sellerID, card.Code, qty); err != nil {
			return err
		}

		existing, err := s.market.GetBySeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}
		for _, item := range existing {
			if strings.EqualFold(item.CardCode, card.Code) && item.Price == price && item.Currency == currency {
				return s.market.UpdateQuantity(ctx, tx, item.ID, item.Quantity+qty)
			}
		}
		return s.market.Insert(ctx, tx, &models.MarketItem{
			SellerID: sellerID,
			CardCode: card.Code,
			Quantity: qty,
			Price:    price,
			Currency: currency,
		})
	})
}

// Remove delists sellerID's entry at index (1-based) and returns its full
// quantity to the collection.
func (s *Service) Remove(ctx context.Context, sellerID string, index int) (*models.MarketItem, error) {
	var removed *models.MarketItem
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		items, err := s.market.GetBySeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}
		if index < 1 || index > len(items) {
			return economy.ErrInvalidSelection
		}
		item := items[index-1]
		if err := s.market.Delete(ctx, tx, item.ID); err != nil {
			return err
		}
		if err := s.userCards.Add(ctx, tx, sellerID, item.CardCode, item.Quantity); err != nil {
			return err
		}
		removed = item
		return nil
	})
	return removed, err
}

// Buy purchases sellerID's entry at index (1-based) for buyerID: the full
// quantity goes to the buyer, the payment to the seller, and the entry is
// deleted. Buying from yourself is rejected.
func (s *Service) Buy(ctx context.Context, buyerID, sellerID string, index int) (*models.MarketItem, error) {
	if buyerID == sellerID {
		return nil, economy.ErrSelfTarget
	}
	var bought *models.MarketItem
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		items, err := s.market.GetBySeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}
		if index < 1 || index > len(items) {
			return economy.ErrInvalidSelection
		}
		item := items[index-1]

		buyer, err := s.users.GetOrCreate(ctx, tx, buyerID)
		if err != nil {
			return err
		}
		if buyer.Balance(item.Currency) < item.Price {
			return economy.ErrInsufficientFunds
		}
		seller, err := s.users.GetOrCreate(ctx, tx, sellerID)
		if err != nil {
			return err
		}

		buyer.AddBalance(item.Currency, -item.Price)
		seller.AddBalance(item.Currency, item.Price)
		if err := s.users.Update(ctx, tx, buyer); err != nil {
			return err
		}
		if err := s.users.Update(ctx, tx, seller); err != nil {
			return err
		}
		// The seller's collection was debited when the entry was listed, so
		// only the buyer's side gains cards here.
		if err := s.userCards.Add(ctx, tx, buyerID, item.CardCode, item.Quantity); err != nil {
			return err
		}
		if err := s.market.Delete(ctx, tx, item.ID); err != nil {
			return err
		}
		bought = item
		slog.Info("Market sale",
			slog.String("type", "cmd"),
			slog.String("buyer", buyerID),
			slog.String("seller", sellerID),
			slog.String("code", item.CardCode),
			slog.Int64("qty", item.Quantity))
		return nil
	})
	return bought, err
}
