package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

type MarketRepository interface {
	// GetBySeller returns the seller's entries in listing order.
	GetBySeller(ctx context.Context, db bun.IDB, sellerID string) ([]*models.MarketItem, error)
	Insert(ctx context.Context, db bun.IDB, item *models.MarketItem) error
	UpdateQuantity(ctx context.Context, db bun.IDB, id int64, quantity int64) error
	Delete(ctx context.Context, db bun.IDB, id int64) error
}

type marketRepository struct {
	db *bun.DB
}

func NewMarketRepository(db *bun.DB) MarketRepository {
	return &marketRepository{db: db}
}

func (r *marketRepository) GetBySeller(ctx context.Context, db bun.IDB, sellerID string) ([]*models.MarketItem, error) {
	var items []*models.MarketItem
	err := db.NewSelect().
		Model(&items).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Scan(ctx)
	return items, err
}

func (r *marketRepository) Insert(ctx context.Context, db bun.IDB, item *models.MarketItem) error {
	item.CreatedAt = time.Now()
	_, err := db.NewInsert().
		Model(item).
		Exec(ctx)
	return err
}

func (r *marketRepository) UpdateQuantity(ctx context.Context, db bun.IDB, id int64, quantity int64) error {
	_, err := db.NewUpdate().
		Model((*models.MarketItem)(nil)).
		Set("quantity = ?", quantity).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *marketRepository) Delete(ctx context.Context, db bun.IDB, id int64) error {
	_, err := db.NewDelete().
		Model((*models.MarketItem)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
