package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

const shopStateID = 1

type ShopRepository interface {
	// Get returns the current shop state. A never-initialized shop comes back
	// with a zero LastUpdate so the caller regenerates it immediately.
	Get(ctx context.Context) (*models.ShopState, error)
	Save(ctx context.Context, state *models.ShopState) error
}

type shopRepository struct {
	db *bun.DB
}

func NewShopRepository(db *bun.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Get(ctx context.Context) (*models.ShopState, error) {
	state := new(models.ShopState)
	err := r.db.NewSelect().
		Model(state).
		Where("id = ?", shopStateID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.ShopState{ID: shopStateID}, nil
		}
		return nil, err
	}
	return state, nil
}

func (r *shopRepository) Save(ctx context.Context, state *models.ShopState) error {
	state.ID = shopStateID
	_, err := r.db.NewInsert().
		Model(state).
		On("CONFLICT (id) DO UPDATE").
		Set("last_update = EXCLUDED.last_update").
		Set("items = EXCLUDED.items").
		Exec(ctx)
	return err
}
