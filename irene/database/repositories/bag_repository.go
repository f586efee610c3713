package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

type BagRepository interface {
	// Get returns the bag for userID, or an empty bag when none exists yet.
	Get(ctx context.Context, userID string) (*models.Bag, error)
	GetOrCreate(ctx context.Context, db bun.IDB, userID string) (*models.Bag, error)
	Update(ctx context.Context, db bun.IDB, bag *models.Bag) error
}

type bagRepository struct {
	db *bun.DB
}

func NewBagRepository(db *bun.DB) BagRepository {
	return &bagRepository{db: db}
}

func (r *bagRepository) Get(ctx context.Context, userID string) (*models.Bag, error) {
	bag := new(models.Bag)
	err := r.db.NewSelect().
		Model(bag).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Bag{UserID: userID, Cards: map[string]int64{}}, nil
		}
		return nil, err
	}
	if bag.Cards == nil {
		bag.Cards = map[string]int64{}
	}
	return bag, nil
}

func (r *bagRepository) GetOrCreate(ctx context.Context, db bun.IDB, userID string) (*models.Bag, error) {
	bag := new(models.Bag)
	err := db.NewSelect().
		Model(bag).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err == nil {
		if bag.Cards == nil {
			bag.Cards = map[string]int64{}
		}
		return bag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	bag = &models.Bag{
		UserID:    userID,
		Cards:     map[string]int64{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := db.NewInsert().
		Model(bag).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, err
	}
	return bag, nil
}

func (r *bagRepository) Update(ctx context.Context, db bun.IDB, bag *models.Bag) error {
	bag.UpdatedAt = time.Now()
	_, err := db.NewUpdate().
		Model(bag).
		WherePK().
		Exec(ctx)
	return err
}
