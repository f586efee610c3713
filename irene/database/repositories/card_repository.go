package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

// ErrCardNotFound is returned when a catalog lookup misses.
var ErrCardNotFound = errors.New("card not found")

type CardRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
	GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error)
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, cards []*models.Card) (int, error)
}

type cardRepository struct {
	db *bun.DB
}

func NewCardRepository(db *bun.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) GetByCode(ctx context.Context, code string) (*models.Card, error) {
	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Where("code = ?", strings.ToUpper(code)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Order("code ASC").
		Scan(ctx)
	return cards, err
}

func (r *cardRepository) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("rarity = ?", rarity).
		Order("code ASC").
		Scan(ctx)
	return cards, err
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.Card)(nil)).Count(ctx)
}

// CreateMany inserts catalog entries, skipping codes that already exist.
// Returns the number of newly inserted rows.
func (r *cardRepository) CreateMany(ctx context.Context, cards []*models.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	res, err := r.db.NewInsert().
		Model(&cards).
		On("CONFLICT (code) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cards: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
