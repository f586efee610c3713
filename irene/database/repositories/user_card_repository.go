package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

type UserCardRepository interface {
	GetAmount(ctx context.Context, db bun.IDB, userID, code string) (int64, error)
	// Add credits qty copies of code to userID, creating the row on first
	// contact. qty must be positive.
	Add(ctx context.Context, db bun.IDB, userID, code string, qty int64) error
	// Remove debits qty copies. Callers validate ownership first; Remove
	// fails rather than drive the count negative.
	Remove(ctx context.Context, db bun.IDB, userID, code string, qty int64) error
	GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error)
	TotalOwned(ctx context.Context, userID string) (int64, error)
}

type userCardRepository struct {
	db *bun.DB
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{db: db}
}

func (r *userCardRepository) GetAmount(ctx context.Context, db bun.IDB, userID, code string) (int64, error) {
	uc := new(models.UserCard)
	err := db.NewSelect().
		Model(uc).
		Where("user_id = ? AND card_code = ?", userID, strings.ToUpper(code)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return uc.Amount, nil
}

func (r *userCardRepository) Add(ctx context.Context, db bun.IDB, userID, code string, qty int64) error {
	uc := &models.UserCard{
		UserID:    userID,
		CardCode:  strings.ToUpper(code),
		Amount:    qty,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err := db.NewInsert().
		Model(uc).
		On("CONFLICT (user_id, card_code) DO UPDATE").
		Set("amount = uc.amount + EXCLUDED.amount").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *userCardRepository) Remove(ctx context.Context, db bun.IDB, userID, code string, qty int64) error {
	res, err := db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("amount = amount - ?", qty).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ? AND card_code = ? AND amount >= ?", userID, strings.ToUpper(code), qty).
		Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("owned amount below %d for %s", qty, code)
	}
	return nil
}

func (r *userCardRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error) {
	var cards []*models.UserCard
	err := r.db.NewSelect().
		Model(&cards).
		Where("user_id = ? AND amount > 0", userID).
		Order("card_code ASC").
		Scan(ctx)
	return cards, err
}

func (r *userCardRepository) TotalOwned(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(ctx, &total)
	return total, err
}
