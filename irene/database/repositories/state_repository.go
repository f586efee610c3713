package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

const botStateID = 1

type StateRepository interface {
	Get(ctx context.Context) (*models.BotState, error)
	IncrementDrops(ctx context.Context, db bun.IDB) (int64, error)
	SetPaused(ctx context.Context, paused bool) error
}

type stateRepository struct {
	db *bun.DB
}

func NewStateRepository(db *bun.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Get(ctx context.Context) (*models.BotState, error) {
	state := new(models.BotState)
	err := r.db.NewSelect().
		Model(state).
		Where("id = ?", botStateID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.BotState{ID: botStateID}, nil
		}
		return nil, err
	}
	return state, nil
}

// IncrementDrops bumps the global drop counter and returns the new total.
func (r *stateRepository) IncrementDrops(ctx context.Context, db bun.IDB) (int64, error) {
	state := &models.BotState{
		ID:         botStateID,
		TotalDrops: 1,
		UpdatedAt:  time.Now(),
	}
	_, err := db.NewInsert().
		Model(state).
		On("CONFLICT (id) DO UPDATE").
		Set("total_drops = bs.total_drops + 1").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("total_drops").
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return state.TotalDrops, nil
}

func (r *stateRepository) SetPaused(ctx context.Context, paused bool) error {
	state := &models.BotState{
		ID:        botStateID,
		Paused:    paused,
		UpdatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(state).
		On("CONFLICT (id) DO UPDATE").
		Set("paused = EXCLUDED.paused").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}
