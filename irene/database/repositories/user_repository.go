package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

type UserRepository interface {
	// Get returns the account for discordID, or an all-zero record when the
	// user has never been persisted. It never inserts.
	Get(ctx context.Context, discordID string) (*models.User, error)
	// GetOrCreate returns the account for discordID, inserting the zero
	// record first when missing. Mutation paths go through this so the
	// zero-value contract lives in one place.
	GetOrCreate(ctx context.Context, db bun.IDB, discordID string) (*models.User, error)
	Update(ctx context.Context, db bun.IDB, user *models.User) error
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, discordID string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.User{DiscordID: discordID}, nil
		}
		slog.Error("Database error when getting user",
			slog.String("type", "db"),
			slog.String("operation", "Get"),
			slog.String("discord_id", discordID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetOrCreate(ctx context.Context, db bun.IDB, discordID string) (*models.User, error) {
	user := new(models.User)
	err := db.NewSelect().
		Model(user).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user = &models.User{
		DiscordID: discordID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := db.NewInsert().
		Model(user).
		On("CONFLICT (discord_id) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, err
	}
	// Re-read in case a concurrent insert won the conflict.
	if err := db.NewSelect().
		Model(user).
		Where("discord_id = ?", discordID).
		Scan(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, db bun.IDB, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}
