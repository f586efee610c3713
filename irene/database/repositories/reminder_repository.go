package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	// Due returns reminders whose due time has passed.
	Due(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	Delete(ctx context.Context, ids []int64) error
}

type reminderRepository struct {
	db *bun.DB
}

func NewReminderRepository(db *bun.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(reminder).
		Exec(ctx)
	return err
}

func (r *reminderRepository) Due(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	err := r.db.NewSelect().
		Model(&reminders).
		Where("due_at <= ?", now).
		Order("due_at ASC").
		Scan(ctx)
	return reminders, err
}

func (r *reminderRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.NewDelete().
		Model((*models.Reminder)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)
	return err
}
