package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Reminder kinds, one per cooldown track.
const (
	ReminderDrop   = "drop"
	ReminderHunt   = "hunt"
	ReminderDaily  = "daily"
	ReminderWeekly = "weekly"
)

// Reminder is a one-shot "cooldown is over" notification. Rows are deleted
// once fired.
type Reminder struct {
	bun.BaseModel `bun:"table:reminders,alias:r"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	Kind      string    `bun:"kind,notnull"`
	DueAt     time.Time `bun:"due_at,notnull"`
	GuildID   string    `bun:"guild_id"`
	ChannelID string    `bun:"channel_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
