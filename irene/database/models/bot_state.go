package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BotState is the singleton service-state document: lifetime drop counter and
// the maintenance flag.
type BotState struct {
	bun.BaseModel `bun:"table:bot_state,alias:bs"`

	ID         int64     `bun:"id,pk"`
	TotalDrops int64     `bun:"total_drops,notnull,default:0"`
	Paused     bool      `bun:"paused,notnull,default:false"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
}
