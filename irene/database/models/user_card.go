package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCard is the collection ledger row: how many copies of one card a user
// holds in their primary collection. An amount of zero is tolerated and means
// the same as a missing row.
type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   string `bun:"user_id,notnull"`
	CardCode string `bun:"card_code,notnull"`
	Amount   int64  `bun:"amount,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
