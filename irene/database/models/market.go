package models

import (
	"time"

	"github.com/uptrace/bun"
)

// MarketItem is one entry in a seller's personal market. Entries are ordered
// by insertion (id); user-facing positions are 1-based indexes into that
// order. Quantity was already debited from the seller's collection when the
// entry was authored.
type MarketItem struct {
	bun.BaseModel `bun:"table:market_items,alias:mi"`

	ID       int64    `bun:"id,pk,autoincrement"`
	SellerID string   `bun:"seller_id,notnull"`
	CardCode string   `bun:"card_code,notnull"`
	Quantity int64    `bun:"quantity,notnull"`
	Price    int64    `bun:"price,notnull"`
	Currency Currency `bun:"currency,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
