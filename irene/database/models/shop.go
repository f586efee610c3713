package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ShopItem is one purchasable slot in the rotating shop. Purchases do not
// deplete slots; the listing only changes on the rotation cycle.
type ShopItem struct {
	Code     string   `json:"code"`
	Rarity   string   `json:"rarity"`
	Price    int64    `json:"price"`
	Currency Currency `json:"currency"`
}

// ShopState is the singleton rotating-shop document.
type ShopState struct {
	bun.BaseModel `bun:"table:shop_state,alias:ss"`

	ID         int64      `bun:"id,pk"`
	LastUpdate time.Time  `bun:"last_update,notnull"`
	Items      []ShopItem `bun:"items,type:jsonb"`
}
