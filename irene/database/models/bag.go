package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Bag is the secondary holding area. Cards and currency parked here do not
// show up in inventory listings; store/withdraw are the only operations that
// touch it.
type Bag struct {
	bun.BaseModel `bun:"table:bags,alias:b"`

	UserID       string           `bun:"user_id,pk"`
	LoveQuartz   int64            `bun:"love_quartz,notnull,default:0"`
	VitalCrystal int64            `bun:"vital_crystal,notnull,default:0"`
	Cards        map[string]int64 `bun:"cards,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// CardAmount returns the bagged count for code, zero when absent.
func (b *Bag) CardAmount(code string) int64 {
	if b.Cards == nil {
		return 0
	}
	return b.Cards[code]
}

// AddCard adjusts the bagged count for code by delta. Callers validate that
// the result stays non-negative.
func (b *Bag) AddCard(code string, delta int64) {
	if b.Cards == nil {
		b.Cards = make(map[string]int64)
	}
	b.Cards[code] += delta
}

// Balance returns the bagged balance for the given currency.
func (b *Bag) Balance(c Currency) int64 {
	if c == CurrencyVital {
		return b.VitalCrystal
	}
	return b.LoveQuartz
}

// AddBalance adjusts the bagged balance for the given currency by delta.
func (b *Bag) AddBalance(c Currency, delta int64) {
	if c == CurrencyVital {
		b.VitalCrystal += delta
		return
	}
	b.LoveQuartz += delta
}

// TotalCards returns the total number of card copies in the bag.
func (b *Bag) TotalCards() int64 {
	var total int64
	for _, n := range b.Cards {
		total += n
	}
	return total
}
