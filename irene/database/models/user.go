package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Currency identifies one of the two independent balances every user carries.
type Currency string

const (
	CurrencyLove  Currency = "love"  // Love Quartz, the primary currency
	CurrencyVital Currency = "vital" // Vital Crystals, the secondary currency
)

// Valid reports whether c is one of the two known currencies.
func (c Currency) Valid() bool {
	return c == CurrencyLove || c == CurrencyVital
}

// User is one player account. Rows are created lazily on first mutation and
// never deleted; read paths treat a missing row as an all-zero account.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	DiscordID    string `bun:"discord_id,pk"`
	LoveQuartz   int64  `bun:"love_quartz,notnull,default:0"`
	VitalCrystal int64  `bun:"vital_crystal,notnull,default:0"`

	// Cooldown tracks, one timestamp per gated action.
	LastDrop   time.Time `bun:"last_drop"`
	LastHunt   time.Time `bun:"last_hunt"`
	LastDaily  time.Time `bun:"last_daily"`
	LastWeekly time.Time `bun:"last_weekly"`

	Favorite    string `bun:"favorite"`
	Description string `bun:"description"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Balance returns the balance for the given currency.
func (u *User) Balance(c Currency) int64 {
	if c == CurrencyVital {
		return u.VitalCrystal
	}
	return u.LoveQuartz
}

// AddBalance adjusts the balance for the given currency by delta. Callers
// validate that the result stays non-negative before calling.
func (u *User) AddBalance(c Currency, delta int64) {
	if c == CurrencyVital {
		u.VitalCrystal += delta
		return
	}
	u.LoveQuartz += delta
}
