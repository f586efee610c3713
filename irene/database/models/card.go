package models

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// Rarity tiers known to the drop and shop engines. The catalog stores the
// lowercase form; anything unrecognized is treated as RarityUnknown and only
// reachable through the unfiltered fallback draw.
const (
	RarityCommon  = "common"
	RarityRare    = "rare"
	RarityEpic    = "epic"
	RarityUnknown = "unknown"
)

// NormalizeRarity maps free-form catalog input onto a known tier. The legacy
// catalog abbreviated tiers ("com", "ep"), so matching is by prefix.
func NormalizeRarity(s string) string {
	r := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(r, "com"):
		return RarityCommon
	case strings.HasPrefix(r, "rar"):
		return RarityRare
	case strings.HasPrefix(r, "ep"):
		return RarityEpic
	default:
		return RarityUnknown
	}
}

// Card is one catalog entry. The catalog is read-only at runtime; rows are
// created by cmd/seed only.
type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	Code      string    `bun:"code,pk"`
	Name      string    `bun:"name,notnull"`
	Group     string    `bun:"group_name,notnull"`
	Era       string    `bun:"era,notnull"`
	Rarity    string    `bun:"rarity,notnull"`
	Image     string    `bun:"image"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
