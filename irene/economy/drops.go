package economy

import (
	"math/rand"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
)

// PickDrop draws one card for the drop command. A roll r in [0,100) selects
// the tier: r < 50 common, r < 80 rare, else epic. An empty tier falls back
// to the full catalog. Returns nil only for an empty catalog.
func PickDrop(catalog []*models.Card, rng *rand.Rand) *models.Card {
	if len(catalog) == 0 {
		return nil
	}
	pool := dropPool(catalog, rng.Float64()*100)
	return pool[rng.Intn(len(pool))]
}

// dropPool maps a roll in [0,100) to its tier pool. An empty tier falls back
// to the full catalog.
func dropPool(catalog []*models.Card, roll float64) []*models.Card {
	var tier string
	switch {
	case roll < config.DropCommonBound:
		tier = models.RarityCommon
	case roll < config.DropRareBound:
		tier = models.RarityRare
	default:
		tier = models.RarityEpic
	}

	pool := filterByRarity(catalog, tier)
	if len(pool) == 0 {
		pool = catalog
	}
	return pool
}

// PickDaily draws the daily bonus card uniformly from the full catalog.
func PickDaily(catalog []*models.Card, rng *rand.Rand) *models.Card {
	if len(catalog) == 0 {
		return nil
	}
	return catalog[rng.Intn(len(catalog))]
}

// PickWeekly draws the weekly bonus card uniformly from the epic tier,
// falling back to the full catalog when no epics exist.
func PickWeekly(catalog []*models.Card, rng *rand.Rand) *models.Card {
	if len(catalog) == 0 {
		return nil
	}
	pool := filterByRarity(catalog, models.RarityEpic)
	if len(pool) == 0 {
		pool = catalog
	}
	return pool[rng.Intn(len(pool))]
}

// HuntReward is the payout of one hunt. Exactly one of the two fields is
// non-zero; the branches are mutually exclusive.
type HuntReward struct {
	LoveQuartz   int64
	VitalCrystal int64
}

// RollHunt resolves a hunt: a 25% chance of Vital Crystals, otherwise Love
// Quartz.
func RollHunt(rng *rand.Rand) HuntReward {
	if rng.Float64() < config.HuntVitalChance {
		return HuntReward{VitalCrystal: config.HuntVital}
	}
	return HuntReward{LoveQuartz: config.HuntQuartz}
}

func filterByRarity(catalog []*models.Card, rarity string) []*models.Card {
	var out []*models.Card
	for _, c := range catalog {
		if models.NormalizeRarity(c.Rarity) == rarity {
			out = append(out, c)
		}
	}
	return out
}
