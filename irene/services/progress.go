package services

import (
	"sort"

	"github.com/lovequartz/irene/irene/database/models"
)

// GroupProgress is the completion of one "Group - Era" slice of the catalog.
type GroupProgress struct {
	Name  string
	Owned int
	Total int
}

// Percent returns the rounded completion percentage of the slice.
func (g GroupProgress) Percent() int {
	return roundedPercent(g.Owned, g.Total)
}

// ProgressStats is a collection's completion against a catalog. Owned counts
// distinct cards; duplicate copies don't advance completion.
type ProgressStats struct {
	Owned  int
	Total  int
	Groups []GroupProgress
}

// Percent returns the rounded overall completion percentage.
func (p ProgressStats) Percent() int {
	return roundedPercent(p.Owned, p.Total)
}

// CollectionProgress computes completion of owned against catalog, broken
// down per group and era. Groups are sorted by name for stable output.
func CollectionProgress(catalog []*models.Card, owned map[string]int64) ProgressStats {
	stats := ProgressStats{Total: len(catalog)}
	byGroup := make(map[string]*GroupProgress)

	for _, card := range catalog {
		has := owned[card.Code] > 0
		if has {
			stats.Owned++
		}

		key := groupKey(card)
		g, ok := byGroup[key]
		if !ok {
			g = &GroupProgress{Name: key}
			byGroup[key] = g
		}
		g.Total++
		if has {
			g.Owned++
		}
	}

	stats.Groups = make([]GroupProgress, 0, len(byGroup))
	for _, g := range byGroup {
		stats.Groups = append(stats.Groups, *g)
	}
	sort.Slice(stats.Groups, func(i, j int) bool {
		return stats.Groups[i].Name < stats.Groups[j].Name
	})
	return stats
}

func groupKey(card *models.Card) string {
	switch {
	case card.Group != "" && card.Era != "":
		return card.Group + " - " + card.Era
	case card.Group != "":
		return card.Group
	case card.Era != "":
		return card.Era
	}
	return "Other"
}

func roundedPercent(owned, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(owned)/float64(total)*100 + 0.5)
}
