package services

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

// SearchFilters narrows a catalog query. All fields are optional; string
// fields match as diacritic-insensitive substrings.
type SearchFilters struct {
	Name   string
	Group  string
	Era    string
	Rarity string
}

func (f SearchFilters) empty() bool {
	return f.Name == "" && f.Group == "" && f.Era == "" && f.Rarity == ""
}

// SearchService answers catalog queries for the search and inventory
// commands. Name queries rank by fuzzy relevance; the other filters are
// exact-field substring matches.
type SearchService struct {
	cards repositories.CardRepository
}

func NewSearchService(cards repositories.CardRepository) *SearchService {
	return &SearchService{cards: cards}
}

type searchItems []*models.Card

func (s searchItems) String(i int) string {
	return utils.NormalizeString(s[i].Name)
}

func (s searchItems) Len() int { return len(s) }

// Search returns catalog cards matching filters. Without a name query the
// result keeps catalog order; with one it is ranked by match quality.
func (s *SearchService) Search(ctx context.Context, filters SearchFilters) ([]*models.Card, error) {
	catalog, err := s.cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCards(catalog, filters), nil
}

// FilterCards applies filters to an already-loaded card slice.
func FilterCards(catalog []*models.Card, filters SearchFilters) []*models.Card {
	if filters.empty() {
		return catalog
	}

	pool := make([]*models.Card, 0, len(catalog))
	for _, c := range catalog {
		if filters.Group != "" && !containsNormalized(c.Group, filters.Group) {
			continue
		}
		if filters.Era != "" && !containsNormalized(c.Era, filters.Era) {
			continue
		}
		if filters.Rarity != "" && models.NormalizeRarity(c.Rarity) != models.NormalizeRarity(filters.Rarity) {
			continue
		}
		pool = append(pool, c)
	}

	if filters.Name == "" {
		return pool
	}

	matches := fuzzy.FindFrom(utils.NormalizeString(filters.Name), searchItems(pool))
	results := make([]*models.Card, len(matches))
	for i, m := range matches {
		results[i] = pool[m.Index]
	}
	return results
}

func containsNormalized(haystack, needle string) bool {
	return strings.Contains(utils.NormalizeString(haystack), utils.NormalizeString(needle))
}
