package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovequartz/irene/irene/database/models"
)

func TestCollectionProgress(t *testing.T) {
	catalog := []*models.Card{
		{Code: "HNGC#001", Name: "Hanni", Group: "NewJeans", Era: "Get Up"},
		{Code: "MNGR#002", Name: "Minji", Group: "NewJeans", Era: "Get Up"},
		{Code: "WIAE#003", Name: "Wonyoung", Group: "IVE", Era: "After Like"},
	}
	owned := map[string]int64{
		"HNGC#001": 5, // duplicates count once
		"WIAE#003": 1,
	}

	stats := CollectionProgress(catalog, owned)
	assert.Equal(t, 2, stats.Owned)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 67, stats.Percent())

	require.Len(t, stats.Groups, 2)
	assert.Equal(t, "IVE - After Like", stats.Groups[0].Name)
	assert.Equal(t, 1, stats.Groups[0].Owned)
	assert.Equal(t, 1, stats.Groups[0].Total)
	assert.Equal(t, 100, stats.Groups[0].Percent())
	assert.Equal(t, "NewJeans - Get Up", stats.Groups[1].Name)
	assert.Equal(t, 1, stats.Groups[1].Owned)
	assert.Equal(t, 2, stats.Groups[1].Total)
	assert.Equal(t, 50, stats.Groups[1].Percent())
}

func TestCollectionProgressZeroCounts(t *testing.T) {
	catalog := []*models.Card{
		{Code: "HNGC#001", Name: "Hanni", Group: "NewJeans", Era: "Get Up"},
	}
	// An explicit zero row does not count as owned.
	stats := CollectionProgress(catalog, map[string]int64{"HNGC#001": 0})
	assert.Zero(t, stats.Owned)
	assert.Zero(t, stats.Percent())
}

func TestCollectionProgressEmptyCatalog(t *testing.T) {
	stats := CollectionProgress(nil, nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Percent())
	assert.Empty(t, stats.Groups)
}

func TestCollectionProgressGroupKeys(t *testing.T) {
	catalog := []*models.Card{
		{Code: "A#001", Group: "IVE"},
		{Code: "B#002", Era: "Get Up"},
		{Code: "C#003"},
	}
	stats := CollectionProgress(catalog, nil)
	names := make([]string, len(stats.Groups))
	for i, g := range stats.Groups {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"Get Up", "IVE", "Other"}, names)
}
