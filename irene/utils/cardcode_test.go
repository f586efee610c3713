package utils

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Début", "debut"},
		{"NewJeans", "newjeans"},
		{"ÉPOQUE D'OR", "epoque d'or"},
		{"über", "uber"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeString(tt.in), tt.in)
	}
}

func TestFirstLetter(t *testing.T) {
	assert.Equal(t, "E", FirstLetter("Élise"), "accents are stripped, not skipped")
	assert.Equal(t, "X", FirstLetter(""))
	assert.Equal(t, "X", FirstLetter("   "))
	assert.Equal(t, "H", FirstLetter("hyein"))
}

func TestRarityChar(t *testing.T) {
	assert.Equal(t, "C", RarityChar("common"))
	assert.Equal(t, "C", RarityChar("Common"))
	assert.Equal(t, "R", RarityChar("rare"))
	assert.Equal(t, "E", RarityChar("epic"))
	assert.Equal(t, "L", RarityChar("legendary"))
	assert.Equal(t, "U", RarityChar(""))
}

func TestMakeCardCode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shape := regexp.MustCompile(`^[A-Z]{3}[CRE]#\d{3}$`)
	for i := 0; i < 50; i++ {
		code := MakeCardCode("Hanni", "NewJeans", "Get Up", "rare", rng)
		assert.Regexp(t, shape, code)
	}
}
