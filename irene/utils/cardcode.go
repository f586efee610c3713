package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeString lowercases s and strips diacritics so the filter syntax
// matches "Début" against "debut".
func NormalizeString(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// FirstLetter returns the first letter of s, uppercased and stripped of
// diacritics, or "X" when s is blank.
func FirstLetter(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return "X"
	}
	decomposed := norm.NFD.String(t)
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		return string(unicode.ToUpper(r))
	}
	return "X"
}

// RarityChar returns the single-letter tier marker used inside card codes.
func RarityChar(rarity string) string {
	r := strings.ToLower(rarity)
	switch {
	case strings.HasPrefix(r, "com"):
		return "C"
	case strings.HasPrefix(r, "rar"):
		return "R"
	case strings.HasPrefix(r, "ep"):
		return "E"
	case rarity != "":
		return strings.ToUpper(rarity[:1])
	default:
		return "U"
	}
}

// MakeCardCode derives a catalog code from a card's attributes: the initials
// of name, group and era, the rarity marker, and a random 3-digit
// disambiguator. Codes are only generated at seed time for entries that ship
// without one.
func MakeCardCode(name, group, era, rarity string, rng *rand.Rand) string {
	return fmt.Sprintf("%s%s%s%s#%03d",
		FirstLetter(name),
		FirstLetter(group),
		FirstLetter(era),
		RarityChar(rarity),
		rng.Intn(1000),
	)
}
