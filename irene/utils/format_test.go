package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "ready"},
		{-time.Minute, "ready"},
		{4 * time.Second, "4s"},
		{90 * time.Second, "1m 30s"},
		{time.Hour, "1h 0s"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "1d 2h 3m 4s"},
		{7 * 24 * time.Hour, "7d 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRemaining(tt.d), tt.d.String())
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "3000"+config.LoveQuartzEmoji, FormatPrice(3000, models.CurrencyLove))
	assert.Equal(t, "3"+config.VitalCrystalEmoji, FormatPrice(3, models.CurrencyVital))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "[░░░░░░░░░░░░░░░░░░░░] 0%"},
		{47, "[█████████░░░░░░░░░░░] 47%"},
		{100, "[████████████████████] 100%"},
		{-5, "[░░░░░░░░░░░░░░░░░░░░] 0%"},
		{140, "[████████████████████] 100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressBar(tt.percent), "%d%%", tt.percent)
	}
}

func TestDiscordRelativeTime(t *testing.T) {
	at := time.Unix(1700000000, 0)
	assert.Equal(t, "<t:1700000000:R>", DiscordRelativeTime(at))
}
