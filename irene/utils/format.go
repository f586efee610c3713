package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
)

// FormatRemaining renders a cooldown remainder as "1d 2h 3m 4s". Zero or
// negative durations render as "ready".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "ready"
	}
	s := int64(d.Round(time.Second).Seconds())
	days := s / 86400
	hours := (s % 86400) / 3600
	minutes := (s % 3600) / 60
	seconds := s % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}

// CurrencyEmoji returns the emoji for a currency.
func CurrencyEmoji(c models.Currency) string {
	if c == models.CurrencyVital {
		return config.VitalCrystalEmoji
	}
	return config.LoveQuartzEmoji
}

// FormatPrice renders an amount with its currency emoji.
func FormatPrice(amount int64, c models.Currency) string {
	return fmt.Sprintf("%d%s", amount, CurrencyEmoji(c))
}

// DiscordRelativeTime renders t as a Discord relative-timestamp token.
func DiscordRelativeTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

const progressBarWidth = 20

// ProgressBar renders percent as a 20-segment bar, "[████░░...] 23%".
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarWidth-filled),
		percent)
}
