package economy

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		last          time.Time
		interval      time.Duration
		wantReady     bool
		wantRemaining time.Duration
	}{
		{
			name:      "never used is ready",
			last:      time.Time{},
			interval:  5 * time.Minute,
			wantReady: true,
		},
		{
			name:      "exactly elapsed is ready",
			last:      now.Add(-5 * time.Minute),
			interval:  5 * time.Minute,
			wantReady: true,
		},
		{
			name:      "long elapsed is ready",
			last:      now.Add(-48 * time.Hour),
			interval:  24 * time.Hour,
			wantReady: true,
		},
		{
			name:          "partially elapsed",
			last:          now.Add(-2 * time.Minute),
			interval:      5 * time.Minute,
			wantReady:     false,
			wantRemaining: 3 * time.Minute,
		},
		{
			name:          "just used",
			last:          now,
			interval:      30 * time.Minute,
			wantReady:     false,
			wantRemaining: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := CheckCooldown(tt.last, tt.interval, now)
			assert.Equal(t, tt.wantReady, st.Ready)
			if !tt.wantReady {
				assert.Equal(t, tt.wantRemaining, st.Remaining)
			}
		})
	}
}

func TestAsCooldown(t *testing.T) {
	err := &CooldownError{Action: "drop", Remaining: time.Minute}

	ce, ok := AsCooldown(fmt.Errorf("claim failed: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "drop", ce.Action)
	assert.Equal(t, time.Minute, ce.Remaining)

	_, ok = AsCooldown(errors.New("plain failure"))
	assert.False(t, ok)
}
