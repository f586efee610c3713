package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lovequartz/irene/irene/database/models"
)

func TestReminderText(t *testing.T) {
	who := "**hanni** (<@123>)"
	commands := map[string]string{
		models.ReminderDrop:   "/drop",
		models.ReminderHunt:   "/hunt",
		models.ReminderDaily:  "/daily",
		models.ReminderWeekly: "/weekly",
	}
	for kind, command := range commands {
		text := reminderText(kind, who)
		assert.Contains(t, text, who, kind)
		assert.Contains(t, text, command, kind)
	}
	assert.Empty(t, reminderText("unknown", who))
}
