package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/economy"
	"github.com/lovequartz/irene/irene/utils"
)

// replyDomainError answers an expected economy failure with the matching
// error embed. Unexpected errors get a generic message; callers log them.
func replyDomainError(e *handler.CommandEvent, err error) error {
	if ce, ok := economy.AsCooldown(err); ok {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
			"Your **%s** is not ready yet. Try again in **%s**.",
			ce.Action, utils.FormatRemaining(ce.Remaining)))
	}
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		return utils.EH.CreateErrorEmbed(e, "You don't have enough for that.")
	case errors.Is(err, economy.ErrInsufficientQuantity):
		return utils.EH.CreateErrorEmbed(e, "You don't own enough copies of that card.")
	case errors.Is(err, economy.ErrInvalidSelection):
		return utils.EH.CreateErrorEmbed(e, "That entry doesn't exist. Check the number and try again.")
	case errors.Is(err, economy.ErrInvalidAmount):
		return utils.EH.CreateErrorEmbed(e, "The amount has to be a positive number.")
	case errors.Is(err, economy.ErrSelfTarget):
		return utils.EH.CreateErrorEmbed(e, "You can't do that with yourself.")
	case errors.Is(err, economy.ErrEmptyCatalog):
		return utils.EH.CreateErrorEmbed(e, "The tarot deck is empty right now.")
	}
	return utils.EH.CreateErrorEmbed(e, "Something went wrong. Please try again later.")
}

// formatCardLine renders one card reference for list views.
func formatCardLine(card *models.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "`%s` **%s**", card.Code, card.Name)
	if card.Group != "" {
		fmt.Fprintf(&b, " · %s", card.Group)
	}
	if card.Era != "" {
		fmt.Fprintf(&b, " (%s)", card.Era)
	}
	fmt.Fprintf(&b, " · *%s*", models.NormalizeRarity(card.Rarity))
	return b.String()
}

// parseCurrency maps a command option value to a Currency.
func parseCurrency(value string) (models.Currency, bool) {
	c := models.Currency(strings.ToLower(strings.TrimSpace(value)))
	return c, c.Valid()
}

// scheduleReminder records a cooldown reminder for the channel the command
// ran in.
func scheduleReminder(b *irene.Bot, e *handler.CommandEvent, kind string) {
	guildID := ""
	if e.GuildID() != nil {
		guildID = e.GuildID().String()
	}
	b.ReminderService.Schedule(
		context.Background(),
		e.User().ID.String(),
		kind,
		reminderDelay(kind),
		guildID,
		e.ChannelID().String(),
	)
}

func reminderDelay(kind string) time.Duration {
	switch kind {
	case models.ReminderDrop:
		return config.DropCooldown
	case models.ReminderHunt:
		return config.HuntCooldown
	case models.ReminderDaily:
		return config.DailyCooldown
	case models.ReminderWeekly:
		return config.WeeklyCooldown
	}
	return 0
}
