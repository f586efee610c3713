package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/economy"
	"github.com/lovequartz/irene/irene/utils"
)

var Drop = discord.SlashCommandCreate{
	Name:        "drop",
	Description: "Draw a card from the tarot deck",
}

func DropHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		result, err := b.Rewards.Drop(ctx, e.User().ID.String())
		if err != nil {
			if _, ok := economy.AsCooldown(err); !ok {
				slog.Error("Drop failed",
					slog.String("type", "cmd"),
					slog.String("user_id", e.User().ID.String()),
					slog.Any("error", err))
			}
			return replyDomainError(e, err)
		}

		scheduleReminder(b, e, models.ReminderDrop)

		embed := discord.Embed{
			Title:       "✦ A card reveals itself!",
			Description: fmt.Sprintf("You drew %s", formatCardLine(result.Card)),
			Color:       config.EmbedColor,
			Footer: &discord.EmbedFooter{
				Text: fmt.Sprintf("Drop #%d · next drop in %s", result.TotalDrops, utils.FormatRemaining(config.DropCooldown)),
			},
		}
		if url := b.ImageService.ImageURL(result.Card); url != "" {
			embed.Image = &discord.EmbedResource{URL: url}
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
