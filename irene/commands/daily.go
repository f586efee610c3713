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
)

var Daily = discord.SlashCommandCreate{
	Name:        "daily",
	Description: "Claim your daily rewards",
}

func DailyHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		result, err := b.Rewards.Daily(ctx, e.User().ID.String())
		if err != nil {
			if _, ok := economy.AsCooldown(err); !ok {
				slog.Error("Daily claim failed",
					slog.String("type", "cmd"),
					slog.String("user_id", e.User().ID.String()),
					slog.Any("error", err))
			}
			return replyDomainError(e, err)
		}

		scheduleReminder(b, e, models.ReminderDaily)

		embed := discord.Embed{
			Title: "✦ Daily rewards claimed!",
			Description: fmt.Sprintf(
				"You received **%d** %s Love Quartz and a bonus card:\n%s",
				result.LoveQuartz, config.LoveQuartzEmoji, formatCardLine(result.Card)),
			Color: config.EmbedColor,
			Footer: &discord.EmbedFooter{
				Text: "Come back tomorrow for more magic",
			},
		}
		if url := b.ImageService.ImageURL(result.Card); url != "" {
			embed.Thumbnail = &discord.EmbedResource{URL: url}
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
