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

var Weekly = discord.SlashCommandCreate{
	Name:        "weekly",
	Description: "Claim your weekly rewards",
}

func WeeklyHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		result, err := b.Rewards.Weekly(ctx, e.User().ID.String())
		if err != nil {
			if _, ok := economy.AsCooldown(err); !ok {
				slog.Error("Weekly claim failed",
					slog.String("type", "cmd"),
					slog.String("user_id", e.User().ID.String()),
					slog.Any("error", err))
			}
			return replyDomainError(e, err)
		}

		scheduleReminder(b, e, models.ReminderWeekly)

		embed := discord.Embed{
			Title: "✦ The seven wonders are complete!",
			Description: fmt.Sprintf(
				"You received **%d** %s Love Quartz, **%d** %s Vital Crystal and an epic card:\n%s",
				result.LoveQuartz, config.LoveQuartzEmoji,
				result.VitalCrystal, config.VitalCrystalEmoji,
				formatCardLine(result.Card)),
			Color: config.EmbedColor,
		}
		if url := b.ImageService.ImageURL(result.Card); url != "" {
			embed.Thumbnail = &discord.EmbedResource{URL: url}
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
