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

var Hunt = discord.SlashCommandCreate{
	Name:        "hunt",
	Description: "Go hunting for crystals",
}

func HuntHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		reward, err := b.Rewards.Hunt(ctx, e.User().ID.String())
		if err != nil {
			if _, ok := economy.AsCooldown(err); !ok {
				slog.Error("Hunt failed",
					slog.String("type", "cmd"),
					slog.String("user_id", e.User().ID.String()),
					slog.Any("error", err))
			}
			return replyDomainError(e, err)
		}

		scheduleReminder(b, e, models.ReminderHunt)

		var description string
		if reward.VitalCrystal > 0 {
			description = fmt.Sprintf("A rare find! You unearthed **%d** %s Vital Crystals!",
				reward.VitalCrystal, config.VitalCrystalEmoji)
		} else {
			description = fmt.Sprintf("You gathered **%d** %s Love Quartz.",
				reward.LoveQuartz, config.LoveQuartzEmoji)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "✦ Hunt complete",
				Description: description,
				Color:       config.EmbedColor,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Next hunt in %s", utils.FormatRemaining(config.HuntCooldown)),
				},
			}},
		})
	}
}
