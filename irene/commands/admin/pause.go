package admin

import (
	"context"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/utils"
)

var Pause = discord.SlashCommandCreate{
	Name:        "pause",
	Description: "Pause the bot for maintenance (owner only)",
}

var Resume = discord.SlashCommandCreate{
	Name:        "resume",
	Description: "Resume the bot after maintenance (owner only)",
}

func PauseHandler(b *irene.Bot) handler.CommandHandler {
	return setPausedHandler(b, true,
		"The tarot deck is resting. Commands are paused for maintenance.")
}

func ResumeHandler(b *irene.Bot) handler.CommandHandler {
	return setPausedHandler(b, false,
		"The tarot deck awakens! Commands are available again.")
}

func setPausedHandler(b *irene.Bot, paused bool, message string) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsOwner(e.User().ID.String()) {
			return utils.EH.CreateErrorEmbed(e, "Only the keeper of the deck can use this.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if err := b.StateRepository.SetPaused(ctx, paused); err != nil {
			slog.Error("Failed to update maintenance state",
				slog.String("type", "cmd"),
				slog.Bool("paused", paused),
				slog.Any("error", err))
			return utils.EH.CreateErrorEmbed(e, "Failed to change the maintenance state.")
		}

		slog.Info("Maintenance state changed",
			slog.String("type", "sys"),
			slog.Bool("paused", paused),
			slog.String("by", e.User().ID.String()))
		return utils.EH.CreateSuccessEmbed(e, message)
	}
}
