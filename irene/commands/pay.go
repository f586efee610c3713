package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
)

var Pay = discord.SlashCommandCreate{
	Name:        "pay",
	Description: "Pay Love Quartz to another user",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to pay",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How much Love Quartz to send",
			Required:    true,
			MinValue:    &[]int{1}[0],
		},
	},
}

func PayHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		amount := int64(data.Int("amount"))

		if err := b.Ledger.Pay(ctx, e.User().ID.String(), target.ID.String(), amount); err != nil {
			slog.Error("Payment failed",
				slog.String("type", "cmd"),
				slog.String("from", e.User().ID.String()),
				slog.String("to", target.ID.String()),
				slog.Any("error", err))
			return replyDomainError(e, err)
		}

		remaining, _ := b.UserRepository.Get(ctx, e.User().ID.String())
		desc := fmt.Sprintf("ㆍYou paid **%d**%s to **%s** successfully.",
			amount, config.LoveQuartzEmoji, target.Username)
		if remaining != nil {
			desc += fmt.Sprintf("\n\nㆍNow you have **%d**%s left!",
				remaining.LoveQuartz, config.LoveQuartzEmoji)
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "✦ Payment sent!",
				Description: desc,
				Color:       config.EmbedColor,
			}},
		})
	}
}
