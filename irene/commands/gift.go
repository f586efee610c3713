package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var Gift = discord.SlashCommandCreate{
	Name:        "gift",
	Description: "Gift cards from your collection to another user",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to gift to",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "code",
			Description: "The card code",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How many copies (default: 1)",
			Required:    false,
			MinValue:    &[]int{1}[0],
		},
	},
}

func GiftHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		code := data.String("code")
		amount := int64(1)
		if v, ok := data.OptInt("amount"); ok {
			amount = int64(v)
		}

		err := b.Ledger.TransferCards(ctx, e.User().ID.String(), target.ID.String(), code, amount)
		if err != nil {
			if errors.Is(err, repositories.ErrCardNotFound) {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
			}
			slog.Error("Gift failed",
				slog.String("type", "cmd"),
				slog.String("from", e.User().ID.String()),
				slog.String("to", target.ID.String()),
				slog.Any("error", err))
			return replyDomainError(e, err)
		}

		card, _ := b.CardRepository.GetByCode(ctx, code)
		name := code
		if card != nil {
			name = card.Name
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "✦ Gift sent!",
				Description: fmt.Sprintf(
					"ㆍYou gifted %dx **%s** to **%s** successfully.\n\nㆍ**Card code:** `%s`",
					amount, name, target.Username, code),
				Color: config.EmbedColor,
			}},
		})
	}
}
