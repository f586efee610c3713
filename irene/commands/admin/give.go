package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var Give = discord.SlashCommandCreate{
	Name:        "give",
	Description: "Grant currency and/or cards to a user (owner only)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to grant to",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "love_quartz",
			Description: "Amount of Love Quartz to grant",
			Required:    false,
			MinValue:    &[]int{1}[0],
		},
		discord.ApplicationCommandOptionInt{
			Name:        "vital_crystals",
			Description: "Amount of Vital Crystals to grant",
			Required:    false,
			MinValue:    &[]int{1}[0],
		},
		discord.ApplicationCommandOptionString{
			Name:        "code",
			Description: "Card code to grant",
			Required:    false,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "card_amount",
			Description: "Number of copies of the card (default: 1)",
			Required:    false,
			MinValue:    &[]int{1}[0],
		},
	},
}

func GiveHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsOwner(e.User().ID.String()) {
			return utils.EH.CreateErrorEmbed(e, "Only the keeper of the deck can use this.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		targetID := target.ID.String()

		var granted []string

		if v, ok := data.OptInt("love_quartz"); ok {
			if err := b.Ledger.Credit(ctx, targetID, models.CurrencyLove, int64(v)); err != nil {
				slog.Error("Grant failed",
					slog.String("type", "cmd"),
					slog.String("target", targetID),
					slog.Any("error", err))
				return utils.EH.CreateErrorEmbed(e, "Failed to grant Love Quartz.")
			}
			granted = append(granted, utils.FormatPrice(int64(v), models.CurrencyLove))
		}

		if v, ok := data.OptInt("vital_crystals"); ok {
			if err := b.Ledger.Credit(ctx, targetID, models.CurrencyVital, int64(v)); err != nil {
				slog.Error("Grant failed",
					slog.String("type", "cmd"),
					slog.String("target", targetID),
					slog.Any("error", err))
				return utils.EH.CreateErrorEmbed(e, "Failed to grant Vital Crystals.")
			}
			granted = append(granted, utils.FormatPrice(int64(v), models.CurrencyVital))
		}

		if code, ok := data.OptString("code"); ok {
			amount := int64(1)
			if v, ok := data.OptInt("card_amount"); ok {
				amount = int64(v)
			}
			if err := b.Ledger.AddCards(ctx, targetID, code, amount); err != nil {
				if errors.Is(err, repositories.ErrCardNotFound) {
					return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
				}
				slog.Error("Grant failed",
					slog.String("type", "cmd"),
					slog.String("target", targetID),
					slog.Any("error", err))
				return utils.EH.CreateErrorEmbed(e, "Failed to grant the cards.")
			}
			granted = append(granted, fmt.Sprintf("%dx `%s`", amount, strings.ToUpper(code)))
		}

		if len(granted) == 0 {
			return utils.EH.CreateErrorEmbed(e, "Nothing to grant. Give an amount or a card code.")
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
			"Granted %s to **%s**.", strings.Join(granted, ", "), target.Username))
	}
}
