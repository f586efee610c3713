package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var Favorite = discord.SlashCommandCreate{
	Name:        "favorite",
	Description: "Manage your favorite tarot card",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "set",
			Description: "Set a card from your collection as your favorite",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "code",
					Description: "The card code",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Remove your favorite card",
		},
	},
}

func FavoriteHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		userID := e.User().ID.String()

		switch *data.SubCommandName {
		case "set":
			code := data.String("code")
			card, err := b.CardRepository.GetByCode(ctx, code)
			if err != nil {
				if errors.Is(err, repositories.ErrCardNotFound) {
					return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
				}
				return utils.EH.CreateErrorEmbed(e, "Failed to set your favorite. Please try again later.")
			}
			owned, err := b.UserCardRepository.GetAmount(ctx, b.DB.BunDB(), userID, card.Code)
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to set your favorite. Please try again later.")
			}
			if owned <= 0 {
				return utils.EH.CreateErrorEmbed(e, "You need to have this card in your collection to set it as a favorite!")
			}

			err = b.DB.BunDB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				user, err := b.UserRepository.GetOrCreate(ctx, tx, userID)
				if err != nil {
					return err
				}
				user.Favorite = card.Code
				return b.UserRepository.Update(ctx, tx, user)
			})
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to set your favorite. Please try again later.")
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("**%s** has been set as your favorite card!", card.Name))

		case "remove":
			var had bool
			err := b.DB.BunDB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				user, err := b.UserRepository.GetOrCreate(ctx, tx, userID)
				if err != nil {
					return err
				}
				had = user.Favorite != ""
				user.Favorite = ""
				return b.UserRepository.Update(ctx, tx, user)
			})
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to remove your favorite. Please try again later.")
			}
			if !had {
				return utils.EH.CreateErrorEmbed(e, "You do not have a favorite tarot card yet!")
			}
			return utils.EH.CreateSuccessEmbed(e, "Favorite card removed successfully!")
		}
		return nil
	}
}
