package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/utils"
)

var Description = discord.SlashCommandCreate{
	Name:        "description",
	Description: "Manage your profile description",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "set",
			Description: "Set your profile description",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "text",
					Description: "What do you want to say?",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Remove your profile description",
		},
	},
}

func DescriptionHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		userID := e.User().ID.String()

		switch *data.SubCommandName {
		case "set":
			text := strings.TrimSpace(data.String("text"))
			if text == "" {
				return utils.EH.CreateErrorEmbed(e, "The description cannot be empty.")
			}
			if len([]rune(text)) > config.MaxDescriptionLen {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("The description can have at most %d characters.", config.MaxDescriptionLen))
			}

			err := b.DB.BunDB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				user, err := b.UserRepository.GetOrCreate(ctx, tx, userID)
				if err != nil {
					return err
				}
				user.Description = text
				return b.UserRepository.Update(ctx, tx, user)
			})
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to set your description. Please try again later.")
			}
			return utils.EH.CreateSuccessEmbed(e, "Description set successfully!")

		case "remove":
			var had bool
			err := b.DB.BunDB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				user, err := b.UserRepository.GetOrCreate(ctx, tx, userID)
				if err != nil {
					return err
				}
				had = user.Description != ""
				user.Description = ""
				return b.UserRepository.Update(ctx, tx, user)
			})
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to remove your description. Please try again later.")
			}
			if !had {
				return utils.EH.CreateErrorEmbed(e, "You do not have a description yet!")
			}
			return utils.EH.CreateSuccessEmbed(e, "Description removed successfully!")
		}
		return nil
	}
}
