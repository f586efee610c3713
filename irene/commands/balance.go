package commands

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/utils"
)

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "Check a glittering balance",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose balance to check (defaults to you)",
			Required:    false,
		},
	},
}

func BalanceHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		targetID := e.User().ID.String()
		targetName := e.User().Username
		if user, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			targetID = user.ID.String()
			targetName = user.Username
		}

		user, err := b.UserRepository.Get(ctx, targetID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the balance. Please try again later.")
		}
		totalCards, err := b.UserCardRepository.TotalOwned(ctx, targetID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the balance. Please try again later.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: fmt.Sprintf("✦ %s's treasure", targetName),
				Description: fmt.Sprintf(
					"ㆍYou have **%d**%s and **%d**%s to spend on your **glittering adventures**!\nㆍFor now, your **tarot deck** has **%d cards collected**.",
					user.LoveQuartz, config.LoveQuartzEmoji,
					user.VitalCrystal, config.VitalCrystalEmoji,
					totalCards),
				Color: config.EmbedColor,
			}},
		})
	}
}
