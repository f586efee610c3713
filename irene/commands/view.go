package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var View = discord.SlashCommandCreate{
	Name:        "view",
	Description: "View a single card",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "code",
			Description: "The card code, e.g. TMSC#123",
			Required:    true,
		},
	},
}

func ViewHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		code := e.SlashCommandInteractionData().String("code")
		card, err := b.CardRepository.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repositories.ErrCardNotFound) {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
			}
			return utils.EH.CreateErrorEmbed(e, "Failed to load the card. Please try again later.")
		}

		owned, err := b.UserCardRepository.GetAmount(ctx, b.DB.BunDB(), e.User().ID.String(), card.Code)
		if err != nil {
			owned = 0
		}

		embed := discord.Embed{
			Title: fmt.Sprintf("✦ %s", card.Name),
			Description: fmt.Sprintf(
				"ㆍ**Group:** *%s*\nㆍ**Era:** *%s*\nㆍ**Rarity:** *%s*\nㆍ**Code:** `%s`\nㆍ**You own:** %d",
				card.Group, card.Era, card.Rarity, card.Code, owned),
			Color: config.EmbedColor,
		}
		if url := b.ImageService.ImageURL(card); url != "" && b.ImageService.VerifyImage(ctx, card) {
			embed.Image = &discord.EmbedResource{URL: url}
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
