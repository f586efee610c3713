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

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "View an enchanted profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose profile to view (defaults to you)",
			Required:    false,
		},
	},
}

func ProfileHandler(b *irene.Bot) handler.CommandHandler {
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
			return utils.EH.CreateErrorEmbed(e, "Failed to load the profile. Please try again later.")
		}
		totalCards, err := b.UserCardRepository.TotalOwned(ctx, targetID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the profile. Please try again later.")
		}

		description := "*No description set!*"
		if user.Description != "" {
			description = user.Description
		}

		favText := fmt.Sprintf("%s ✦ *This user does not have a favorite yet!*", config.NotReadyEmoji)
		var favImage string
		if user.Favorite != "" {
			if fav, err := b.CardRepository.GetByCode(ctx, user.Favorite); err == nil {
				favText = fmt.Sprintf("%s — %s (*%s*)", fav.Name, fav.Group, fav.Rarity)
				favImage = b.ImageService.ImageURL(fav)
			}
		}

		embed := discord.Embed{
			Title: fmt.Sprintf("✦ %s's Enchanted Profile", targetName),
			Description: fmt.Sprintf(
				"ㆍThis user has **%d**%s and **%d**%s!\n\nㆍTheir **tarot deck** has **%d cards collected**, so good!\n\nㆍ**They want to say:** %s\n\nㆍNow, look at their **favorite card**: %s",
				user.LoveQuartz, config.LoveQuartzEmoji,
				user.VitalCrystal, config.VitalCrystalEmoji,
				totalCards, description, favText),
			Color: config.EmbedColor,
			Footer: &discord.EmbedFooter{
				Text: "✦ Irene loved this beautiful profile!",
			},
		}
		if favImage != "" {
			embed.Thumbnail = &discord.EmbedResource{URL: favImage}
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
		})
	}
}
