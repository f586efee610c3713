package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/services"
	"github.com/lovequartz/irene/irene/utils"
)

var Progress = discord.SlashCommandCreate{
	Name:        "progress",
	Description: "Check collection completion statistics",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose progress to check (defaults to you)",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Filter by card name",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "group",
			Description: "Filter by group",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "era",
			Description: "Filter by era",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "rarity",
			Description: "Filter by rarity (common/rare/epic)",
			Required:    false,
		},
	},
}

func ProgressHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		targetID := e.User().ID.String()
		targetName := e.User().Username
		if user, ok := data.OptUser("user"); ok {
			targetID = user.ID.String()
			targetName = user.Username
		}

		catalog, err := b.CardRepository.GetAll(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the catalog. Please try again later.")
		}

		filters := services.SearchFilters{
			Name:   data.String("name"),
			Group:  data.String("group"),
			Era:    data.String("era"),
			Rarity: data.String("rarity"),
		}
		cards := services.FilterCards(catalog, filters)
		if len(cards) == 0 {
			return utils.EH.CreateErrorEmbed(e, "No cards found with these filters!")
		}

		userCards, err := b.UserCardRepository.GetAllByUserID(ctx, targetID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the collection. Please try again later.")
		}
		owned := make(map[string]int64, len(userCards))
		for _, uc := range userCards {
			owned[uc.CardCode] = uc.Amount
		}

		stats := services.CollectionProgress(cards, owned)

		var sb strings.Builder
		sb.WriteString(utils.ProgressBar(stats.Percent()))
		fmt.Fprintf(&sb, "\n\nㆍ**Total:** %d/%d **tarot cards** collected!\n\n", stats.Owned, stats.Total)
		for _, g := range stats.Groups {
			fmt.Fprintf(&sb, "ㆍ**%s:** %d/%d (%d%%)\n", g.Name, g.Owned, g.Total, g.Percent())
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("✦ %s's Collection Progress", targetName),
				Description: sb.String(),
				Color:       config.EmbedColor,
				Footer:      &discord.EmbedFooter{Text: "✦ Keep playing for more cards!"},
			}},
		})
	}
}
