package commands

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/services"
	"github.com/lovequartz/irene/irene/utils"
)

var Search = discord.SlashCommandCreate{
	Name:        "search",
	Description: "Search the card catalog",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Card name to look for",
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

func SearchHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.SearchTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		filters := services.SearchFilters{
			Name:   data.String("name"),
			Group:  data.String("group"),
			Era:    data.String("era"),
			Rarity: data.String("rarity"),
		}

		cards, err := b.SearchService.Search(ctx, filters)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "The search failed. Please try again later.")
		}
		if len(cards) == 0 {
			return utils.EH.CreateErrorEmbed(e, "No cards match that search.")
		}

		totalPages := int(math.Ceil(float64(len(cards)) / float64(config.CardsPerPage)))
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.CardsPerPage
				end := min(start+config.CardsPerPage, len(cards))

				var sb strings.Builder
				for _, card := range cards[start:end] {
					sb.WriteString(formatCardLine(card) + "\n")
				}

				embed.
					SetTitle("✦ Card search").
					SetDescription(sb.String()).
					SetColor(config.EmbedColor).
					SetFooter(fmt.Sprintf("Page %d/%d · %d results", page+1, totalPages, len(cards)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
