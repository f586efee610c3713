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
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/services"
	"github.com/lovequartz/irene/irene/utils"
)

var Inventory = discord.SlashCommandCreate{
	Name:        "inventory",
	Description: "Browse a tarot deck collection",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose collection to browse (defaults to you)",
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

func InventoryHandler(b *irene.Bot) handler.CommandHandler {
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

		userCards, err := b.UserCardRepository.GetAllByUserID(ctx, targetID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the collection. Please try again later.")
		}
		if len(userCards) == 0 {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("**%s**'s tarot deck is empty. Draw a card with `/drop`!", targetName))
		}

		owned := make(map[string]int64, len(userCards))
		codes := make([]string, 0, len(userCards))
		for _, uc := range userCards {
			owned[uc.CardCode] = uc.Amount
			codes = append(codes, uc.CardCode)
		}

		catalog, err := b.CardRepository.GetAll(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the collection. Please try again later.")
		}

		collected := make([]*models.Card, 0, len(codes))
		for _, c := range catalog {
			if _, ok := owned[c.Code]; ok {
				collected = append(collected, c)
			}
		}

		filters := services.SearchFilters{
			Name:   data.String("name"),
			Group:  data.String("group"),
			Era:    data.String("era"),
			Rarity: data.String("rarity"),
		}
		cards := services.FilterCards(collected, filters)
		if len(cards) == 0 {
			return utils.EH.CreateErrorEmbed(e, "No cards in the collection match those filters.")
		}

		favorite := ""
		if user, err := b.UserRepository.Get(ctx, targetID); err == nil {
			favorite = user.Favorite
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
					line := formatCardLine(card)
					if card.Code == favorite {
						line += " " + config.ReadyHeartEmoji
					}
					fmt.Fprintf(&sb, "%s ×%d\n", line, owned[card.Code])
				}

				embed.
					SetTitle(fmt.Sprintf("✦ %s's tarot deck", targetName)).
					SetDescription(sb.String()).
					SetColor(config.EmbedColor).
					SetFooter(fmt.Sprintf("Page %d/%d · %d cards", page+1, totalPages, len(cards)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
