package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var Market = discord.SlashCommandCreate{
	Name:        "market",
	Description: "The player-to-player card market",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "view",
			Description: "View a seller's market stall",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "seller",
					Description: "Whose stall to view (defaults to you)",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "List cards from your collection for sale",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "code",
					Description: "The card code",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "quantity",
					Description: "How many copies to list",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
				discord.ApplicationCommandOptionInt{
					Name:        "price",
					Description: "The asking price",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
				discord.ApplicationCommandOptionString{
					Name:        "currency",
					Description: "The asking currency",
					Required:    true,
					Choices: []discord.ApplicationCommandOptionChoiceString{
						{Name: "Love Quartz", Value: string(models.CurrencyLove)},
						{Name: "Vital Crystals", Value: string(models.CurrencyVital)},
					},
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Delist one of your market entries",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "entry",
					Description: "The entry number from your stall",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "buy",
			Description: "Buy a market entry from a seller",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "seller",
					Description: "The seller",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "entry",
					Description: "The entry number from their stall",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
			},
		},
	},
}

func MarketHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		userID := e.User().ID.String()

		switch *data.SubCommandName {
		case "view":
			sellerID := userID
			sellerName := e.User().Username
			if user, ok := data.OptUser("seller"); ok {
				sellerID = user.ID.String()
				sellerName = user.Username
			}
			return marketView(ctx, b, e, sellerID, sellerName)

		case "add":
			code := data.String("code")
			qty := int64(data.Int("quantity"))
			price := int64(data.Int("price"))
			currency, valid := parseCurrency(data.String("currency"))
			if !valid {
				return utils.EH.CreateErrorEmbed(e, "Unknown currency. Pick Love Quartz or Vital Crystals.")
			}

			if err := b.Market.Add(ctx, userID, code, qty, price, currency); err != nil {
				if errors.Is(err, repositories.ErrCardNotFound) {
					return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
				}
				return replyDomainError(e, err)
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
				"Listed %dx `%s` for %s each entry. Happy selling!",
				qty, strings.ToUpper(code), utils.FormatPrice(price, currency)))

		case "remove":
			index := data.Int("entry")
			item, err := b.Market.Remove(ctx, userID, index)
			if err != nil {
				return replyDomainError(e, err)
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
				"Delisted %dx `%s`. The cards are back in your tarot deck.",
				item.Quantity, item.CardCode))

		case "buy":
			seller := data.User("seller")
			index := data.Int("entry")
			item, err := b.Market.Buy(ctx, userID, seller.ID.String(), index)
			if err != nil {
				return replyDomainError(e, err)
			}

			name := item.CardCode
			if card, err := b.CardRepository.GetByCode(ctx, item.CardCode); err == nil {
				name = card.Name
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
				"You bought %dx **%s** (`%s`) from **%s** for %s!",
				item.Quantity, name, item.CardCode, seller.Username,
				utils.FormatPrice(item.Price, item.Currency)))
		}
		return nil
	}
}

func marketView(ctx context.Context, b *irene.Bot, e *handler.CommandEvent, sellerID, sellerName string) error {
	items, err := b.Market.View(ctx, sellerID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to load the market. Please try again later.")
	}
	if len(items) == 0 {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("**%s** has nothing for sale right now.", sellerName))
	}

	lines := make([]string, len(items))
	for i, item := range items {
		name := item.CardCode
		if card, err := b.CardRepository.GetByCode(ctx, item.CardCode); err == nil {
			name = card.Name
		}
		lines[i] = fmt.Sprintf("`%d.` %dx **%s** (`%s`) — %s",
			i+1, item.Quantity, name, item.CardCode, utils.FormatPrice(item.Price, item.Currency))
	}

	totalPages := int(math.Ceil(float64(len(lines)) / float64(config.MarketPageSize)))
	return b.Paginator.Create(e.Respond, paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			start := page * config.MarketPageSize
			end := min(start+config.MarketPageSize, len(lines))

			embed.
				SetTitle(fmt.Sprintf("✦ %s's market stall", sellerName)).
				SetDescription(strings.Join(lines[start:end], "\n")).
				SetColor(config.EmbedColor).
				SetFooter(fmt.Sprintf("Page %d/%d · buy with /market buy", page+1, totalPages), "")
		},
		Pages:      totalPages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}, false)
}
