package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/utils"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "The rotating tarot card shop",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "view",
			Description: "Browse this week's shop",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "buy",
			Description: "Buy a card from the shop",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "item",
					Description: "The shop slot number",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
			},
		},
	},
}

func ShopHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()

		switch *data.SubCommandName {
		case "view":
			state, err := b.Shop.Current(ctx)
			if err != nil {
				slog.Error("Shop view failed",
					slog.String("type", "cmd"),
					slog.Any("error", err))
				return utils.EH.CreateErrorEmbed(e, "The shopkeeper is away. Please try again later.")
			}
			if len(state.Items) == 0 {
				return utils.EH.CreateErrorEmbed(e, "The shop shelves are empty right now.")
			}

			var sb strings.Builder
			for i, item := range state.Items {
				name := item.Code
				if card, err := b.CardRepository.GetByCode(ctx, item.Code); err == nil {
					name = card.Name
				}
				fmt.Fprintf(&sb, "`%d.` **%s** (`%s`, *%s*) — %s\n",
					i+1, name, item.Code, item.Rarity, utils.FormatPrice(item.Price, item.Currency))
			}
			nextRotation := state.LastUpdate.Add(config.ShopRotation)

			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "✦ The tarot card shop",
					Description: sb.String(),
					Color:       config.EmbedColor,
					Footer: &discord.EmbedFooter{
						Text: "Buy with /shop buy <slot>",
					},
					Fields: []discord.EmbedField{{
						Name:  "ㆍNext rotation:",
						Value: utils.DiscordRelativeTime(nextRotation),
					}},
				}},
			})

		case "buy":
			index := data.Int("item")
			item, err := b.Shop.Buy(ctx, e.User().ID.String(), index)
			if err != nil {
				return replyDomainError(e, err)
			}

			name := item.Code
			if card, err := b.CardRepository.GetByCode(ctx, item.Code); err == nil {
				name = card.Name
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
				"You bought **%s** (`%s`) for %s!",
				name, item.Code, utils.FormatPrice(item.Price, item.Currency)))
		}
		return nil
	}
}
