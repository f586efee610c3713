package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

var BagCmd = discord.SlashCommandCreate{
	Name:        "bag",
	Description: "Your #MagicBag: a vault for cards and currency",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "view",
			Description: "Peek inside your #MagicBag",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "store",
			Description: "Store currency or a card in your #MagicBag",
			Options:     bagItemOptions,
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "withdraw",
			Description: "Take currency or a card out of your #MagicBag",
			Options:     bagItemOptions,
		},
	},
}

var bagItemOptions = []discord.ApplicationCommandOption{
	discord.ApplicationCommandOptionString{
		Name:        "currency",
		Description: "Which currency to move",
		Required:    false,
		Choices: []discord.ApplicationCommandOptionChoiceString{
			{Name: "Love Quartz", Value: string(models.CurrencyLove)},
			{Name: "Vital Crystals", Value: string(models.CurrencyVital)},
		},
	},
	discord.ApplicationCommandOptionString{
		Name:        "code",
		Description: "Which card to move",
		Required:    false,
	},
	discord.ApplicationCommandOptionInt{
		Name:        "amount",
		Description: "How much to move (default: 1)",
		Required:    false,
		MinValue:    &[]int{1}[0],
	},
}

func BagHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		userID := e.User().ID.String()

		switch *data.SubCommandName {
		case "view":
			return bagView(ctx, b, e, userID)
		case "store", "withdraw":
			store := *data.SubCommandName == "store"

			amount := int64(1)
			if v, ok := data.OptInt("amount"); ok {
				amount = int64(v)
			}

			if currency, ok := data.OptString("currency"); ok {
				c, valid := parseCurrency(currency)
				if !valid {
					return utils.EH.CreateErrorEmbed(e, "Unknown currency. Pick Love Quartz or Vital Crystals.")
				}
				return bagMoveCurrency(ctx, b, e, userID, c, amount, store)
			}
			if code, ok := data.OptString("code"); ok {
				return bagMoveCards(ctx, b, e, userID, code, amount, store)
			}
			return utils.EH.CreateErrorEmbed(e, "Tell me what to move: a currency or a card code.")
		}
		return nil
	}
}

func bagView(ctx context.Context, b *irene.Bot, e *handler.CommandEvent, userID string) error {
	bagRec, err := b.Bag.View(ctx, userID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to open your #MagicBag. Please try again later.")
	}

	var cardLines []string
	for code, count := range bagRec.Cards {
		if count <= 0 {
			continue
		}
		line := fmt.Sprintf("`%s` ×%d", code, count)
		if card, err := b.CardRepository.GetByCode(ctx, code); err == nil {
			line = fmt.Sprintf("**%s** (`%s`) ×%d", card.Name, code, count)
		}
		cardLines = append(cardLines, line)
	}

	description := fmt.Sprintf("%s ✦ Your #MagicBag is empty!", config.NotReadyEmoji)
	if len(cardLines) > 0 || bagRec.LoveQuartz > 0 || bagRec.VitalCrystal > 0 {
		description = fmt.Sprintf("%s ✦ Your #MagicBag contains:", config.ReadyHeartEmoji)
	}

	cardsValue := "*No cards stored!*"
	if len(cardLines) > 0 {
		cardsValue = strings.Join(cardLines, "\n")
	}

	inline := true
	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "✦ #MagicBag! Hey, hey, hey!",
			Description: description,
			Color:       config.EmbedColor,
			Fields: []discord.EmbedField{
				{Name: fmt.Sprintf("ㆍ%s Love Quartz amount:", config.LoveQuartzEmoji), Value: fmt.Sprintf("%d", bagRec.LoveQuartz), Inline: &inline},
				{Name: fmt.Sprintf("ㆍ%s Vital Crystals amount:", config.VitalCrystalEmoji), Value: fmt.Sprintf("%d", bagRec.VitalCrystal), Inline: &inline},
				{Name: "ㆍCards:", Value: cardsValue},
			},
			Footer: &discord.EmbedFooter{Text: "✦ Put your hand in the #MagicBag!"},
		}},
	})
}

func bagMoveCurrency(ctx context.Context, b *irene.Bot, e *handler.CommandEvent, userID string, currency models.Currency, amount int64, store bool) error {
	var err error
	if store {
		err = b.Bag.StoreCurrency(ctx, userID, currency, amount)
	} else {
		err = b.Bag.WithdrawCurrency(ctx, userID, currency, amount)
	}
	if err != nil {
		return replyDomainError(e, err)
	}

	if store {
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("**%d**%s stored in your #MagicBag!", amount, utils.CurrencyEmoji(currency)))
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("**%d**%s returned to your pockets!", amount, utils.CurrencyEmoji(currency)))
}

func bagMoveCards(ctx context.Context, b *irene.Bot, e *handler.CommandEvent, userID, code string, amount int64, store bool) error {
	card, err := b.CardRepository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card with code `%s` exists.", code))
		}
		return utils.EH.CreateErrorEmbed(e, "Failed to reach your #MagicBag. Please try again later.")
	}

	if store {
		err = b.Bag.StoreCards(ctx, userID, card.Code, amount)
	} else {
		err = b.Bag.WithdrawCards(ctx, userID, card.Code, amount)
	}
	if err != nil {
		return replyDomainError(e, err)
	}

	if store {
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%dx **%s** stored in your #MagicBag!", amount, card.Name))
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%dx **%s** returned to your tarot deck!", amount, card.Name))
}
