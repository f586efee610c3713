package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/utils"
)

var Cooldowns = discord.SlashCommandCreate{
	Name:        "cooldowns",
	Description: "See when your rewards are ready again",
}

func CooldownsHandler(b *irene.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		statuses, err := b.Rewards.Cooldowns(ctx, e.User().ID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your cooldowns. Please try again later.")
		}

		var sb strings.Builder
		for _, action := range []string{"drop", "hunt", "daily", "weekly"} {
			st := statuses[action]
			if st.Ready {
				fmt.Fprintf(&sb, "%s **%s** — ready!\n", config.ReadyHeartEmoji, action)
			} else {
				fmt.Fprintf(&sb, "%s **%s** — %s\n", config.NotReadyEmoji, action, utils.FormatRemaining(st.Remaining))
			}
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("✦ %s's cooldowns", e.User().Username),
				Description: sb.String(),
				Color:       config.EmbedColor,
			}},
		})
	}
}
