package utils

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene/config"
)

// ResponseHandler provides standardized response methods for commands.
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// CreateErrorEmbed creates a standard error embed for command events.
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: config.NotReadyEmoji + " ✦ " + message,
			Color:       config.ErrorColor,
		}},
	})
}

// CreateSuccessEmbed creates a standard success embed for command events.
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: config.ReadyHeartEmoji + " ✦ " + message,
			Color:       config.EmbedColor,
		}},
	})
}

// CreateInfoEmbed creates a standard info embed for command events.
func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.EmbedColor,
		}},
	})
}
