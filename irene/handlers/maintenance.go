package handlers

import (
	"context"
	"log/slog"

	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/utils"
)

// WrapWithMaintenanceGate rejects the command while the maintenance flag is
// set. Owner commands bypass the gate so the owner can always resume.
func WrapWithMaintenanceGate(state repositories.StateRepository, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		st, err := state.Get(context.Background())
		if err != nil {
			slog.Error("Failed to read maintenance state",
				slog.String("type", "sys"),
				slog.String("error", err.Error()))
			// Reads failing should not take the bot offline.
			return h(e)
		}
		if st.Paused {
			return utils.EH.CreateErrorEmbed(e, "The tarot deck is resting for maintenance. Please try again in a little while.")
		}
		return h(e)
	}
}
