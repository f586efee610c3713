package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"

	"github.com/lovequartz/irene/irene/config"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
)

// ReminderService polls for due cooldown reminders and posts a one-shot
// notice back to the channel the claim was made in. Delivery failures are
// logged and the row is still deleted; reminders are best effort.
type ReminderService struct {
	rest      rest.Rest
	identity  *IdentityService
	reminders repositories.ReminderRepository
}

func NewReminderService(restClient rest.Rest, identity *IdentityService, reminders repositories.ReminderRepository) *ReminderService {
	return &ReminderService{
		rest:      restClient,
		identity:  identity,
		reminders: reminders,
	}
}

// Schedule records a reminder due after delay. Errors are logged, never
// returned; a missing reminder must not fail the claim that created it.
func (s *ReminderService) Schedule(ctx context.Context, userID, kind string, delay time.Duration, guildID, channelID string) {
	err := s.reminders.Create(ctx, &models.Reminder{
		UserID:    userID,
		Kind:      kind,
		DueAt:     time.Now().Add(delay),
		GuildID:   guildID,
		ChannelID: channelID,
	})
	if err != nil {
		slog.Error("Failed to schedule reminder",
			slog.String("type", "sys"),
			slog.String("user_id", userID),
			slog.String("kind", kind),
			slog.String("error", err.Error()))
	}
}

// Start runs the polling loop until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(config.ReminderPollInterval)
	defer ticker.Stop()

	slog.Info("Reminder scheduler started", slog.String("type", "sys"))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fireDue(ctx)
		}
	}
}

func (s *ReminderService) fireDue(ctx context.Context) {
	due, err := s.reminders.Due(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to load due reminders",
			slog.String("type", "sys"),
			slog.String("error", err.Error()))
		return
	}
	if len(due) == 0 {
		return
	}

	fired := make([]int64, 0, len(due))
	for _, r := range due {
		s.deliver(ctx, r)
		fired = append(fired, r.ID)
	}
	if err := s.reminders.Delete(ctx, fired); err != nil {
		slog.Error("Failed to delete fired reminders",
			slog.String("type", "sys"),
			slog.String("error", err.Error()))
	}
}

func (s *ReminderService) deliver(ctx context.Context, r *models.Reminder) {
	channelID, err := snowflake.Parse(r.ChannelID)
	if err != nil {
		return
	}
	// Address by display name when it resolves; the mention stays so the
	// notice still pings.
	who := fmt.Sprintf("<@%s>", r.UserID)
	if name := s.identity.Resolve(ctx, r.UserID); name != r.UserID {
		who = fmt.Sprintf("**%s** (<@%s>)", name, r.UserID)
	}
	content := reminderText(r.Kind, who)
	if content == "" {
		return
	}
	if _, err := s.rest.CreateMessage(channelID, discord.MessageCreate{
		Content: content,
	}, rest.WithCtx(ctx)); err != nil {
		slog.Error("Failed to deliver reminder",
			slog.String("type", "sys"),
			slog.String("user_id", r.UserID),
			slog.String("kind", r.Kind),
			slog.String("error", err.Error()))
	}
}

func reminderText(kind, mention string) string {
	switch kind {
	case models.ReminderDrop:
		return fmt.Sprintf("%s ✦ Hey, %s. You can **draw a card** from our tarot deck again with **/drop**!", config.ReadyHeartEmoji, mention)
	case models.ReminderDaily:
		return fmt.Sprintf("%s ✦ Hey, %s. Is another day full of magic! Claim your **daily rewards** with **/daily** now!", config.ReadyHeartEmoji, mention)
	case models.ReminderWeekly:
		return fmt.Sprintf("%s ✦ Hey, %s. The seven wonders are complete again! Claim your **weekly rewards** with **/weekly** now!", config.ReadyHeartEmoji, mention)
	case models.ReminderHunt:
		return fmt.Sprintf("%s ✦ Hey, %s. Needing new crystals? Find some again with **/hunt** now!", config.ReadyHeartEmoji, mention)
	}
	return ""
}
