package irene

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/lovequartz/irene/irene/database"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy/bag"
	"github.com/lovequartz/irene/irene/economy/ledger"
	"github.com/lovequartz/irene/irene/economy/market"
	"github.com/lovequartz/irene/irene/economy/rewards"
	"github.com/lovequartz/irene/irene/economy/shop"
	"github.com/lovequartz/irene/irene/services"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	CardRepository     repositories.CardRepository
	UserRepository     repositories.UserRepository
	UserCardRepository repositories.UserCardRepository
	BagRepository      repositories.BagRepository
	ShopRepository     repositories.ShopRepository
	MarketRepository   repositories.MarketRepository
	ReminderRepository repositories.ReminderRepository
	StateRepository    repositories.StateRepository

	Rewards *rewards.Service
	Ledger  *ledger.Service
	Bag     *bag.Service
	Shop    *shop.Service
	Market  *market.Service

	IdentityService *services.IdentityService
	ReminderService *services.ReminderService
	ImageService    *services.CardImageService
	SearchService   *services.SearchService
}

// IsOwner reports whether userID is the configured bot owner.
func (b *Bot) IsOwner(userID string) bool {
	return b.Cfg.Bot.OwnerID != 0 && b.Cfg.Bot.OwnerID.String() == userID
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Irene is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity("the whispers of the tarot"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
