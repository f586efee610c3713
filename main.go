package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/commands"
	"github.com/lovequartz/irene/irene/commands/admin"
	"github.com/lovequartz/irene/irene/database"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/economy/bag"
	"github.com/lovequartz/irene/irene/economy/ledger"
	"github.com/lovequartz/irene/irene/economy/market"
	"github.com/lovequartz/irene/irene/economy/rewards"
	"github.com/lovequartz/irene/irene/economy/shop"
	"github.com/lovequartz/irene/irene/handlers"
	"github.com/lovequartz/irene/irene/logger"
	"github.com/lovequartz/irene/irene/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Irene",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := irene.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	b := irene.New(*cfg, version, commit)
	b.DB = db

	imageService, err := services.NewCardImageService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.CardRoot,
	)
	if err != nil {
		slog.Error("Failed to initialize image service", slog.Any("error", err))
		os.Exit(-1)
	}
	b.ImageService = imageService

	// Repositories
	bunDB := db.BunDB()
	b.CardRepository = repositories.NewCardRepository(bunDB)
	b.UserRepository = repositories.NewUserRepository(bunDB)
	b.UserCardRepository = repositories.NewUserCardRepository(bunDB)
	b.BagRepository = repositories.NewBagRepository(bunDB)
	b.ShopRepository = repositories.NewShopRepository(bunDB)
	b.MarketRepository = repositories.NewMarketRepository(bunDB)
	b.ReminderRepository = repositories.NewReminderRepository(bunDB)
	b.StateRepository = repositories.NewStateRepository(bunDB)

	// An empty catalog would make every draw fail; refuse to start without one.
	count, err := b.CardRepository.Count(ctx)
	if err != nil {
		slog.Error("Failed to count catalog cards", slog.Any("error", err))
		os.Exit(-1)
	}
	if count == 0 {
		slog.Error("Card catalog is empty; seed it with cmd/seed before starting")
		os.Exit(-1)
	}
	slog.Info("Card catalog loaded", slog.Int("cards", count))

	// Engines
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b.Rewards = rewards.NewService(bunDB, b.UserRepository, b.CardRepository, b.UserCardRepository, b.StateRepository, rng)
	b.Ledger = ledger.NewService(bunDB, b.UserRepository, b.CardRepository, b.UserCardRepository)
	b.Bag = bag.NewService(bunDB, b.UserRepository, b.BagRepository, b.UserCardRepository)
	b.Shop = shop.NewService(bunDB, b.CardRepository, b.UserRepository, b.UserCardRepository, b.ShopRepository, rng)
	b.Market = market.NewService(bunDB, b.CardRepository, b.UserRepository, b.UserCardRepository, b.MarketRepository)
	b.SearchService = services.NewSearchService(b.CardRepository)

	h := handler.New()

	gated := func(name string, ch handler.CommandHandler) handler.CommandHandler {
		return handlers.WrapWithLogging(name, handlers.WrapWithMaintenanceGate(b.StateRepository, ch))
	}

	// Reward commands
	h.Command("/drop", gated("drop", commands.DropHandler(b)))
	h.Command("/hunt", gated("hunt", commands.HuntHandler(b)))
	h.Command("/daily", gated("daily", commands.DailyHandler(b)))
	h.Command("/weekly", gated("weekly", commands.WeeklyHandler(b)))
	h.Command("/cooldowns", gated("cooldowns", commands.CooldownsHandler(b)))

	// Profile and collection commands
	h.Command("/balance", gated("balance", commands.BalanceHandler(b)))
	h.Command("/profile", gated("profile", commands.ProfileHandler(b)))
	h.Command("/inventory", gated("inventory", commands.InventoryHandler(b)))
	h.Command("/progress", gated("progress", commands.ProgressHandler(b)))
	h.Command("/search", gated("search", commands.SearchHandler(b)))
	h.Command("/view", gated("view", commands.ViewHandler(b)))
	h.Command("/favorite", gated("favorite", commands.FavoriteHandler(b)))
	h.Command("/description", gated("description", commands.DescriptionHandler(b)))

	// Trading commands
	h.Command("/gift", gated("gift", commands.GiftHandler(b)))
	h.Command("/pay", gated("pay", commands.PayHandler(b)))
	h.Command("/bag", gated("bag", commands.BagHandler(b)))
	h.Command("/shop", gated("shop", commands.ShopHandler(b)))
	h.Command("/market", gated("market", commands.MarketHandler(b)))

	// Owner commands; resume stays outside the maintenance gate so the owner
	// can always bring the bot back.
	h.Command("/give", handlers.WrapWithLogging("give", admin.GiveHandler(b)))
	h.Command("/pause", handlers.WrapWithLogging("pause", admin.PauseHandler(b)))
	h.Command("/resume", handlers.WrapWithLogging("resume", admin.ResumeHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	// Identity and reminder services need the REST client from the bot.
	b.IdentityService = services.NewIdentityService(b.Client.Rest())
	b.ReminderService = services.NewReminderService(b.Client.Rest(), b.IdentityService, b.ReminderRepository)

	reminderCtx, reminderCancel := context.WithCancel(context.Background())
	defer reminderCancel()
	go b.ReminderService.Start(reminderCtx)

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}
