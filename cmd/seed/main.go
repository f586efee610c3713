// Command seed loads a JSON card catalog into the database. Entries without
// a code get one generated from their name, group, era and rarity.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/lovequartz/irene/irene"
	"github.com/lovequartz/irene/irene/database"
	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
	"github.com/lovequartz/irene/irene/logger"
	"github.com/lovequartz/irene/irene/utils"
)

type catalogEntry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Group  string `json:"group"`
	Era    string `json:"era"`
	Rarity string `json:"rarity"`
	Image  string `json:"image"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	configPath := flag.String("config", "config.toml", "path to config")
	catalogPath := flag.String("catalog", "cards.json", "path to the JSON card catalog")
	flag.Parse()

	cfg, err := irene.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	raw, err := os.ReadFile(*catalogPath)
	if err != nil {
		slog.Error("Failed to read catalog", slog.Any("error", err))
		os.Exit(-1)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Error("Failed to parse catalog", slog.Any("error", err))
		os.Exit(-1)
	}
	if len(entries) == 0 {
		slog.Error("Catalog is empty, nothing to seed")
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seen := make(map[string]bool, len(entries))
	cards := make([]*models.Card, 0, len(entries))
	generated := 0
	for _, entry := range entries {
		code := strings.ToUpper(strings.TrimSpace(entry.Code))
		if code == "" {
			// Re-roll the random suffix until the code is unique in this batch.
			for {
				code = utils.MakeCardCode(entry.Name, entry.Group, entry.Era, entry.Rarity, rng)
				if !seen[code] {
					break
				}
			}
			generated++
		}
		if seen[code] {
			slog.Warn("Skipping duplicate card code", slog.String("code", code))
			continue
		}
		seen[code] = true
		cards = append(cards, &models.Card{
			Code:   code,
			Name:   entry.Name,
			Group:  entry.Group,
			Era:    entry.Era,
			Rarity: models.NormalizeRarity(entry.Rarity),
			Image:  entry.Image,
		})
	}

	repo := repositories.NewCardRepository(db.BunDB())
	inserted, err := repo.CreateMany(ctx, cards)
	if err != nil {
		slog.Error("Failed to insert cards", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Catalog seeded",
		slog.Int("entries", len(entries)),
		slog.Int("inserted", inserted),
		slog.Int("generated_codes", generated))
}
