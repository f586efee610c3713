package config

import "time"

// Cooldown intervals, one per gated action.
const (
	DropCooldown   = 5 * time.Minute
	HuntCooldown   = 30 * time.Minute
	DailyCooldown  = 24 * time.Hour
	WeeklyCooldown = 7 * 24 * time.Hour
)

// Reward amounts.
const (
	DailyQuartz  = 1500
	WeeklyQuartz = 15000
	WeeklyVital  = 1
	HuntQuartz   = 1000
	HuntVital    = 5

	// Probability of a hunt paying out Vital Crystals instead of Love Quartz.
	// The two branches are mutually exclusive.
	HuntVitalChance = 0.25
)

// Drop rarity table: a draw r in [0,100) selects the tier.
const (
	DropCommonBound = 50 // r < 50 -> common
	DropRareBound   = 80 // r < 80 -> rare, else epic
)

// Shop rotation. The listing regenerates wholesale once stale and is
// immutable in between.
const (
	ShopRotation    = 7 * 24 * time.Hour
	ShopEpicSlots   = 1
	ShopRareSlots   = 2
	ShopCommonSlots = 4
	ShopEpicPrice   = 3 // Vital Crystals
	ShopRarePrice   = 15000
	ShopCommonPrice = 3000
)

// UI and display.
const (
	EmbedColor   = 0xEA8BB9
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00

	CardsPerPage   = 5
	MarketPageSize = 5

	MaxDescriptionLen = 200
)

// Currency and status emoji used across embeds.
const (
	LoveQuartzEmoji   = "<:LoveQuartz:1459653905586589847>"
	VitalCrystalEmoji = "<:VitalCrystal:1459653872191537314>"
	ReadyHeartEmoji   = "<:ReadyHeart:1460028170609885275>"
	NotReadyEmoji     = "<:NotReadyHeart:1460780856338809077>"
)

// Timeouts.
const (
	DefaultQueryTimeout     = 30 * time.Second
	SearchTimeout           = 10 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	ReminderPollInterval    = 60 * time.Second
	IdentityLookupTimeout   = 5 * time.Second
)

// Caches.
const (
	IdentityCacheSize = 1024
)
