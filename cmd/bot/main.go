// cmd/bot/main.go
package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"discord-calendar-bot/internal/bot"
	"discord-calendar-bot/internal/calendar"
	"discord-calendar-bot/internal/config"
	"discord-calendar-bot/internal/database"
	"discord-calendar-bot/internal/i18n"
	"discord-calendar-bot/internal/store"
	"discord-calendar-bot/internal/workflow"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	dbPort := 5432
	if raw := os.Getenv("DB_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			dbPort = port
		}
	}
	db, err := database.New(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		dbPort,
	)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	events := store.NewEventStore(db)
	settings := store.NewSettingsStore(db)
	resolver := calendar.NewResolver(events, cfg.TooManyThreshold)
	engine := workflow.NewEngine(cfg.PromptTimeout(), logger)

	translator := i18n.Static(bot.DefaultStrings())
	if path := os.Getenv("LANGS_PATH"); path != "" {
		locale := os.Getenv("LOCALE")
		if locale == "" {
			locale = "en"
		}
		if loaded, err := i18n.Load(path, locale, "en"); err == nil {
			translator = loaded
		} else {
			logger.Warn("failed to load translations, using built-ins", zap.Error(err))
		}
	}

	calendarBot := bot.New(cfg, events, settings, resolver, engine, translator, logger)

	discord, err := discordgo.New("Bot " + os.Getenv("DISCORD_TOKEN"))
	if err != nil {
		logger.Fatal("error creating Discord session", zap.Error(err))
	}
	calendarBot.SetSession(discord)
	discord.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if err := discord.Open(); err != nil {
		logger.Fatal("error opening Discord connection", zap.Error(err))
	}
	defer discord.Close()

	if err := calendarBot.RegisterCommands(); err != nil {
		logger.Fatal("error registering commands", zap.Error(err))
	}
	scheduler, err := calendarBot.StartScheduler()
	if err != nil {
		logger.Fatal("error starting scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	logger.Info("calendar bot is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
}
