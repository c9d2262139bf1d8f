package main

import (
	"context"
	"errors"
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/cthulhubot/internal/bot"
	"github.com/edgard/cthulhubot/internal/bot/handlers"
	"github.com/edgard/cthulhubot/internal/bot/tasks"
	"github.com/edgard/cthulhubot/internal/config"
	"github.com/edgard/cthulhubot/internal/database"
	"github.com/edgard/cthulhubot/internal/dice"
	"github.com/edgard/cthulhubot/internal/keepalive"
	"github.com/edgard/cthulhubot/internal/logger"
	"github.com/edgard/cthulhubot/internal/metrics"
	"github.com/edgard/cthulhubot/internal/telegram"
)

// run initializes and starts all components (config, logger, db, telegram, keep-alive, scheduler),
// handles graceful shutdown, and returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context, configPath string) int {
	cfg, err := config.Load(configPath)
	if errors.Is(err, config.ErrMissingToken) {
		slog.Error(err.Error())
		return 1
	}
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON, "file", cfg.Logger.File.Path)

	var store database.Store
	if cfg.Database.Enabled() {
		db, err := database.NewDB(cfg.Database.Path)
		if err != nil {
			log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
			return 1
		}
		defer database.CloseDB(db)
		store = database.NewStore(db, log)
		if err := store.Ping(ctx); err != nil {
			log.Error("Database is not reachable", "path", cfg.Database.Path, "error", err)
			return 1
		}
	} else {
		log.Info("Database disabled, command statistics are not persisted")
	}

	m := metrics.New()
	src := dice.NewSource()

	hDeps := handlers.HandlerDeps{
		Logger:  log,
		Config:  cfg,
		Roller:  dice.NewEvaluator(src, log),
		Source:  src,
		Store:   store,
		Metrics: m,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}

	cmdHandlers := handlers.RegisterAllCommands(hDeps)
	dispatcher := handlers.NewDispatcher(hDeps, cmdHandlers)

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log), handlers.IgnoreBots(hDeps)),
		tgbot.WithDefaultHandler(dispatcher.Handle),
		tgbot.WithErrorsHandler(func(err error) {
			log.Error("Telegram client error", "error", err)
		}),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	// Retrieve bot info and store it in the config for runtime use
	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if cfg.Telegram.DropPendingUpdates {
		if _, err := tg.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			log.Warn("Failed to drop pending updates", "error", err)
		}
	}

	if err := telegram.RegisterCommands(ctx, tg, log, handlers.MenuCommands(cmdHandlers)); err != nil {
		log.Warn("Failed to register command menu", "error", err)
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	var ka bot.Server
	if cfg.HTTP.Enabled {
		ka = keepalive.NewServer(cfg.HTTP.Addr, m.Registry, log)
	}

	app := bot.NewBot(log, tg, ka, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
