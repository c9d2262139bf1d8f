// Package telegram handles the setup of the Telegram client and its command menu.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// CommandSetter is the part of the Telegram client used to publish the command menu.
type CommandSetter interface {
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

// RegisterCommands publishes cmds as the bot's command menu.
func RegisterCommands(ctx context.Context, b CommandSetter, logger *slog.Logger, cmds []models.BotCommand) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "command_menu")

	if len(cmds) == 0 {
		log.Warn("No commands provided for the menu.")
		return nil
	}

	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: cmds}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Info("Registered command menu successfully", "count", len(cmds))
	return nil
}

func tokenPrefix(token string) string {
	const n = 8
	if len(token) <= n {
		return "***"
	}
	return token[:n] + "..."
}
