// Package handlers contains the Telegram update dispatcher, the per-command
// handlers, their registration and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// IgnoreBots drops messages sent by bots, so the bot never answers itself
// or another bot.
func IgnoreBots(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message != nil && update.Message.From != nil && update.Message.From.IsBot {
				deps.Logger.With("middleware", "IgnoreBots").DebugContext(ctx, "Ignoring message from bot",
					"user_id", update.Message.From.ID, "chat_id", update.Message.Chat.ID)
				return
			}
			next(ctx, bot, update)
		}
	}
}
