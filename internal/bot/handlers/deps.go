package handlers

import (
	"log/slog"

	"github.com/edgard/cthulhubot/internal/config"
	"github.com/edgard/cthulhubot/internal/database"
	"github.com/edgard/cthulhubot/internal/dice"
	"github.com/edgard/cthulhubot/internal/metrics"
)

// HandlerDeps provides dependencies for Telegram command handlers.
// Store and Metrics may be nil.
type HandlerDeps struct {
	Logger  *slog.Logger
	Config  *config.Config
	Roller  dice.Roller
	Source  dice.Source
	Store   database.Store
	Metrics *metrics.Metrics
}
