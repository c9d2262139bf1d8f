// Package tasks implements the bot's scheduled tasks: the daily command
// report, statistics pruning and database maintenance.
package tasks

import (
	"log/slog"

	"github.com/edgard/cthulhubot/internal/config"
	"github.com/edgard/cthulhubot/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
// Store is nil when the database is disabled.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
