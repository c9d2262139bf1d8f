package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the database operations used by the bot.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveCommandEvent inserts a new event and sets its ID.
	SaveCommandEvent(ctx context.Context, event *CommandEvent) error

	// CountCommandsSince returns per-command event counts since the given time,
	// ordered by count descending then command name.
	CountCommandsSince(ctx context.Context, since time.Time) ([]CommandCount, error)

	// DeleteCommandEventsBefore deletes events older than before and returns how many were removed.
	DeleteCommandEventsBefore(ctx context.Context, before time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore implements Store using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a new Store backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
		now:    time.Now,
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveCommandEvent inserts a new command event. A zero CreatedAt is set to now.
func (s *sqlxStore) SaveCommandEvent(ctx context.Context, event *CommandEvent) error {
	if event == nil {
		return fmt.Errorf("cannot save nil command event")
	}
	if event.Command == "" {
		return fmt.Errorf("command event must have a command")
	}
	if event.ChatID == 0 {
		return fmt.Errorf("command event must have a non-zero chat_id")
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	event.CreatedAt = dbTime(event.CreatedAt)

	query := `
        INSERT INTO command_events (command, chat_id, user_id, category, created_at)
        VALUES (:command, :chat_id, :user_id, :category, :created_at);
    `

	result, err := s.db.NamedExecContext(ctx, query, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving command event", "command", event.Command, "chat_id", event.ChatID, "error", err)
		return fmt.Errorf("failed to save command event (%s, chat %d): %w", event.Command, event.ChatID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving command event", "error", err)
	} else {
		event.ID = id
	}

	s.logger.DebugContext(ctx, "Command event saved", "id", event.ID, "command", event.Command, "chat_id", event.ChatID)
	return nil
}

// CountCommandsSince aggregates events since the given time.
func (s *sqlxStore) CountCommandsSince(ctx context.Context, since time.Time) ([]CommandCount, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	query := `
        SELECT command, COUNT(*) AS count
        FROM command_events
        WHERE created_at >= ?
        GROUP BY command
        ORDER BY count DESC, command ASC;
    `

	var counts []CommandCount
	err := s.db.SelectContext(ctx, &counts, query, dbTime(since))
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "Context timeout or cancellation while counting commands", "error", err)
		return nil, err
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error counting commands", "since", since, "error", err)
		return nil, fmt.Errorf("failed to count commands since %s: %w", since.Format(time.RFC3339), err)
	}

	return counts, nil
}

// DeleteCommandEventsBefore removes events created before the given time.
func (s *sqlxStore) DeleteCommandEventsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM command_events WHERE created_at < ?;`, dbTime(before))
	if err != nil {
		s.logger.ErrorContext(ctx, "Error deleting old command events", "before", before, "error", err)
		return 0, fmt.Errorf("failed to delete command events: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}

	s.logger.InfoContext(ctx, "Deleted old command events", "before", before, "deleted", deleted)
	return deleted, nil
}

// RunSQLMaintenance executes VACUUM and ANALYZE on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
			return err
		}
		s.logger.ErrorContext(ctx, "Error running VACUUM", "error", err)
		return fmt.Errorf("failed to run VACUUM: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "ANALYZE;"); err != nil {
		s.logger.WarnContext(ctx, "Error running ANALYZE", "error", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance completed successfully")
	return nil
}
