package tasks

import (
	"context"
	"fmt"
	"time"
)

// newStatsPruningTask deletes command events older than the configured retention.
func newStatsPruningTask(deps TaskDeps) ScheduledTaskFunc {
	return newStatsPruningTaskAt(deps, time.Now)
}

func newStatsPruningTaskAt(deps TaskDeps, now func() time.Time) ScheduledTaskFunc {
	log := deps.Logger.With("task", "stats_pruning")

	return func(ctx context.Context) error {
		retention := deps.Config.Database.StatsRetention
		if retention <= 0 {
			log.WarnContext(ctx, "Stats retention not set, skipping pruning")
			return nil
		}

		deleted, err := deps.Store.DeleteCommandEventsBefore(ctx, now().Add(-retention))
		if err != nil {
			log.ErrorContext(ctx, "Stats pruning failed", "error", err)
			return fmt.Errorf("stats pruning failed: %w", err)
		}

		log.InfoContext(ctx, "Stats pruning completed", "deleted", deleted, "retention", retention)
		return nil
	}
}
