package tasks

import (
	"context"
	"fmt"
	"time"
)

const reportWindow = 24 * time.Hour

// newDailyReportTask logs how many times each command was used in the last day.
func newDailyReportTask(deps TaskDeps) ScheduledTaskFunc {
	return newDailyReportTaskAt(deps, time.Now)
}

func newDailyReportTaskAt(deps TaskDeps, now func() time.Time) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_report")

	return func(ctx context.Context) error {
		since := now().Add(-reportWindow)

		counts, err := deps.Store.CountCommandsSince(ctx, since)
		if err != nil {
			log.ErrorContext(ctx, "Failed to count commands", "error", err)
			return fmt.Errorf("daily report failed: %w", err)
		}

		total := 0
		attrs := make([]any, 0, 2*len(counts)+4)
		for _, c := range counts {
			total += c.Count
			attrs = append(attrs, c.Command, c.Count)
		}
		attrs = append(attrs, "total", total, "since", since.UTC().Format(time.RFC3339))

		log.InfoContext(ctx, "Daily command report", attrs...)
		return nil
	}
}
