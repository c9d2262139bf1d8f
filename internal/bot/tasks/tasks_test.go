package tasks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/cthulhubot/internal/config"
	"github.com/edgard/cthulhubot/internal/database"
)

type fakeStore struct {
	database.Store
	counts       []database.CommandCount
	since        time.Time
	before       time.Time
	deleted      int64
	maintenances int
	err          error
}

func (f *fakeStore) CountCommandsSince(_ context.Context, since time.Time) ([]database.CommandCount, error) {
	f.since = since
	return f.counts, f.err
}

func (f *fakeStore) DeleteCommandEventsBefore(_ context.Context, before time.Time) (int64, error) {
	f.before = before
	return f.deleted, f.err
}

func (f *fakeStore) RunSQLMaintenance(context.Context) error {
	f.maintenances++
	return f.err
}

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testDeps(store database.Store, out io.Writer) TaskDeps {
	return TaskDeps{
		Logger: slog.New(slog.NewTextHandler(out, nil)),
		Store:  store,
		Config: &config.Config{Database: config.DatabaseConfig{Path: "x.db", StatsRetention: 30 * 24 * time.Hour}},
	}
}

func TestRegisterAllTasks(t *testing.T) {
	tasks := RegisterAllTasks(testDeps(&fakeStore{}, io.Discard))
	assert.Len(t, tasks, 3)
	for _, name := range []string{"daily_report", "stats_pruning", "sql_maintenance"} {
		assert.Contains(t, tasks, name)
	}

	assert.Empty(t, RegisterAllTasks(testDeps(nil, io.Discard)))
}

func TestDailyReport(t *testing.T) {
	var buf bytes.Buffer
	store := &fakeStore{counts: []database.CommandCount{{Command: "roll", Count: 5}, {Command: "choose", Count: 2}}}

	err := newDailyReportTaskAt(testDeps(store, &buf), func() time.Time { return fixedNow })(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fixedNow.Add(-24*time.Hour), store.since)
	out := buf.String()
	assert.Contains(t, out, "Daily command report")
	assert.Contains(t, out, "roll=5")
	assert.Contains(t, out, "choose=2")
	assert.Contains(t, out, "total=7")
}

func TestStatsPruning(t *testing.T) {
	store := &fakeStore{deleted: 3}
	err := newStatsPruningTaskAt(testDeps(store, io.Discard), func() time.Time { return fixedNow })(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(-30*24*time.Hour), store.before)
}

func TestSQLMaintenance(t *testing.T) {
	store := &fakeStore{}
	require.NoError(t, newSQLMaintenanceTask(testDeps(store, io.Discard))(context.Background()))
	assert.Equal(t, 1, store.maintenances)
}

func TestTasks_PropagateStoreErrors(t *testing.T) {
	store := &fakeStore{err: errors.New("locked")}
	deps := testDeps(store, io.Discard)

	for name, task := range RegisterAllTasks(deps) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorContains(t, task(context.Background()), "locked")
		})
	}
}
