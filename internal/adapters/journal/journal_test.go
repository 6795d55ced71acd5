package journal

import (
	"context"
	"fleet-console/internal/config"
	"fleet-console/internal/platform/db"
	"fleet-console/internal/ports"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *SqliteJournal {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, MigrateUp(conn, DriverSQLite))
	return NewSqliteJournal(conn)
}

func TestMigrateUp_Idempotent(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, MigrateUp(j.DB, DriverSQLite))

	version, dirty, err := Version(j.DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestMigrateUp_UnknownDriver(t *testing.T) {
	j := openTestJournal(t)
	require.Error(t, MigrateUp(j.DB, "mysql"))
}

func TestSqliteJournal_RecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.Record(ctx, ports.JournalEntry{
		At: at, Resource: "trucks", Action: "create", RecordID: 1, Summary: "Volvo FH - (ABC-1234)",
	}))
	require.NoError(t, j.Record(ctx, ports.JournalEntry{
		Resource: "deliveries", Action: "complete", RecordID: 9,
	}))

	got, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "deliveries", got[0].Resource)
	assert.Equal(t, "complete", got[0].Action)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].At.IsZero())

	assert.Equal(t, "trucks", got[1].Resource)
	assert.Equal(t, 1, got[1].RecordID)
	assert.True(t, at.Equal(got[1].At))
	assert.Equal(t, "Volvo FH - (ABC-1234)", got[1].Summary)

	got, err = j.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSqliteJournal_RejectsIncompleteEntry(t *testing.T) {
	j := openTestJournal(t)

	err := j.Record(context.Background(), ports.JournalEntry{Resource: "trucks"})
	require.Error(t, err)

	got, err := j.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen(t *testing.T) {
	j, closeFn, err := Open(config.JournalConfig{Driver: DriverNone})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, j)
	require.NoError(t, closeFn())

	j, closeFn, err = Open(config.JournalConfig{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "journal.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	require.NoError(t, j.Record(context.Background(), ports.JournalEntry{Resource: "users", Action: "delete", RecordID: 2}))

	_, _, err = Open(config.JournalConfig{Driver: "mysql"})
	require.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultRecentLimit, clampLimit(0))
	assert.Equal(t, maxRecentLimit, clampLimit(10_000))
	assert.Equal(t, 5, clampLimit(5))
}
