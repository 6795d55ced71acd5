package journal

import (
	"context"
	"database/sql"
	"fleet-console/internal/config"
	"fleet-console/internal/platform/db"
	"fleet-console/internal/ports"
	"fmt"
)

// Nop discards entries. Used when the journal is disabled.
type Nop struct{}

func (Nop) Record(context.Context, ports.JournalEntry) error { return nil }

func (Nop) Recent(context.Context, int) ([]ports.JournalEntry, error) {
	return []ports.JournalEntry{}, nil
}

// Connect opens the database of a sql-backed journal without migrating it.
func Connect(cfg config.JournalConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return db.OpenSQLite(cfg.Path)
	case DriverPostgres:
		return db.Open(cfg.DSN)
	}
	return nil, fmt.Errorf("unsupported journal driver %q", cfg.Driver)
}

// Open connects the configured journal backend and migrates it. The returned
// close func releases the database; it is a no-op for the disabled journal.
func Open(cfg config.JournalConfig) (ports.Journal, func() error, error) {
	if cfg.Driver == DriverNone {
		return Nop{}, func() error { return nil }, nil
	}

	conn, err := Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	if err := MigrateUp(conn, cfg.Driver); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	if cfg.Driver == DriverPostgres {
		return NewSQLJournal(conn), conn.Close, nil
	}
	return NewSqliteJournal(conn), conn.Close, nil
}
