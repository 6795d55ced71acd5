package journal

import (
	"context"
	"database/sql"
	"fleet-console/internal/platform/obs"
	"fleet-console/internal/ports"
	"fmt"
	"time"
)

// SqliteJournal stores journal entries in a local SQLite file.
type SqliteJournal struct {
	DB *sql.DB
}

func NewSqliteJournal(db *sql.DB) *SqliteJournal {
	return &SqliteJournal{DB: db}
}

func (s *SqliteJournal) Record(ctx context.Context, entry ports.JournalEntry) (err error) {
	defer obs.Time(ctx, "journal.sqlite.Record")(&err)

	if s.DB == nil {
		return errDBNil
	}
	entry, err = normalize(entry)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO journal_entries (entry_id, at, resource, action, record_id, summary)
	VALUES (?, ?, ?, ?, ?, ?);
	`, entry.ID, entry.At.UTC().Format(time.RFC3339Nano), entry.Resource, entry.Action, entry.RecordID, entry.Summary)
	if err != nil {
		return fmt.Errorf("record journal entry %s %s id=%d: %w", entry.Resource, entry.Action, entry.RecordID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *SqliteJournal) Recent(ctx context.Context, limit int) (_ []ports.JournalEntry, err error) {
	defer obs.Time(ctx, "journal.sqlite.Recent")(&err)

	if s.DB == nil {
		return nil, errDBNil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT entry_id, at, resource, action, record_id, summary
	FROM journal_entries
	ORDER BY seq DESC
	LIMIT ?;
	`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent journal entries: query: %w", err)
	}
	defer rows.Close()

	out := []ports.JournalEntry{}
	for rows.Next() {
		var e ports.JournalEntry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Resource, &e.Action, &e.RecordID, &e.Summary); err != nil {
			return nil, fmt.Errorf("recent journal entries: scan rows: %w", err)
		}
		e.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("recent journal entries: parse time %q: %w", at, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent journal entries: row iteration: %w", err)
	}

	return out, nil
}
