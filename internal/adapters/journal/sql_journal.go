package journal

import (
	"context"
	"database/sql"
	"errors"
	"fleet-console/internal/platform/obs"
	"fleet-console/internal/ports"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

var errDBNil = errors.New("journal: db is nil")

// SQLJournal stores journal entries in Postgres.
type SQLJournal struct {
	DB *sql.DB
}

func NewSQLJournal(db *sql.DB) *SQLJournal {
	return &SQLJournal{DB: db}
}

func (s *SQLJournal) Record(ctx context.Context, entry ports.JournalEntry) (err error) {
	defer obs.Time(ctx, "journal.sql.Record")(&err)

	if s.DB == nil {
		return errDBNil
	}
	entry, err = normalize(entry)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO journal_entries (entry_id, at, resource, action, record_id, summary)
	VALUES ($1, $2, $3, $4, $5, $6);
	`, entry.ID, entry.At, entry.Resource, entry.Action, entry.RecordID, entry.Summary)
	if err != nil {
		return fmt.Errorf("record journal entry %s %s id=%d: %w", entry.Resource, entry.Action, entry.RecordID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *SQLJournal) Recent(ctx context.Context, limit int) (_ []ports.JournalEntry, err error) {
	defer obs.Time(ctx, "journal.sql.Recent")(&err)

	if s.DB == nil {
		return nil, errDBNil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT entry_id::text, at, resource, action, record_id, summary
	FROM journal_entries
	ORDER BY seq DESC
	LIMIT $1;
	`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent journal entries: query: %w", err)
	}
	defer rows.Close()

	out := []ports.JournalEntry{}
	for rows.Next() {
		var e ports.JournalEntry
		if err := rows.Scan(&e.ID, &e.At, &e.Resource, &e.Action, &e.RecordID, &e.Summary); err != nil {
			return nil, fmt.Errorf("recent journal entries: scan rows: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent journal entries: row iteration: %w", err)
	}

	return out, nil
}

// normalize fills the id and timestamp and checks required fields.
func normalize(e ports.JournalEntry) (ports.JournalEntry, error) {
	e.Resource = strings.TrimSpace(e.Resource)
	e.Action = strings.TrimSpace(e.Action)
	if e.Resource == "" || e.Action == "" {
		return e, errors.New("journal entry: resource and action must not be empty")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	return e, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultRecentLimit
	case limit > maxRecentLimit:
		return maxRecentLimit
	}
	return limit
}
