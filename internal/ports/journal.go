//go:generate mockgen -source ./journal.go -destination=./mocks/journal.go -package=mocks
package ports

import (
	"context"
	"time"
)

// JournalEntry records one successful mutation issued through the console.
type JournalEntry struct {
	ID       string
	At       time.Time
	Resource string
	Action   string
	RecordID int
	Summary  string
}

// Journal is an append-only audit trail of console mutations.
type Journal interface {
	Record(ctx context.Context, entry JournalEntry) error
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}
