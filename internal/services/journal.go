package services

import (
	"context"
	"fleet-console/internal/platform/metrics"
	"fleet-console/internal/platform/obs"
	"fleet-console/internal/ports"

	"go.uber.org/zap"
)

const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionComplete = "complete"
)

// journalWriter appends mutation entries for one resource. Failures are
// logged and counted only; a nil journal records nothing.
type journalWriter struct {
	journal  ports.Journal
	resource string
}

func (w journalWriter) record(ctx context.Context, action string, id int, summary string) {
	if w.journal == nil {
		return
	}

	err := w.journal.Record(context.WithoutCancel(ctx), ports.JournalEntry{
		Resource: w.resource,
		Action:   action,
		RecordID: id,
		Summary:  summary,
	})
	if err != nil {
		metrics.JournalWriteErrorsTotal.Inc()
		zap.L().Warn("journal write failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("resource", w.resource),
			zap.String("action", action),
			zap.Int("record_id", id),
			zap.Error(err),
		)
	}
}
