package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	CorrelationOpen  = "open"
	CorrelationClose = "close"
)

// CorrelationTask is one pending exchange with the external ticketing
// service.
type CorrelationTask struct {
	AlertID     string
	Kind        string
	PduID       string
	MetricType  string
	AlertReason string
	RackID      string
	Attempts    int
}

// EnqueueCorrelation persists the open/close event for the outbox worker.
// Enqueuing the same (alert, kind) twice is a no-op, which keeps retried
// transitions idempotent.
func (s *Storage) EnqueueCorrelation(ctx context.Context, task CorrelationTask) error {
	if task.AlertID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO correlation_outbox (alert_id, kind, pdu_id, metric_type, alert_reason, rack_id)
		VALUES (@alert_id, @kind, @pdu_id, @metric_type, @alert_reason, @rack_id)
		ON CONFLICT (alert_id, kind) DO NOTHING
	`, pgx.NamedArgs{
		"alert_id":     task.AlertID,
		"kind":         task.Kind,
		"pdu_id":       task.PduID,
		"metric_type":  task.MetricType,
		"alert_reason": task.AlertReason,
		"rack_id":      task.RackID,
	})

	return err
}

func (s *Storage) DueCorrelations(ctx context.Context, now time.Time, limit int) ([]CorrelationTask, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT alert_id, kind, pdu_id, metric_type, alert_reason, rack_id, attempts
		FROM correlation_outbox
		WHERE next_attempt_at <= @now
		ORDER BY next_attempt_at
		LIMIT @limit
	`, pgx.NamedArgs{"now": now.UTC(), "limit": limit})
	if err != nil {
		return nil, err
	}

	var t CorrelationTask
	tasks := make([]CorrelationTask, 0)

	_, err = pgx.ForEachRow(rows, []any{&t.AlertID, &t.Kind, &t.PduID, &t.MetricType, &t.AlertReason, &t.RackID, &t.Attempts}, func() error {
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *Storage) CompleteCorrelation(ctx context.Context, alertID, kind string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM correlation_outbox WHERE alert_id = @alert_id AND kind = @kind
	`, pgx.NamedArgs{"alert_id": alertID, "kind": kind})

	return err
}

func (s *Storage) DeferCorrelation(ctx context.Context, alertID, kind string, nextAttempt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE correlation_outbox
		SET attempts = attempts + 1, next_attempt_at = @next_attempt_at
		WHERE alert_id = @alert_id AND kind = @kind
	`, pgx.NamedArgs{"alert_id": alertID, "kind": kind, "next_attempt_at": nextAttempt.UTC()})

	return err
}
