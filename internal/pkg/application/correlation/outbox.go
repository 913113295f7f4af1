package correlation

import (
	"context"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out outboxrepository_mock.go . OutboxRepository
type OutboxRepository interface {
	DueCorrelations(ctx context.Context, now time.Time, limit int) ([]storage.CorrelationTask, error)
	CompleteCorrelation(ctx context.Context, alertID, kind string) error
	DeferCorrelation(ctx context.Context, alertID, kind string, nextAttempt time.Time) error
	SetUUIDOpen(ctx context.Context, alertID, correlationID string) error
	SetUUIDClosed(ctx context.Context, alertID, correlationID string) error
}

// Worker drains the correlation outbox in the background. The alert state
// transition has already committed when a task lands here; a task that
// keeps failing just stays queued with a growing backoff and the alert's
// correlation id stays null.
type Worker struct {
	storage  OutboxRepository
	client   Client
	interval time.Duration
	batch    int

	done chan struct{}
}

func NewWorker(s OutboxRepository, c Client, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Worker{
		storage:  s,
		client:   c,
		interval: interval,
		batch:    50,
		done:     make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Worker) Stop(ctx context.Context) {
	close(w.done)
}

func (w *Worker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	tasks, err := w.storage.DueCorrelations(ctx, time.Now().UTC(), w.batch)
	if err != nil {
		log.Error("could not fetch due correlations", "err", err.Error())
		return
	}

	for _, task := range tasks {
		err = w.process(ctx, task)
		if err != nil {
			log.Warn("correlation exchange failed, will retry",
				"alert_id", task.AlertID, "kind", task.Kind, "attempts", task.Attempts, "err", err.Error())

			err = w.storage.DeferCorrelation(ctx, task.AlertID, task.Kind, time.Now().UTC().Add(backoff(task.Attempts)))
			if err != nil {
				log.Error("could not defer correlation", "alert_id", task.AlertID, "err", err.Error())
			}
		}
	}
}

func (w *Worker) process(ctx context.Context, task storage.CorrelationTask) error {
	var id string
	var err error

	switch task.Kind {
	case storage.CorrelationClose:
		id, err = w.client.RequestClose(ctx, task)
		if err == nil {
			err = w.storage.SetUUIDClosed(ctx, task.AlertID, id)
		}
	default:
		id, err = w.client.RequestOpen(ctx, task)
		if err == nil {
			err = w.storage.SetUUIDOpen(ctx, task.AlertID, id)
		}
	}

	if err != nil {
		return err
	}

	return w.storage.CompleteCorrelation(ctx, task.AlertID, task.Kind)
}

func backoff(attempts int) time.Duration {
	d := 30 * time.Second
	for i := 0; i < attempts && d < 30*time.Minute; i++ {
		d *= 2
	}
	if d > 30*time.Minute {
		d = 30 * time.Minute
	}
	return d
}
