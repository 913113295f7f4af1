package correlation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/matryer/is"
)

func TestDrainFillsOpenCorrelationID(t *testing.T) {
	is := is.New(t)

	task := storage.CorrelationTask{AlertID: "alert-1", Kind: storage.CorrelationOpen}

	s := &OutboxRepositoryMock{
		DueCorrelationsFunc: func(ctx context.Context, now time.Time, limit int) ([]storage.CorrelationTask, error) {
			return []storage.CorrelationTask{task}, nil
		},
		SetUUIDOpenFunc: func(ctx context.Context, alertID, correlationID string) error {
			return nil
		},
		CompleteCorrelationFunc: func(ctx context.Context, alertID, kind string) error {
			return nil
		},
	}

	c := &ClientMock{
		RequestOpenFunc: func(ctx context.Context, task storage.CorrelationTask) (string, error) {
			return "uuid-123", nil
		},
	}

	w := NewWorker(s, c, time.Second)
	w.drain(context.Background())

	is.Equal(1, len(c.RequestOpenCalls()))
	is.Equal(1, len(s.SetUUIDOpenCalls()))
	is.Equal("uuid-123", s.SetUUIDOpenCalls()[0].CorrelationID)
	is.Equal(1, len(s.CompleteCorrelationCalls()))
	is.Equal(0, len(s.DeferCorrelationCalls()))
}

func TestDrainFillsCloseCorrelationID(t *testing.T) {
	is := is.New(t)

	task := storage.CorrelationTask{AlertID: "alert-1", Kind: storage.CorrelationClose}

	s := &OutboxRepositoryMock{
		DueCorrelationsFunc: func(ctx context.Context, now time.Time, limit int) ([]storage.CorrelationTask, error) {
			return []storage.CorrelationTask{task}, nil
		},
		SetUUIDClosedFunc: func(ctx context.Context, alertID, correlationID string) error {
			return nil
		},
		CompleteCorrelationFunc: func(ctx context.Context, alertID, kind string) error {
			return nil
		},
	}

	c := &ClientMock{
		RequestCloseFunc: func(ctx context.Context, task storage.CorrelationTask) (string, error) {
			return "uuid-456", nil
		},
	}

	w := NewWorker(s, c, time.Second)
	w.drain(context.Background())

	is.Equal(1, len(c.RequestCloseCalls()))
	is.Equal("uuid-456", s.SetUUIDClosedCalls()[0].CorrelationID)
	is.Equal(1, len(s.CompleteCorrelationCalls()))
}

func TestDrainDefersFailedExchange(t *testing.T) {
	is := is.New(t)

	task := storage.CorrelationTask{AlertID: "alert-1", Kind: storage.CorrelationOpen, Attempts: 2}

	s := &OutboxRepositoryMock{
		DueCorrelationsFunc: func(ctx context.Context, now time.Time, limit int) ([]storage.CorrelationTask, error) {
			return []storage.CorrelationTask{task}, nil
		},
		DeferCorrelationFunc: func(ctx context.Context, alertID, kind string, nextAttempt time.Time) error {
			return nil
		},
	}

	c := &ClientMock{
		RequestOpenFunc: func(ctx context.Context, task storage.CorrelationTask) (string, error) {
			return "", errors.New("correlation service unavailable")
		},
	}

	w := NewWorker(s, c, time.Second)
	w.drain(context.Background())

	is.Equal(1, len(s.DeferCorrelationCalls()))
	is.Equal("alert-1", s.DeferCorrelationCalls()[0].AlertID)
	is.Equal(0, len(s.CompleteCorrelationCalls()))
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	is := is.New(t)

	is.Equal(30*time.Second, backoff(0))
	is.Equal(time.Minute, backoff(1))
	is.Equal(2*time.Minute, backoff(2))
	is.Equal(30*time.Minute, backoff(20))
}
