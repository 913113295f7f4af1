package alerting

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestRackReadingHandler(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	svc := &AlertServiceMock{
		ReconcileFunc: func(ctx context.Context, reading types.Reading) error {
			return nil
		},
	}

	temp := 42.0
	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(types.Reading{
				PduID:       "pdu-001",
				RackID:      "rack-A01",
				MetricType:  "environment",
				Temperature: &temp,
				ObservedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			})
			return b
		},
		TopicNameFunc:   func() string { return "rack-reading" },
		ContentTypeFunc: func() string { return "application/json" },
	}

	handler := NewRackReadingHandler(svc)
	handler(ctx, msg, log)

	is.Equal(1, len(svc.ReconcileCalls()))
	is.Equal("pdu-001", svc.ReconcileCalls()[0].Reading.PduID)
}

func TestRackReadingHandlerDiscardsAnonymousReadings(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	svc := &AlertServiceMock{
		ReconcileFunc: func(ctx context.Context, reading types.Reading) error {
			return nil
		},
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(types.Reading{MetricType: "environment"})
			return b
		},
		TopicNameFunc:   func() string { return "rack-reading" },
		ContentTypeFunc: func() string { return "application/json" },
	}

	handler := NewRackReadingHandler(svc)
	handler(ctx, msg, log)

	is.Equal(0, len(svc.ReconcileCalls()))
}
