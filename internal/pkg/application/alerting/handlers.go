package alerting

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pdu-alert-mgmt/alerting")

// NewRackReadingHandler decodes one normalized reading per rack per cycle
// from the rack-reading topic and reconciles the alert state for it. A gap
// in delivery is just "no data this cycle"; nothing closes on absence.
func NewRackReadingHandler(svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "rack-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		reading := types.Reading{}

		err = json.Unmarshal(itm.Body(), &reading)
		if err != nil {
			log.Error("failed to unmarshal reading", "err", err.Error())
			return
		}

		if reading.PduID == "" || reading.RackID == "" {
			log.Warn("reading without pdu or rack identity discarded")
			return
		}

		if reading.ObservedAt.IsZero() {
			reading.ObservedAt = time.Now().UTC()
		}

		err = svc.Reconcile(ctx, reading)
		if err != nil {
			log.Error("failed to reconcile reading", "pdu_id", reading.PduID, "rack_id", reading.RackID, "err", err.Error())
			return
		}
	}
}
