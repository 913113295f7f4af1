package alerting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Reconcile(ctx context.Context, reading types.Reading) error

	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ActiveAlert], error)
	History(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlertHistoryRecord], error)

	CloseManual(ctx context.Context, alertID, closedBy string) error
	CloseAll(ctx context.Context, closedBy string) error
	CloseStale(ctx context.Context, cutoff time.Time) error

	RegisterTopicMessageHandlers(ctx context.Context) error
}

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	QueryActiveAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ActiveAlert], error)
	GetActiveAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.ActiveAlert, error)
	AddActiveAlert(ctx context.Context, alert types.ActiveAlert) error
	RefreshActiveAlert(ctx context.Context, pduID, metricType, reason string, value, threshold float64, ts time.Time) error
	ArchiveAlert(ctx context.Context, rec types.AlertHistoryRecord) error
	QueryAlertHistory(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlertHistoryRecord], error)
	StaleActiveAlerts(ctx context.Context, cutoff time.Time) ([]types.ActiveAlert, error)
	EnqueueCorrelation(ctx context.Context, task storage.CorrelationTask) error
}

// ThresholdResolver is the subset of the threshold service the manager
// needs.
type ThresholdResolver interface {
	Resolve(ctx context.Context, rackID string) (types.EffectiveThresholds, error)
}

// Suppression answers whether a rack is currently under maintenance.
type Suppression interface {
	IsSuppressed(rackID string) bool
}

type alertSvc struct {
	storage    AlertRepository
	messenger  messaging.MsgContext
	thresholds ThresholdResolver
	suppressed Suppression
	cache      *StateCache

	keys keyedMutex
}

func New(s AlertRepository, m messaging.MsgContext, t ThresholdResolver, sup Suppression, cache *StateCache) AlertService {
	return &alertSvc{
		storage:    s,
		messenger:  m,
		thresholds: t,
		suppressed: sup,
		cache:      cache,
	}
}

func (svc *alertSvc) RegisterTopicMessageHandlers(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("rack-reading", NewRackReadingHandler(svc))
}

// Reconcile drives the per-key state machine for one reading: open new
// critical conditions, refresh persisting ones, close the ones no longer
// observed. Warning reasons only update the latest-state cache.
func (svc *alertSvc) Reconcile(ctx context.Context, reading types.Reading) error {
	now := time.Now().UTC()

	isSuppressed := svc.suppressed.IsSuppressed(reading.RackID)

	effective, err := svc.thresholds.Resolve(ctx, reading.RackID)
	if err != nil {
		return fmt.Errorf("could not resolve thresholds for rack %s: %w", reading.RackID, err)
	}

	reasons := Evaluate(reading, effective, isSuppressed)

	svc.cache.Set(reading.PduID, types.RackState{
		Reading:       reading,
		Status:        statusOf(reasons, isSuppressed),
		Reasons:       reasons,
		InMaintenance: isSuppressed,
		UpdatedAt:     now,
	})

	critical := map[string]types.ViolationReason{}
	for _, reason := range reasons {
		if reason.Severity != types.SeverityCritical {
			continue
		}
		key := types.ThresholdKey{
			Metric:   reason.Metric,
			Severity: reason.Severity,
			Bound:    reason.Bound,
		}
		if reason.Metric == types.MetricAmperage {
			key.Phase = reading.Phase()
		}
		critical[key.String()] = reason
	}

	open, err := svc.storage.QueryActiveAlerts(ctx, storage.WithPduID(reading.PduID), storage.WithMetricType(reading.MetricType))
	if err != nil {
		return fmt.Errorf("could not load open alerts for pdu %s: %w", reading.PduID, err)
	}

	var errs []error

	for reasonKey, reason := range critical {
		err = svc.openOrRefresh(ctx, reading, reasonKey, reason, now)
		if err != nil {
			errs = append(errs, err)
		}
	}

	for _, alert := range open.Data {
		if _, stillViolated := critical[alert.AlertReason]; stillViolated {
			continue
		}
		err = svc.close(ctx, alert, now, "system", types.ResolutionAuto)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (svc *alertSvc) openOrRefresh(ctx context.Context, reading types.Reading, reasonKey string, reason types.ViolationReason, now time.Time) error {
	log := logging.GetFromContext(ctx)

	key := reading.PduID + "/" + reading.MetricType + "/" + reasonKey
	unlock := svc.keys.Lock(key)
	defer unlock()

	_, err := svc.storage.GetActiveAlert(ctx,
		storage.WithPduID(reading.PduID),
		storage.WithMetricType(reading.MetricType),
		storage.WithAlertReason(reasonKey))

	if err == nil {
		return svc.storage.RefreshActiveAlert(ctx, reading.PduID, reading.MetricType, reasonKey, reason.Value, reason.Threshold, now)
	}

	if !errors.Is(err, storage.ErrNoRows) {
		return err
	}

	alert := types.ActiveAlert{
		ID:                uuid.NewString(),
		PduID:             reading.PduID,
		MetricType:        reading.MetricType,
		AlertReason:       reasonKey,
		Severity:          reason.Severity,
		Value:             reason.Value,
		ThresholdExceeded: reason.Threshold,
		RackID:            reading.RackID,
		Chain:             reading.Chain,
		Node:              reading.Node,
		Site:              reading.Site,
		DC:                reading.DC,
		Country:           reading.Country,
		GatewayName:       reading.GatewayName,
		GatewayIP:         reading.GatewayIP,
		StartedAt:         now,
		LastUpdatedAt:     now,
	}

	err = svc.storage.AddActiveAlert(ctx, alert)
	if err != nil {
		return err
	}

	// The correlation exchange is fire-and-forget: the open commits even if
	// the external id never arrives.
	err = svc.storage.EnqueueCorrelation(ctx, storage.CorrelationTask{
		AlertID:     alert.ID,
		Kind:        storage.CorrelationOpen,
		PduID:       alert.PduID,
		MetricType:  alert.MetricType,
		AlertReason: alert.AlertReason,
		RackID:      alert.RackID,
	})
	if err != nil {
		log.Error("could not enqueue open correlation", "alert_id", alert.ID, "err", err.Error())
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertOpened{Alert: alert, Timestamp: now})
	if err != nil {
		log.Error("failed to publish alert opened", "alert_id", alert.ID, "err", err.Error())
	}

	return nil
}

func (svc *alertSvc) close(ctx context.Context, alert types.ActiveAlert, now time.Time, closedBy, resolutionType string) error {
	log := logging.GetFromContext(ctx)

	unlock := svc.keys.Lock(alert.Key())
	defer unlock()

	rec := types.AlertHistoryRecord{
		ActiveAlert:     alert,
		ResolvedAt:      now,
		ResolvedBy:      closedBy,
		ResolutionType:  resolutionType,
		DurationMinutes: int64(now.Sub(alert.StartedAt).Minutes()),
	}

	err := svc.storage.ArchiveAlert(ctx, rec)
	if err != nil {
		return err
	}

	err = svc.storage.EnqueueCorrelation(ctx, storage.CorrelationTask{
		AlertID:     alert.ID,
		Kind:        storage.CorrelationClose,
		PduID:       alert.PduID,
		MetricType:  alert.MetricType,
		AlertReason: alert.AlertReason,
		RackID:      alert.RackID,
	})
	if err != nil {
		log.Error("could not enqueue close correlation", "alert_id", alert.ID, "err", err.Error())
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertClosed{
		ID:             alert.ID,
		PduID:          alert.PduID,
		ResolutionType: resolutionType,
		Timestamp:      now,
	})
	if err != nil {
		log.Error("failed to publish alert closed", "alert_id", alert.ID, "err", err.Error())
	}

	return nil
}

func (svc *alertSvc) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ActiveAlert], error) {
	return svc.storage.QueryActiveAlerts(ctx, conditions...)
}

func (svc *alertSvc) History(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AlertHistoryRecord], error) {
	return svc.storage.QueryAlertHistory(ctx, conditions...)
}

func (svc *alertSvc) CloseManual(ctx context.Context, alertID, closedBy string) error {
	alert, err := svc.storage.GetActiveAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	return svc.close(ctx, alert, time.Now().UTC(), closedBy, types.ResolutionManual)
}

// CloseAll is a bulk transition applied key by key under the same per-key
// serialization as cycle evaluation.
func (svc *alertSvc) CloseAll(ctx context.Context, closedBy string) error {
	open, err := svc.storage.QueryActiveAlerts(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	var errs []error
	for _, alert := range open.Data {
		err = svc.close(ctx, alert, now, closedBy, types.ResolutionManual)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CloseStale force-closes alerts not re-observed since the cutoff. Only
// called when the stale timeout is explicitly configured.
func (svc *alertSvc) CloseStale(ctx context.Context, cutoff time.Time) error {
	stale, err := svc.storage.StaleActiveAlerts(ctx, cutoff)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	var errs []error
	for _, alert := range stale {
		err = svc.close(ctx, alert, now, "system", types.ResolutionStale)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func statusOf(reasons []types.ViolationReason, suppressed bool) string {
	if suppressed {
		return types.RackStatusMaintenance
	}

	status := types.RackStatusOK
	for _, r := range reasons {
		if r.Severity == types.SeverityCritical {
			return types.RackStatusCritical
		}
		status = types.RackStatusWarning
	}

	return status
}

// keyedMutex serializes all mutations of a single alert key so overlapping
// cycles cannot race on last_updated_at or value fields.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func (km *keyedMutex) Lock(key string) func() {
	km.mu.Lock()
	if km.locks == nil {
		km.locks = map[string]*keyLock{}
	}
	kl, ok := km.locks[key]
	if !ok {
		kl = &keyLock{}
		km.locks[key] = kl
	}
	kl.refs++
	km.mu.Unlock()

	kl.mu.Lock()

	return func() {
		kl.mu.Unlock()

		km.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(km.locks, key)
		}
		km.mu.Unlock()
	}
}
