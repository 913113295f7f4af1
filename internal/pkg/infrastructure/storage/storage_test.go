package storage

import (
	"context"
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	err = SeedThresholds(ctx, s, []types.ThresholdConfig{
		{Key: "critical_temperature_high", Value: 40, Unit: "°C"},
		{Key: "warning_temperature_high", Value: 35, Unit: "°C"},
	})
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestSeedDoesNotOverwriteOperatorEdits(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.UpsertThreshold(ctx, types.ThresholdConfig{Key: "critical_temperature_high", Value: 42, Unit: "°C"})
	is.NoErr(err)

	err = SeedThresholds(ctx, s, []types.ThresholdConfig{
		{Key: "critical_temperature_high", Value: 40, Unit: "°C"},
	})
	is.NoErr(err)

	cfg, err := s.GetThreshold(ctx, "critical_temperature_high")
	is.NoErr(err)
	is.Equal(42.0, cfg.Value)
}

func TestOverrideLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	rackID := "rack-" + uuid.NewString()

	err := s.UpsertOverride(ctx, types.RackThresholdOverride{
		RackID: rackID, Key: "critical_temperature_high", Value: 45, Unit: "°C",
	})
	is.NoErr(err)

	overrides, err := s.QueryOverrides(ctx, WithRackID(rackID))
	is.NoErr(err)
	is.Equal(1, len(overrides.Data))
	is.Equal(45.0, overrides.Data[0].Value)

	err = s.DeleteOverride(ctx, rackID, "critical_temperature_high")
	is.NoErr(err)

	overrides, err = s.QueryOverrides(ctx, WithRackID(rackID))
	is.NoErr(err)
	is.Equal(0, len(overrides.Data))
}

func testAlert(pduID string) types.ActiveAlert {
	now := time.Now().UTC()
	return types.ActiveAlert{
		ID:                uuid.NewString(),
		PduID:             pduID,
		MetricType:        "environment",
		AlertReason:       "critical_temperature_high",
		Severity:          types.SeverityCritical,
		Value:             42,
		ThresholdExceeded: 40,
		RackID:            "rack-A01",
		Chain:             "A",
		Site:              "MAD",
		DC:                "DC1",
		Country:           "ES",
		StartedAt:         now,
		LastUpdatedAt:     now,
	}
}

func TestAlertOpenRefreshArchive(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	pduID := "pdu-" + uuid.NewString()
	alert := testAlert(pduID)

	is.NoErr(s.AddActiveAlert(ctx, alert))

	later := time.Now().UTC().Add(time.Minute)
	is.NoErr(s.RefreshActiveAlert(ctx, pduID, "environment", "critical_temperature_high", 43, 40, later))

	got, err := s.GetActiveAlert(ctx, WithPduID(pduID), WithMetricType("environment"), WithAlertReason("critical_temperature_high"))
	is.NoErr(err)
	is.Equal(alert.ID, got.ID)
	is.Equal(43.0, got.Value)

	rec := types.AlertHistoryRecord{
		ActiveAlert:     got,
		ResolvedAt:      time.Now().UTC(),
		ResolvedBy:      "system",
		ResolutionType:  types.ResolutionAuto,
		DurationMinutes: 1,
	}
	is.NoErr(s.ArchiveAlert(ctx, rec))

	_, err = s.GetActiveAlert(ctx, WithPduID(pduID), WithMetricType("environment"), WithAlertReason("critical_temperature_high"))
	is.Equal(ErrNoRows, err)

	history, err := s.QueryAlertHistory(ctx, WithPduID(pduID))
	is.NoErr(err)
	is.Equal(1, len(history.Data))
}

func TestArchiveIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	pduID := "pdu-" + uuid.NewString()
	alert := testAlert(pduID)

	is.NoErr(s.AddActiveAlert(ctx, alert))

	rec := types.AlertHistoryRecord{
		ActiveAlert:    alert,
		ResolvedAt:     time.Now().UTC(),
		ResolvedBy:     "system",
		ResolutionType: types.ResolutionAuto,
	}

	// a concurrent close of the same alert must not duplicate history
	is.NoErr(s.ArchiveAlert(ctx, rec))
	is.NoErr(s.ArchiveAlert(ctx, rec))

	history, err := s.QueryAlertHistory(ctx, WithPduID(pduID))
	is.NoErr(err)
	is.Equal(1, len(history.Data))
}

func TestReopenUsesSamePrimaryKey(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	pduID := "pdu-" + uuid.NewString()

	first := testAlert(pduID)
	is.NoErr(s.AddActiveAlert(ctx, first))

	// same (pdu, metric, reason) key lands on the existing row
	second := testAlert(pduID)
	is.NoErr(s.AddActiveAlert(ctx, second))

	alerts, err := s.QueryActiveAlerts(ctx, WithPduID(pduID))
	is.NoErr(err)
	is.Equal(1, len(alerts.Data))
	is.Equal(first.ID, alerts.Data[0].ID)
}

func TestMaintenanceLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	entryID := uuid.NewString()
	rackA := "rack-" + uuid.NewString()
	rackB := "rack-" + uuid.NewString()
	now := time.Now().UTC()

	err := s.AddMaintenanceEntry(ctx, types.MaintenanceEntry{
		ID:        entryID,
		Type:      types.MaintenanceChain,
		Chain:     "A",
		DC:        "DC1",
		Site:      "MAD",
		StartedBy: "operator",
		StartedAt: now,
		Racks: []types.RackDetail{
			{RackID: rackA, AddedAt: now},
			{RackID: rackB, AddedAt: now},
		},
	})
	is.NoErr(err)

	suppressed, err := s.ListSuppressedRacks(ctx)
	is.NoErr(err)
	is.True(contains(suppressed, rackA))
	is.True(contains(suppressed, rackB))

	is.NoErr(s.RemoveRackDetail(ctx, entryID, rackA, "operator", time.Now().UTC()))

	suppressed, err = s.ListSuppressedRacks(ctx)
	is.NoErr(err)
	is.True(!contains(suppressed, rackA))
	is.True(contains(suppressed, rackB))

	is.NoErr(s.EndMaintenanceEntry(ctx, entryID, "operator", time.Now().UTC()))

	suppressed, err = s.ListSuppressedRacks(ctx)
	is.NoErr(err)
	is.True(!contains(suppressed, rackB))

	history, err := s.QueryMaintenanceHistory(ctx, WithEntryID(entryID))
	is.NoErr(err)
	is.Equal(2, len(history.Data))
}

func TestRemovingLastRackEndsEntry(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	entryID := uuid.NewString()
	rackID := "rack-" + uuid.NewString()
	now := time.Now().UTC()

	err := s.AddMaintenanceEntry(ctx, types.MaintenanceEntry{
		ID:        entryID,
		Type:      types.MaintenanceIndividualRack,
		RackID:    rackID,
		StartedBy: "operator",
		StartedAt: now,
		Racks:     []types.RackDetail{{RackID: rackID, AddedAt: now}},
	})
	is.NoErr(err)

	is.NoErr(s.RemoveRackDetail(ctx, entryID, rackID, "operator", time.Now().UTC()))

	_, err = s.GetMaintenanceEntry(ctx, entryID)
	is.Equal(ErrNoRows, err)
}

func TestCorrelationOutbox(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	pduID := "pdu-" + uuid.NewString()
	alert := testAlert(pduID)
	is.NoErr(s.AddActiveAlert(ctx, alert))

	task := CorrelationTask{
		AlertID:     alert.ID,
		Kind:        CorrelationOpen,
		PduID:       pduID,
		MetricType:  "environment",
		AlertReason: "critical_temperature_high",
		RackID:      alert.RackID,
	}

	is.NoErr(s.EnqueueCorrelation(ctx, task))
	// enqueueing the same transition twice is a no-op
	is.NoErr(s.EnqueueCorrelation(ctx, task))

	due, err := s.DueCorrelations(ctx, time.Now().UTC().Add(time.Second), 100)
	is.NoErr(err)
	is.True(containsTask(due, alert.ID))

	is.NoErr(s.SetUUIDOpen(ctx, alert.ID, "uuid-123"))

	got, err := s.GetActiveAlert(ctx, WithAlertID(alert.ID))
	is.NoErr(err)
	is.True(got.UUIDOpen != nil)
	is.Equal("uuid-123", *got.UUIDOpen)

	is.NoErr(s.CompleteCorrelation(ctx, alert.ID, CorrelationOpen))

	due, err = s.DueCorrelations(ctx, time.Now().UTC().Add(time.Second), 100)
	is.NoErr(err)
	is.True(!containsTask(due, alert.ID))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsTask(tasks []CorrelationTask, alertID string) bool {
	for _, t := range tasks {
		if t.AlertID == alertID {
			return true
		}
	}
	return false
}
