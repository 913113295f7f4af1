package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/alerting"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/maintenance"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/thresholds"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/presentation/api/auth"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func operatorCtx(ctx context.Context) context.Context {
	return auth.WithAccess(ctx, auth.Access{Name: "operator", Role: "operator"})
}

func observerCtx(ctx context.Context) context.Context {
	return auth.WithAccess(ctx, auth.Access{Name: "watcher", Role: auth.RoleObserver})
}

func TestQueryAlertsScopesToAllowedSites(t *testing.T) {
	is := is.New(t)

	var got *storage.Condition

	svc := &alerting.AlertServiceMock{
		QueryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ActiveAlert], error) {
			c := &storage.Condition{}
			for _, f := range conditions {
				f(c)
			}
			got = c
			return types.Collection[types.ActiveAlert]{Data: []types.ActiveAlert{{ID: "alert-1"}}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil)
	req = req.WithContext(auth.WithAccess(req.Context(), auth.Access{Name: "op", Role: "operator", Sites: []string{"MAD"}}))
	res := httptest.NewRecorder()

	queryAlertsHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal([]string{"MAD"}, got.AllowedSites)

	alerts := []types.ActiveAlert{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &alerts))
	is.Equal(1, len(alerts))
}

func TestCloseAlertNotFound(t *testing.T) {
	is := is.New(t)

	svc := &alerting.AlertServiceMock{
		CloseManualFunc: func(ctx context.Context, alertID, closedBy string) error {
			return alerting.ErrAlertNotFound
		},
	}

	res := patchThroughRouter(t, "/api/v0/alerts/nope", svc, operatorCtx)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestCloseAlertRecordsOperator(t *testing.T) {
	is := is.New(t)

	svc := &alerting.AlertServiceMock{
		CloseManualFunc: func(ctx context.Context, alertID, closedBy string) error {
			return nil
		},
	}

	res := patchThroughRouter(t, "/api/v0/alerts/alert-1", svc, operatorCtx)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.CloseManualCalls()))
	is.Equal("alert-1", svc.CloseManualCalls()[0].AlertID)
	is.Equal("operator", svc.CloseManualCalls()[0].ClosedBy)
}

func TestObserverMayNotCloseAlerts(t *testing.T) {
	is := is.New(t)

	svc := &alerting.AlertServiceMock{
		CloseManualFunc: func(ctx context.Context, alertID, closedBy string) error {
			return nil
		},
	}

	res := patchThroughRouter(t, "/api/v0/alerts/alert-1", svc, observerCtx)

	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(svc.CloseManualCalls()))
}

func patchThroughRouter(t *testing.T, target string, svc alerting.AlertService, withAccess func(context.Context) context.Context) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Patch("/api/v0/alerts/{alertID}", closeAlertHandler(testLogger, svc))

	req := httptest.NewRequest(http.MethodPatch, target, nil)
	req = req.WithContext(withAccess(req.Context()))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)
	return res
}

func TestStartChainMaintenance(t *testing.T) {
	is := is.New(t)

	svc := &maintenance.MaintenanceServiceMock{
		StartChainFunc: func(ctx context.Context, chain, dc, site, reason, startedBy string) (types.MaintenanceEntry, error) {
			return types.MaintenanceEntry{ID: "entry-1", Type: types.MaintenanceChain, Chain: chain, DC: dc}, nil
		},
	}

	body := bytes.NewBufferString(`{"type":"chain","chain":"A","dc":"DC1","site":"MAD","reason":"psu swap"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/maintenance", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	startMaintenanceHandler(testLogger, svc, alerting.NewStateCache()).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.StartChainCalls()))
	is.Equal("A", svc.StartChainCalls()[0].Chain)
	is.Equal("operator", svc.StartChainCalls()[0].StartedBy)
}

func TestStartChainMaintenanceEmptyChain(t *testing.T) {
	is := is.New(t)

	svc := &maintenance.MaintenanceServiceMock{
		StartChainFunc: func(ctx context.Context, chain, dc, site, reason, startedBy string) (types.MaintenanceEntry, error) {
			return types.MaintenanceEntry{}, maintenance.ErrEmptyChain
		},
	}

	body := bytes.NewBufferString(`{"type":"chain","chain":"Z","dc":"DC1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/maintenance", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	startMaintenanceHandler(testLogger, svc, alerting.NewStateCache()).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestStartRackMaintenanceUsesCachedReading(t *testing.T) {
	is := is.New(t)

	svc := &maintenance.MaintenanceServiceMock{
		StartRackFunc: func(ctx context.Context, reading types.Reading, site, reason, startedBy string) (types.MaintenanceEntry, error) {
			return types.MaintenanceEntry{ID: "entry-1", Type: types.MaintenanceIndividualRack, RackID: reading.RackID}, nil
		},
	}

	cache := alerting.NewStateCache()
	cache.Set("pdu-A01-1", types.RackState{
		Reading:   types.Reading{PduID: "pdu-A01-1", RackID: "rack-A01", Chain: "A", DC: "DC1", Site: "MAD"},
		Status:    types.RackStatusOK,
		UpdatedAt: time.Now(),
	})

	body := bytes.NewBufferString(`{"type":"individual_rack","rackID":"rack-A01"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/maintenance", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	startMaintenanceHandler(testLogger, svc, cache).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.StartRackCalls()))
	is.Equal("A", svc.StartRackCalls()[0].Reading.Chain)
}

func TestStartMaintenanceRejectsUnknownType(t *testing.T) {
	is := is.New(t)

	svc := &maintenance.MaintenanceServiceMock{}

	body := bytes.NewBufferString(`{"type":"fleet"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/maintenance", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	startMaintenanceHandler(testLogger, svc, alerting.NewStateCache()).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestUpdateThresholdRejectsInvalidKey(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		UpdateGlobalFunc: func(ctx context.Context, cfg types.ThresholdConfig) error {
			return types.ErrInvalidThresholdKey
		},
	}

	router := chi.NewRouter()
	router.Put("/api/v0/thresholds/{key}", updateThresholdHandler(testLogger, svc))

	body := bytes.NewBufferString(`{"value":50,"unit":"°C"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v0/thresholds/bogus", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestUpdateThresholdTakesKeyFromPath(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		UpdateGlobalFunc: func(ctx context.Context, cfg types.ThresholdConfig) error {
			return nil
		},
	}

	router := chi.NewRouter()
	router.Put("/api/v0/thresholds/{key}", updateThresholdHandler(testLogger, svc))

	body := bytes.NewBufferString(`{"key":"ignored","value":42,"unit":"°C"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v0/thresholds/critical_temperature_high", body)
	req = req.WithContext(operatorCtx(req.Context()))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal("critical_temperature_high", svc.UpdateGlobalCalls()[0].Cfg.Key)
	is.Equal(42.0, svc.UpdateGlobalCalls()[0].Cfg.Value)
}

func TestQueryRacksAlertsOnlyView(t *testing.T) {
	is := is.New(t)

	cache := alerting.NewStateCache()
	cache.Set("pdu-1", types.RackState{
		Reading:   types.Reading{RackID: "rack-ok", PduID: "pdu-1"},
		Status:    types.RackStatusOK,
		UpdatedAt: time.Now(),
	})
	cache.Set("pdu-2", types.RackState{
		Reading:   types.Reading{RackID: "rack-hot", PduID: "pdu-2"},
		Status:    types.RackStatusCritical,
		Reasons:   []types.ViolationReason{{Severity: types.SeverityCritical, Metric: types.MetricTemperature, Bound: types.BoundHigh}},
		UpdatedAt: time.Now(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/racks?mode=alerts-only", nil)
	res := httptest.NewRecorder()

	queryRacksHandler(testLogger, cache).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	racks := []types.RackState{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &racks))
	is.Equal(1, len(racks))
	is.Equal("rack-hot", racks[0].Reading.RackID)
}
