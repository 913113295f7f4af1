package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/alerting"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/maintenance"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/thresholds"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/views"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/presentation/api/auth"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pdu-alert-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader,
	alertSvc alerting.AlertService, maintSvc maintenance.MaintenanceService,
	thresholdSvc thresholds.ThresholdService, racks *alerting.StateCache) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, alertSvc))
				r.Delete("/", closeAllAlertsHandler(log, alertSvc))
				r.Patch("/{alertID}", closeAlertHandler(log, alertSvc))
				r.Get("/history", alertHistoryHandler(log, alertSvc))
			})

			r.Route("/maintenance", func(r chi.Router) {
				r.Get("/", queryMaintenanceHandler(log, maintSvc))
				r.Post("/", startMaintenanceHandler(log, maintSvc, racks))
				r.Delete("/", endAllMaintenanceHandler(log, maintSvc))
				r.Delete("/{entryID}", endMaintenanceHandler(log, maintSvc))
				r.Delete("/{entryID}/racks/{rackID}", removeMaintenanceRackHandler(log, maintSvc))
				r.Get("/history", maintenanceHistoryHandler(log, maintSvc))
			})

			r.Route("/thresholds", func(r chi.Router) {
				r.Get("/", queryThresholdsHandler(log, thresholdSvc))
				r.Put("/{key}", updateThresholdHandler(log, thresholdSvc))
			})

			r.Route("/racks", func(r chi.Router) {
				r.Get("/", queryRacksHandler(log, racks))
				r.Get("/{rackID}/thresholds", queryOverridesHandler(log, thresholdSvc))
				r.Put("/{rackID}/thresholds/{key}", setOverrideHandler(log, thresholdSvc))
				r.Delete("/{rackID}/thresholds/{key}", removeOverrideHandler(log, thresholdSvc))
			})
		})
	})

	return router, nil
}

type apiError struct {
	Error string `json:"error"`
}

func writeJson(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// requireMutate rejects read-only callers before any state change, with a
// reason the caller can act on.
func requireMutate(w http.ResponseWriter, r *http.Request, action string) bool {
	access := auth.GetAccessFromContext(r.Context())
	if access.CanMutate() {
		return true
	}

	writeJson(w, http.StatusForbidden, apiError{
		Error: fmt.Sprintf("role %q may not %s", access.Role, action),
	})
	return false
}

func queryAlertsHandler(log *slog.Logger, svc alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		if sites := auth.GetAllowedSitesFromContext(ctx); len(sites) > 0 {
			conditions = append(conditions, storage.WithAllowedSites(sites))
		}

		alerts, err := svc.Query(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, alerts.Data)
	}
}

func closeAlertHandler(log *slog.Logger, svc alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "close-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "close alerts") {
			return
		}

		alertID := chi.URLParam(r, "alertID")
		closedBy := auth.GetAccessFromContext(ctx).Name

		err = svc.CloseManual(ctx, alertID, closedBy)
		if errors.Is(err, alerting.ErrAlertNotFound) {
			requestLogger.Debug("alert not found", "alert_id", alertID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to close alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func closeAllAlertsHandler(log *slog.Logger, svc alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "close-all-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "close alerts") {
			return
		}

		err = svc.CloseAll(ctx, auth.GetAccessFromContext(ctx).Name)
		if err != nil {
			requestLogger.Error("unable to close all alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func alertHistoryHandler(log *slog.Logger, svc alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "alert-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		if sites := auth.GetAllowedSitesFromContext(ctx); len(sites) > 0 {
			conditions = append(conditions, storage.WithAllowedSites(sites))
		}

		history, err := svc.History(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch alert history", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, history.Data)
	}
}

func queryMaintenanceHandler(log *slog.Logger, svc maintenance.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-maintenance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		entries, err := svc.Query(ctx, storage.ParseConditions(ctx, r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch maintenance entries", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, entries.Data)
	}
}

type startMaintenanceRequest struct {
	Type   string `json:"type"`
	RackID string `json:"rackID,omitempty"`
	Chain  string `json:"chain,omitempty"`
	DC     string `json:"dc,omitempty"`
	Site   string `json:"site,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func startMaintenanceHandler(log *slog.Logger, svc maintenance.MaintenanceService, racks *alerting.StateCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "start-maintenance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "start maintenance") {
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		req := startMaintenanceRequest{}
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		startedBy := auth.GetAccessFromContext(ctx).Name

		var entry types.MaintenanceEntry

		switch req.Type {
		case types.MaintenanceChain:
			entry, err = svc.StartChain(ctx, req.Chain, req.DC, req.Site, req.Reason, startedBy)
		case types.MaintenanceIndividualRack:
			reading := types.Reading{RackID: req.RackID, Chain: req.Chain, DC: req.DC, Site: req.Site}
			if state, ok := racks.GetByRack(req.RackID); ok {
				reading = state.Reading
			}
			entry, err = svc.StartRack(ctx, reading, req.Site, req.Reason, startedBy)
		default:
			writeJson(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("unknown maintenance type %q", req.Type)})
			return
		}

		if errors.Is(err, maintenance.ErrEmptyChain) {
			writeJson(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("chain %q in dc %q has no known racks", req.Chain, req.DC)})
			return
		}
		if err != nil {
			requestLogger.Error("unable to start maintenance", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusCreated, entry)
	}
}

func endMaintenanceHandler(log *slog.Logger, svc maintenance.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "end-maintenance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "end maintenance") {
			return
		}

		err = svc.End(ctx, chi.URLParam(r, "entryID"), auth.GetAccessFromContext(ctx).Name)
		if err != nil {
			requestLogger.Error("unable to end maintenance", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func endAllMaintenanceHandler(log *slog.Logger, svc maintenance.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "end-all-maintenance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "end maintenance") {
			return
		}

		err = svc.EndAll(ctx, auth.GetAccessFromContext(ctx).Name)
		if err != nil {
			requestLogger.Error("unable to end all maintenance", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func removeMaintenanceRackHandler(log *slog.Logger, svc maintenance.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "remove-maintenance-rack")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "end maintenance") {
			return
		}

		entryID := chi.URLParam(r, "entryID")
		rackID := chi.URLParam(r, "rackID")

		// removing a rack that already left the entry reports success
		err = svc.RemoveRack(ctx, entryID, rackID, auth.GetAccessFromContext(ctx).Name)
		if err != nil {
			requestLogger.Error("unable to remove rack from maintenance", "entry_id", entryID, "rack_id", rackID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func maintenanceHistoryHandler(log *slog.Logger, svc maintenance.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "maintenance-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		history, err := svc.History(ctx, storage.ParseConditions(ctx, r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch maintenance history", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, history.Data)
	}
}

func queryThresholdsHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-thresholds")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		configs, err := svc.GetGlobals(ctx, storage.ParseConditions(ctx, r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch thresholds", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, configs.Data)
	}
}

func updateThresholdHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-threshold")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "modify thresholds") {
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		cfg := types.ThresholdConfig{}
		err = json.Unmarshal(body, &cfg)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		cfg.Key = chi.URLParam(r, "key")

		err = svc.UpdateGlobal(ctx, cfg)
		if errors.Is(err, types.ErrInvalidThresholdKey) {
			writeJson(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("%q is not a valid threshold key", cfg.Key)})
			return
		}
		if err != nil {
			requestLogger.Error("unable to update threshold", "key", cfg.Key, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryOverridesHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-overrides")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		overrides, err := svc.GetOverrides(ctx, chi.URLParam(r, "rackID"))
		if err != nil {
			requestLogger.Error("unable to fetch overrides", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, http.StatusOK, overrides.Data)
	}
}

func setOverrideHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "set-override")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "modify thresholds") {
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		o := types.RackThresholdOverride{}
		err = json.Unmarshal(body, &o)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		o.RackID = chi.URLParam(r, "rackID")
		o.Key = chi.URLParam(r, "key")

		err = svc.SetOverride(ctx, o)
		if errors.Is(err, types.ErrInvalidThresholdKey) {
			writeJson(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("%q is not a valid threshold key", o.Key)})
			return
		}
		if err != nil {
			requestLogger.Error("unable to set override", "rack_id", o.RackID, "key", o.Key, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func removeOverrideHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "remove-override")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if !requireMutate(w, r, "modify thresholds") {
			return
		}

		err = svc.RemoveOverride(ctx, chi.URLParam(r, "rackID"), chi.URLParam(r, "key"))
		if err != nil {
			requestLogger.Error("unable to remove override", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryRacksHandler(log *slog.Logger, racks *alerting.StateCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "query-racks")
		defer span.End()

		q := r.URL.Query()

		mode := views.ViewMode(q.Get("mode"))
		if mode == "" {
			mode = views.ModeAllEquipment
		}

		criteria := views.Criteria{
			Country:    q.Get("country"),
			Site:       q.Get("site"),
			DC:         q.Get("dc"),
			Search:     q.Get("search"),
			Field:      q.Get("field"),
			Value:      q.Get("value"),
			Status:     q.Get("status"),
			MetricType: q.Get("metric"),
		}

		filtered := views.Filter(racks.List(), mode, criteria)

		if q.Get("grouped") == "true" {
			writeJson(w, http.StatusOK, views.Group(filtered))
			return
		}

		writeJson(w, http.StatusOK, filtered)
	}
}
