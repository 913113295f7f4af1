package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

const activeAlertColumns = `alert_id, pdu_id, metric_type, alert_reason, severity, value, threshold,
	rack_id, coalesce(chain,''), coalesce(node,''), coalesce(site,''), coalesce(dc,''), coalesce(country,''),
	coalesce(gw_name,''), coalesce(gw_ip,''), started_at, last_updated_at, uuid_open`

func scanActiveAlert(dest *types.ActiveAlert) []any {
	return []any{
		&dest.ID, &dest.PduID, &dest.MetricType, &dest.AlertReason, &dest.Severity, &dest.Value,
		&dest.ThresholdExceeded, &dest.RackID, &dest.Chain, &dest.Node, &dest.Site, &dest.DC,
		&dest.Country, &dest.GatewayName, &dest.GatewayIP, &dest.StartedAt, &dest.LastUpdatedAt,
		&dest.UUIDOpen,
	}
}

func (s *Storage) QueryActiveAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ActiveAlert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "started_at"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM active_alerts
		%s
		ORDER BY %s %s
		%s
	`, activeAlertColumns, condition.Where("last_updated_at"), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ActiveAlert]{}, err
	}

	var count int64
	var a types.ActiveAlert
	alerts := make([]types.ActiveAlert, 0)

	_, err = pgx.ForEachRow(rows, append(scanActiveAlert(&a), &count), func() error {
		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		return types.Collection[types.ActiveAlert]{}, err
	}

	return types.Collection[types.ActiveAlert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetActiveAlert(ctx context.Context, conditions ...ConditionFunc) (types.ActiveAlert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`SELECT %s FROM active_alerts %s`, activeAlertColumns, condition.Where("last_updated_at"))

	var a types.ActiveAlert

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(scanActiveAlert(&a)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ActiveAlert{}, ErrNoRows
		}
		return types.ActiveAlert{}, err
	}

	return a, nil
}

// AddActiveAlert opens an alert, or refreshes value, threshold and
// last_updated_at when the (pdu_id, metric_type, alert_reason) key is
// already open. The open row's identity and started_at never change.
func (s *Storage) AddActiveAlert(ctx context.Context, alert types.ActiveAlert) error {
	if alert.ID == "" || alert.PduID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":        alert.ID,
		"pdu_id":          alert.PduID,
		"metric_type":     alert.MetricType,
		"alert_reason":    alert.AlertReason,
		"severity":        string(alert.Severity),
		"value":           alert.Value,
		"threshold":       alert.ThresholdExceeded,
		"rack_id":         alert.RackID,
		"chain":           alert.Chain,
		"node":            alert.Node,
		"site":            alert.Site,
		"dc":              alert.DC,
		"country":         alert.Country,
		"gw_name":         alert.GatewayName,
		"gw_ip":           alert.GatewayIP,
		"started_at":      alert.StartedAt,
		"last_updated_at": alert.LastUpdatedAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO active_alerts (alert_id, pdu_id, metric_type, alert_reason, severity, value, threshold,
			rack_id, chain, node, site, dc, country, gw_name, gw_ip, started_at, last_updated_at)
		VALUES (@alert_id, @pdu_id, @metric_type, @alert_reason, @severity, @value, @threshold,
			@rack_id, @chain, @node, @site, @dc, @country, @gw_name, @gw_ip, @started_at, @last_updated_at)
		ON CONFLICT (pdu_id, metric_type, alert_reason) DO UPDATE
		SET value = EXCLUDED.value,
			threshold = EXCLUDED.threshold,
			last_updated_at = GREATEST(active_alerts.last_updated_at, EXCLUDED.last_updated_at)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) RefreshActiveAlert(ctx context.Context, pduID, metricType, reason string, value, threshold float64, ts time.Time) error {
	args := pgx.NamedArgs{
		"pdu_id":          pduID,
		"metric_type":     metricType,
		"alert_reason":    reason,
		"value":           value,
		"threshold":       threshold,
		"last_updated_at": ts,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE active_alerts
		SET value = @value, threshold = @threshold,
			last_updated_at = GREATEST(last_updated_at, @last_updated_at)
		WHERE pdu_id = @pdu_id AND metric_type = @metric_type AND alert_reason = @alert_reason
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// ArchiveAlert moves an open alert into alert_history. The insert and the
// delete commit together; re-archiving an already archived alert id is a
// no-op, so a close can safely be retried.
func (s *Storage) ArchiveAlert(ctx context.Context, rec types.AlertHistoryRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"alert_id":         rec.ID,
		"pdu_id":           rec.PduID,
		"metric_type":      rec.MetricType,
		"alert_reason":     rec.AlertReason,
		"severity":         string(rec.Severity),
		"value":            rec.Value,
		"threshold":        rec.ThresholdExceeded,
		"rack_id":          rec.RackID,
		"chain":            rec.Chain,
		"node":             rec.Node,
		"site":             rec.Site,
		"dc":               rec.DC,
		"country":          rec.Country,
		"gw_name":          rec.GatewayName,
		"gw_ip":            rec.GatewayIP,
		"started_at":       rec.StartedAt,
		"resolved_at":      rec.ResolvedAt,
		"resolved_by":      rec.ResolvedBy,
		"resolution_type":  rec.ResolutionType,
		"duration_minutes": rec.DurationMinutes,
		"uuid_open":        rec.UUIDOpen,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO alert_history (alert_id, pdu_id, metric_type, alert_reason, severity, value, threshold,
			rack_id, chain, node, site, dc, country, gw_name, gw_ip, started_at,
			resolved_at, resolved_by, resolution_type, duration_minutes, uuid_open)
		VALUES (@alert_id, @pdu_id, @metric_type, @alert_reason, @severity, @value, @threshold,
			@rack_id, @chain, @node, @site, @dc, @country, @gw_name, @gw_ip, @started_at,
			@resolved_at, @resolved_by, @resolution_type, @duration_minutes, @uuid_open)
		ON CONFLICT (alert_id) DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM active_alerts WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": rec.ID})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) QueryAlertHistory(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.AlertHistoryRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "resolved_at"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s, resolved_at, resolved_by, resolution_type, duration_minutes, uuid_closed, count(*) OVER () AS count
		FROM alert_history
		%s
		ORDER BY %s %s
		%s
	`, activeAlertColumns, condition.Where("resolved_at"), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.AlertHistoryRecord]{}, err
	}

	var count int64
	var rec types.AlertHistoryRecord
	records := make([]types.AlertHistoryRecord, 0)

	scan := append(scanActiveAlert(&rec.ActiveAlert),
		&rec.ResolvedAt, &rec.ResolvedBy, &rec.ResolutionType, &rec.DurationMinutes, &rec.UUIDClosed, &count)

	_, err = pgx.ForEachRow(rows, scan, func() error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return types.Collection[types.AlertHistoryRecord]{}, err
	}

	return types.Collection[types.AlertHistoryRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// SetUUIDOpen stores the external correlation id from the open exchange.
// The alert may already have been archived, so both tables are updated.
func (s *Storage) SetUUIDOpen(ctx context.Context, alertID, correlationID string) error {
	args := pgx.NamedArgs{"alert_id": alertID, "uuid": correlationID}

	_, err := s.pool.Exec(ctx, `
		UPDATE active_alerts SET uuid_open = @uuid WHERE alert_id = @alert_id AND uuid_open IS NULL
	`, args)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE alert_history SET uuid_open = @uuid WHERE alert_id = @alert_id AND uuid_open IS NULL
	`, args)

	return err
}

func (s *Storage) SetUUIDClosed(ctx context.Context, alertID, correlationID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE alert_history SET uuid_closed = @uuid WHERE alert_id = @alert_id AND uuid_closed IS NULL
	`, pgx.NamedArgs{"alert_id": alertID, "uuid": correlationID})

	return err
}

// StaleActiveAlerts returns open alerts that have not been re-observed
// since the given cutoff.
func (s *Storage) StaleActiveAlerts(ctx context.Context, cutoff time.Time) ([]types.ActiveAlert, error) {
	query := fmt.Sprintf(`SELECT %s FROM active_alerts WHERE last_updated_at < @cutoff`, activeAlertColumns)

	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"cutoff": cutoff.UTC()})
	if err != nil {
		return nil, err
	}

	var a types.ActiveAlert
	alerts := make([]types.ActiveAlert, 0)

	_, err = pgx.ForEachRow(rows, scanActiveAlert(&a), func() error {
		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
