package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddMaintenanceEntry stores the entry and its covered racks in one
// transaction.
func (s *Storage) AddMaintenanceEntry(ctx context.Context, entry types.MaintenanceEntry) error {
	if entry.ID == "" {
		return ErrNoID
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"entry_id":   entry.ID,
		"type":       entry.Type,
		"rack_id":    entry.RackID,
		"chain":      entry.Chain,
		"dc":         entry.DC,
		"site":       entry.Site,
		"reason":     entry.Reason,
		"started_by": entry.StartedBy,
		"started_at": entry.StartedAt,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO maintenance_entries (entry_id, type, rack_id, chain, dc, site, reason, started_by, started_at)
		VALUES (@entry_id, @type, @rack_id, @chain, @dc, @site, @reason, @started_by, @started_at)
	`, args)
	if err != nil {
		return err
	}

	for _, rd := range entry.Racks {
		_, err = tx.Exec(ctx, `
			INSERT INTO maintenance_rack_details (entry_id, rack_id, pdu_id, added_at)
			VALUES (@entry_id, @rack_id, @pdu_id, @added_at)
			ON CONFLICT (entry_id, rack_id) DO NOTHING
		`, pgx.NamedArgs{
			"entry_id": entry.ID,
			"rack_id":  rd.RackID,
			"pdu_id":   rd.PduID,
			"added_at": rd.AddedAt,
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Storage) GetMaintenanceEntry(ctx context.Context, entryID string) (types.MaintenanceEntry, error) {
	var entry types.MaintenanceEntry

	err := s.pool.QueryRow(ctx, `
		SELECT entry_id, type, coalesce(rack_id,''), coalesce(chain,''), coalesce(dc,''), coalesce(site,''),
			coalesce(reason,''), started_by, started_at
		FROM maintenance_entries WHERE entry_id = @entry_id
	`, pgx.NamedArgs{"entry_id": entryID}).Scan(&entry.ID, &entry.Type, &entry.RackID, &entry.Chain,
		&entry.DC, &entry.Site, &entry.Reason, &entry.StartedBy, &entry.StartedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.MaintenanceEntry{}, ErrNoRows
		}
		return types.MaintenanceEntry{}, err
	}

	entry.Racks, err = s.rackDetails(ctx, entryID)
	if err != nil {
		return types.MaintenanceEntry{}, err
	}

	return entry, nil
}

func (s *Storage) rackDetails(ctx context.Context, entryID string) ([]types.RackDetail, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT entry_id, rack_id, coalesce(pdu_id,''), added_at
		FROM maintenance_rack_details WHERE entry_id = @entry_id
		ORDER BY rack_id
	`, pgx.NamedArgs{"entry_id": entryID})
	if err != nil {
		return nil, err
	}

	var rd types.RackDetail
	details := make([]types.RackDetail, 0)

	_, err = pgx.ForEachRow(rows, []any{&rd.EntryID, &rd.RackID, &rd.PduID, &rd.AddedAt}, func() error {
		details = append(details, rd)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

func (s *Storage) QueryMaintenanceEntries(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.MaintenanceEntry], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "started_at"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT entry_id, type, coalesce(rack_id,''), coalesce(chain,''), coalesce(dc,''), coalesce(site,''),
			coalesce(reason,''), started_by, started_at, count(*) OVER () AS count
		FROM maintenance_entries
		%s
		ORDER BY %s %s
		%s
	`, condition.Where("started_at"), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.MaintenanceEntry]{}, err
	}

	var entry types.MaintenanceEntry
	var count int64
	entries := make([]types.MaintenanceEntry, 0)

	_, err = pgx.ForEachRow(rows, []any{&entry.ID, &entry.Type, &entry.RackID, &entry.Chain, &entry.DC,
		&entry.Site, &entry.Reason, &entry.StartedBy, &entry.StartedAt, &count}, func() error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return types.Collection[types.MaintenanceEntry]{}, err
	}

	for i := range entries {
		entries[i].Racks, err = s.rackDetails(ctx, entries[i].ID)
		if err != nil {
			return types.Collection[types.MaintenanceEntry]{}, err
		}
	}

	return types.Collection[types.MaintenanceEntry]{
		Data:       entries,
		Count:      uint64(len(entries)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// RemoveRackDetail takes one rack out of an entry and archives its
// maintenance period. Removing a rack that is no longer covered is a no-op.
// When the last rack leaves a chain entry the entry itself is removed.
func (s *Storage) RemoveRackDetail(ctx context.Context, entryID, rackID, endedBy string, endedAt time.Time) error {
	entry, err := s.GetMaintenanceEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil
		}
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM maintenance_rack_details WHERE entry_id = @entry_id AND rack_id = @rack_id
	`, pgx.NamedArgs{"entry_id": entryID, "rack_id": rackID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	err = archiveMaintenance(ctx, tx, entry, rackID, endedBy, endedAt)
	if err != nil {
		return err
	}

	if len(entry.Racks) == 1 {
		_, err = tx.Exec(ctx, `
			DELETE FROM maintenance_entries WHERE entry_id = @entry_id
		`, pgx.NamedArgs{"entry_id": entryID})
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// EndMaintenanceEntry archives every remaining covered rack and removes the
// entry.
func (s *Storage) EndMaintenanceEntry(ctx context.Context, entryID, endedBy string, endedAt time.Time) error {
	entry, err := s.GetMaintenanceEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil
		}
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, rd := range entry.Racks {
		err = archiveMaintenance(ctx, tx, entry, rd.RackID, endedBy, endedAt)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM maintenance_rack_details WHERE entry_id = @entry_id
	`, pgx.NamedArgs{"entry_id": entryID})
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM maintenance_entries WHERE entry_id = @entry_id
	`, pgx.NamedArgs{"entry_id": entryID})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func archiveMaintenance(ctx context.Context, tx pgx.Tx, entry types.MaintenanceEntry, rackID, endedBy string, endedAt time.Time) error {
	duration := int64(endedAt.Sub(entry.StartedAt).Minutes())

	_, err := tx.Exec(ctx, `
		INSERT INTO maintenance_history (entry_id, rack_id, type, chain, dc, site, reason,
			started_by, ended_by, started_at, ended_at, duration_minutes)
		VALUES (@entry_id, @rack_id, @type, @chain, @dc, @site, @reason,
			@started_by, @ended_by, @started_at, @ended_at, @duration_minutes)
		ON CONFLICT (entry_id, rack_id) DO NOTHING
	`, pgx.NamedArgs{
		"entry_id":         entry.ID,
		"rack_id":          rackID,
		"type":             entry.Type,
		"chain":            entry.Chain,
		"dc":               entry.DC,
		"site":             entry.Site,
		"reason":           entry.Reason,
		"started_by":       entry.StartedBy,
		"ended_by":         endedBy,
		"started_at":       entry.StartedAt,
		"ended_at":         endedAt,
		"duration_minutes": duration,
	})

	return err
}

// ListSuppressedRacks returns every rack currently covered by any entry.
func (s *Storage) ListSuppressedRacks(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT rack_id FROM maintenance_rack_details`)
	if err != nil {
		return nil, err
	}

	var rackID string
	racks := make([]string, 0)

	_, err = pgx.ForEachRow(rows, []any{&rackID}, func() error {
		racks = append(racks, rackID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return racks, nil
}

func (s *Storage) QueryMaintenanceHistory(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.MaintenanceHistoryRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "ended_at"
		condition.sortOrder = "DESC"
	}

	if condition.sortBy == "resolved_at" || condition.sortBy == "last_updated_at" {
		condition.sortBy = "ended_at"
	}

	query := fmt.Sprintf(`
		SELECT entry_id, rack_id, type, coalesce(chain,''), coalesce(dc,''), coalesce(site,''), coalesce(reason,''),
			started_by, ended_by, started_at, ended_at, duration_minutes, count(*) OVER () AS count
		FROM maintenance_history
		%s
		ORDER BY %s %s
		%s
	`, condition.Where("ended_at"), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.MaintenanceHistoryRecord]{}, err
	}

	var rec types.MaintenanceHistoryRecord
	var count int64
	records := make([]types.MaintenanceHistoryRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{&rec.EntryID, &rec.RackID, &rec.Type, &rec.Chain, &rec.DC, &rec.Site,
		&rec.Reason, &rec.StartedBy, &rec.EndedBy, &rec.StartedAt, &rec.EndedAt, &rec.DurationMinutes, &count}, func() error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return types.Collection[types.MaintenanceHistoryRecord]{}, err
	}

	return types.Collection[types.MaintenanceHistoryRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
