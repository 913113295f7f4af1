package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) QueryThresholds(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ThresholdConfig], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "key"
	}

	query := fmt.Sprintf(`
		SELECT key, value, unit, coalesce(description,''), modified_on, count(*) OVER () AS count
		FROM threshold_config
		%s
		ORDER BY %s %s
		%s
	`, condition.Where(""), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ThresholdConfig]{}, err
	}

	var cfg types.ThresholdConfig
	var count int64
	configs := make([]types.ThresholdConfig, 0)

	_, err = pgx.ForEachRow(rows, []any{&cfg.Key, &cfg.Value, &cfg.Unit, &cfg.Description, &cfg.ModifiedOn, &count}, func() error {
		configs = append(configs, cfg)
		return nil
	})
	if err != nil {
		return types.Collection[types.ThresholdConfig]{}, err
	}

	return types.Collection[types.ThresholdConfig]{
		Data:       configs,
		Count:      uint64(len(configs)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// UpsertThreshold writes a global threshold. Keys are never deleted, only
// updated, and modified_on is refreshed on every write.
func (s *Storage) UpsertThreshold(ctx context.Context, cfg types.ThresholdConfig) error {
	if cfg.Key == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"key":         cfg.Key,
		"value":       cfg.Value,
		"unit":        cfg.Unit,
		"description": cfg.Description,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO threshold_config (key, value, unit, description)
		VALUES (@key, @value, @unit, @description)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, unit = EXCLUDED.unit, description = EXCLUDED.description,
			modified_on = CURRENT_TIMESTAMP
	`, args)

	return err
}

func (s *Storage) QueryOverrides(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.RackThresholdOverride], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "key"
	}

	query := fmt.Sprintf(`
		SELECT rack_id, key, value, unit, coalesce(description,''), modified_on, count(*) OVER () AS count
		FROM rack_threshold_overrides
		%s
		ORDER BY %s %s
		%s
	`, condition.Where(""), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.RackThresholdOverride]{}, err
	}

	var o types.RackThresholdOverride
	var count int64
	overrides := make([]types.RackThresholdOverride, 0)

	_, err = pgx.ForEachRow(rows, []any{&o.RackID, &o.Key, &o.Value, &o.Unit, &o.Description, &o.ModifiedOn, &count}, func() error {
		overrides = append(overrides, o)
		return nil
	})
	if err != nil {
		return types.Collection[types.RackThresholdOverride]{}, err
	}

	return types.Collection[types.RackThresholdOverride]{
		Data:       overrides,
		Count:      uint64(len(overrides)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpsertOverride(ctx context.Context, o types.RackThresholdOverride) error {
	if o.RackID == "" || o.Key == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"rack_id":     o.RackID,
		"key":         o.Key,
		"value":       o.Value,
		"unit":        o.Unit,
		"description": o.Description,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO rack_threshold_overrides (rack_id, key, value, unit, description)
		VALUES (@rack_id, @key, @value, @unit, @description)
		ON CONFLICT (rack_id, key) DO UPDATE
		SET value = EXCLUDED.value, unit = EXCLUDED.unit, description = EXCLUDED.description,
			modified_on = CURRENT_TIMESTAMP
	`, args)

	return err
}

// DeleteOverride reverts the rack to the global value for the key.
func (s *Storage) DeleteOverride(ctx context.Context, rackID, key string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM rack_threshold_overrides WHERE rack_id = @rack_id AND key = @key
	`, pgx.NamedArgs{"rack_id": rackID, "key": key})

	return err
}

func (s *Storage) GetThreshold(ctx context.Context, key string) (types.ThresholdConfig, error) {
	var cfg types.ThresholdConfig

	err := s.pool.QueryRow(ctx, `
		SELECT key, value, unit, coalesce(description,''), modified_on
		FROM threshold_config WHERE key = @key
	`, pgx.NamedArgs{"key": key}).Scan(&cfg.Key, &cfg.Value, &cfg.Unit, &cfg.Description, &cfg.ModifiedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ThresholdConfig{}, ErrNoRows
		}
		return types.ThresholdConfig{}, err
	}

	return cfg, nil
}

// SeedThresholds inserts defaults for keys that do not exist yet. Operator
// edits are never overwritten by a reseed.
func SeedThresholds(ctx context.Context, s *Storage, defaults []types.ThresholdConfig) error {
	for _, cfg := range defaults {
		if _, err := types.ParseThresholdKey(cfg.Key); err != nil {
			return fmt.Errorf("seed contains invalid threshold key %s: %w", cfg.Key, err)
		}

		args := pgx.NamedArgs{
			"key":         cfg.Key,
			"value":       cfg.Value,
			"unit":        cfg.Unit,
			"description": cfg.Description,
		}

		_, err := s.pool.Exec(ctx, `
			INSERT INTO threshold_config (key, value, unit, description)
			VALUES (@key, @value, @unit, @description)
			ON CONFLICT (key) DO NOTHING
		`, args)
		if err != nil {
			return err
		}
	}

	return nil
}
