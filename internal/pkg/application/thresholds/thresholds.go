package thresholds

import (
	"context"
	"fmt"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out thresholdservice_mock.go . ThresholdService
type ThresholdService interface {
	Resolve(ctx context.Context, rackID string) (types.EffectiveThresholds, error)
	GetGlobals(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ThresholdConfig], error)
	UpdateGlobal(ctx context.Context, cfg types.ThresholdConfig) error
	GetOverrides(ctx context.Context, rackID string) (types.Collection[types.RackThresholdOverride], error)
	SetOverride(ctx context.Context, o types.RackThresholdOverride) error
	RemoveOverride(ctx context.Context, rackID, key string) error
}

//go:generate moq -rm -out thresholdrepository_mock.go . ThresholdRepository
type ThresholdRepository interface {
	QueryThresholds(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ThresholdConfig], error)
	UpsertThreshold(ctx context.Context, cfg types.ThresholdConfig) error
	QueryOverrides(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.RackThresholdOverride], error)
	UpsertOverride(ctx context.Context, o types.RackThresholdOverride) error
	DeleteOverride(ctx context.Context, rackID, key string) error
}

type thresholdSvc struct {
	storage ThresholdRepository
}

func New(s ThresholdRepository) ThresholdService {
	return &thresholdSvc{storage: s}
}

// Resolve merges the global threshold set with the rack's overrides. Each
// key is independent; an override replaces exactly one bound and nothing
// else. Rows whose key does not parse are skipped with a warning so one bad
// row cannot make a rack unevaluable.
func (svc thresholdSvc) Resolve(ctx context.Context, rackID string) (types.EffectiveThresholds, error) {
	log := logging.GetFromContext(ctx)

	globals, err := svc.storage.QueryThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load global thresholds: %w", err)
	}

	effective := make(types.EffectiveThresholds, len(globals.Data))

	for _, cfg := range globals.Data {
		key, err := types.ParseThresholdKey(cfg.Key)
		if err != nil {
			log.Warn("skipping threshold with invalid key", "key", cfg.Key)
			continue
		}
		effective[key] = cfg.Value
	}

	if rackID == "" {
		return effective, nil
	}

	overrides, err := svc.storage.QueryOverrides(ctx, storage.WithRackID(rackID))
	if err != nil {
		return nil, fmt.Errorf("could not load overrides for rack %s: %w", rackID, err)
	}

	for _, o := range overrides.Data {
		key, err := types.ParseThresholdKey(o.Key)
		if err != nil {
			log.Warn("skipping override with invalid key", "rack_id", rackID, "key", o.Key)
			continue
		}
		effective[key] = o.Value
	}

	return effective, nil
}

func (svc thresholdSvc) GetGlobals(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ThresholdConfig], error) {
	return svc.storage.QueryThresholds(ctx, conditions...)
}

func (svc thresholdSvc) UpdateGlobal(ctx context.Context, cfg types.ThresholdConfig) error {
	if _, err := types.ParseThresholdKey(cfg.Key); err != nil {
		return err
	}
	return svc.storage.UpsertThreshold(ctx, cfg)
}

func (svc thresholdSvc) GetOverrides(ctx context.Context, rackID string) (types.Collection[types.RackThresholdOverride], error) {
	return svc.storage.QueryOverrides(ctx, storage.WithRackID(rackID))
}

func (svc thresholdSvc) SetOverride(ctx context.Context, o types.RackThresholdOverride) error {
	if _, err := types.ParseThresholdKey(o.Key); err != nil {
		return err
	}
	return svc.storage.UpsertOverride(ctx, o)
}

func (svc thresholdSvc) RemoveOverride(ctx context.Context, rackID, key string) error {
	return svc.storage.DeleteOverride(ctx, rackID, key)
}
