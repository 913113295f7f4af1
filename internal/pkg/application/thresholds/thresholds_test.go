package thresholds

import (
	"context"
	"errors"
	"testing"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/matryer/is"
)

func repoWith(globals []types.ThresholdConfig, overrides []types.RackThresholdOverride) *ThresholdRepositoryMock {
	return &ThresholdRepositoryMock{
		QueryThresholdsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ThresholdConfig], error) {
			return types.Collection[types.ThresholdConfig]{Data: globals, Count: uint64(len(globals))}, nil
		},
		QueryOverridesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.RackThresholdOverride], error) {
			return types.Collection[types.RackThresholdOverride]{Data: overrides, Count: uint64(len(overrides))}, nil
		},
	}
}

func TestResolveMergesGlobalsAndOverrides(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	globals := []types.ThresholdConfig{
		{Key: "critical_temperature_high", Value: 40},
		{Key: "warning_temperature_high", Value: 35},
		{Key: "critical_humidity_low", Value: 20},
	}
	overrides := []types.RackThresholdOverride{
		{RackID: "rack-A01", Key: "critical_temperature_high", Value: 45},
	}

	svc := New(repoWith(globals, overrides))

	effective, err := svc.Resolve(ctx, "rack-A01")
	is.NoErr(err)
	is.Equal(3, len(effective))

	// the override replaces exactly one key
	v, ok := effective.Lookup(types.MetricTemperature, types.SeverityCritical, types.BoundHigh, types.PhaseNone)
	is.True(ok)
	is.Equal(45.0, v)

	v, ok = effective.Lookup(types.MetricTemperature, types.SeverityWarning, types.BoundHigh, types.PhaseNone)
	is.True(ok)
	is.Equal(35.0, v)

	v, ok = effective.Lookup(types.MetricHumidity, types.SeverityCritical, types.BoundLow, types.PhaseNone)
	is.True(ok)
	is.Equal(20.0, v)
}

func TestResolveWithoutRackSkipsOverrides(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repo := repoWith([]types.ThresholdConfig{{Key: "critical_temperature_high", Value: 40}}, nil)
	svc := New(repo)

	effective, err := svc.Resolve(ctx, "")
	is.NoErr(err)
	is.Equal(1, len(effective))
	is.Equal(0, len(repo.QueryOverridesCalls()))
}

func TestResolveSkipsRowsWithBadKeys(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	globals := []types.ThresholdConfig{
		{Key: "critical_temperature_high", Value: 40},
		{Key: "bogus", Value: 1},
	}

	svc := New(repoWith(globals, nil))

	effective, err := svc.Resolve(ctx, "")
	is.NoErr(err)
	is.Equal(1, len(effective))
}

func TestResolveParsesPhaseQualifiedKeys(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	globals := []types.ThresholdConfig{
		{Key: "critical_amperage_high_3phase", Value: 32},
		{Key: "critical_amperage_high_single_phase", Value: 16},
	}

	svc := New(repoWith(globals, nil))

	effective, err := svc.Resolve(ctx, "")
	is.NoErr(err)

	v, ok := effective.Lookup(types.MetricAmperage, types.SeverityCritical, types.BoundHigh, types.PhaseThree)
	is.True(ok)
	is.Equal(32.0, v)

	v, ok = effective.Lookup(types.MetricAmperage, types.SeverityCritical, types.BoundHigh, types.PhaseSingle)
	is.True(ok)
	is.Equal(16.0, v)
}

func TestUpdateGlobalRejectsInvalidKey(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repo := &ThresholdRepositoryMock{}
	svc := New(repo)

	err := svc.UpdateGlobal(ctx, types.ThresholdConfig{Key: "sideways_temperature_high", Value: 40})
	is.True(errors.Is(err, types.ErrInvalidThresholdKey))
	is.Equal(0, len(repo.UpsertThresholdCalls()))
}

func TestSetOverrideRejectsInvalidKey(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repo := &ThresholdRepositoryMock{}
	svc := New(repo)

	err := svc.SetOverride(ctx, types.RackThresholdOverride{RackID: "rack-A01", Key: "critical_frequency_high", Value: 50})
	is.True(errors.Is(err, types.ErrInvalidThresholdKey))
	is.Equal(0, len(repo.UpsertOverrideCalls()))
}
