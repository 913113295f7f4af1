package alerting

import (
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
)

// Evaluate compares every metric present in the reading against its
// resolved low/high bounds at both severity tiers. Amperage uses the
// single-phase or 3-phase key pair depending on the rack. When both tiers
// are violated for one metric only the critical reason is reported.
//
// Suppressed racks never generate reasons; suppression short-circuits here
// rather than being filtered downstream.
func Evaluate(r types.Reading, effective types.EffectiveThresholds, suppressed bool) []types.ViolationReason {
	if suppressed {
		return []types.ViolationReason{}
	}

	reasons := make([]types.ViolationReason, 0)

	check := func(metric types.Metric, value *float64, phase types.Phase) {
		if value == nil {
			return
		}

		for _, severity := range []types.Severity{types.SeverityCritical, types.SeverityWarning} {
			found := false

			if threshold, ok := effective.Lookup(metric, severity, types.BoundHigh, phase); ok && *value > threshold {
				reasons = append(reasons, types.ViolationReason{
					Severity:  severity,
					Metric:    metric,
					Bound:     types.BoundHigh,
					Value:     *value,
					Threshold: threshold,
				})
				found = true
			}

			if threshold, ok := effective.Lookup(metric, severity, types.BoundLow, phase); ok && *value < threshold {
				reasons = append(reasons, types.ViolationReason{
					Severity:  severity,
					Metric:    metric,
					Bound:     types.BoundLow,
					Value:     *value,
					Threshold: threshold,
				})
				found = true
			}

			// critical supersedes warning for the same metric
			if found {
				return
			}
		}
	}

	check(types.MetricTemperature, r.Temperature, types.PhaseNone)
	check(types.MetricHumidity, r.Humidity, types.PhaseNone)
	check(types.MetricVoltage, r.Voltage, types.PhaseNone)
	check(types.MetricPower, r.Power, types.PhaseNone)
	check(types.MetricAmperage, r.Amperage, r.Phase())

	return reasons
}
