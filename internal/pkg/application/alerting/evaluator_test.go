package alerting

import (
	"testing"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/matryer/is"
)

func defaultThresholds() types.EffectiveThresholds {
	return types.EffectiveThresholds{
		{Metric: types.MetricTemperature, Severity: types.SeverityCritical, Bound: types.BoundHigh}: 40,
		{Metric: types.MetricTemperature, Severity: types.SeverityWarning, Bound: types.BoundHigh}:  35,
		{Metric: types.MetricHumidity, Severity: types.SeverityCritical, Bound: types.BoundLow}:     20,
		{Metric: types.MetricAmperage, Severity: types.SeverityCritical, Bound: types.BoundHigh, Phase: types.PhaseSingle}: 16,
		{Metric: types.MetricAmperage, Severity: types.SeverityCritical, Bound: types.BoundHigh, Phase: types.PhaseThree}:  32,
	}
}

func f(v float64) *float64 { return &v }

func TestEvaluateReportsCriticalHighTemperature(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Temperature: f(42)}, defaultThresholds(), false)

	is.Equal(1, len(reasons))
	is.Equal(types.SeverityCritical, reasons[0].Severity)
	is.Equal(types.MetricTemperature, reasons[0].Metric)
	is.Equal(types.BoundHigh, reasons[0].Bound)
	is.Equal(42.0, reasons[0].Value)
	is.Equal(40.0, reasons[0].Threshold)
}

func TestEvaluateRespectsRaisedOverride(t *testing.T) {
	is := is.New(t)

	effective := defaultThresholds()
	effective[types.ThresholdKey{Metric: types.MetricTemperature, Severity: types.SeverityCritical, Bound: types.BoundHigh}] = 45
	effective[types.ThresholdKey{Metric: types.MetricTemperature, Severity: types.SeverityWarning, Bound: types.BoundHigh}] = 44

	reasons := Evaluate(types.Reading{Temperature: f(42)}, effective, false)

	is.Equal(0, len(reasons))
}

func TestEvaluateCriticalSupersedesWarning(t *testing.T) {
	is := is.New(t)

	// 42 exceeds both the warning bound (35) and the critical bound (40)
	reasons := Evaluate(types.Reading{Temperature: f(42)}, defaultThresholds(), false)

	is.Equal(1, len(reasons))
	is.Equal(types.SeverityCritical, reasons[0].Severity)
}

func TestEvaluateWarningOnlyBetweenBounds(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Temperature: f(37)}, defaultThresholds(), false)

	is.Equal(1, len(reasons))
	is.Equal(types.SeverityWarning, reasons[0].Severity)
}

func TestEvaluateLowBound(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Humidity: f(12)}, defaultThresholds(), false)

	is.Equal(1, len(reasons))
	is.Equal(types.MetricHumidity, reasons[0].Metric)
	is.Equal(types.BoundLow, reasons[0].Bound)
}

func TestEvaluateSuppressedRackHasNoReasons(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Temperature: f(99), Humidity: f(1)}, defaultThresholds(), true)

	is.Equal(0, len(reasons))
}

func TestEvaluateAmperagePhaseSelection(t *testing.T) {
	is := is.New(t)

	// 20A exceeds the single-phase bound but not the 3-phase one
	single := Evaluate(types.Reading{Amperage: f(20)}, defaultThresholds(), false)
	is.Equal(1, len(single))
	is.Equal(16.0, single[0].Threshold)

	three := Evaluate(types.Reading{Amperage: f(20), ThreePhase: true}, defaultThresholds(), false)
	is.Equal(0, len(three))
}

func TestEvaluateSkipsMissingConfiguration(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Voltage: f(9000)}, defaultThresholds(), false)

	is.Equal(0, len(reasons))
}

func TestEvaluateNilValuesAreNotEvaluated(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{}, defaultThresholds(), false)

	is.Equal(0, len(reasons))
}

func TestEvaluateMultipleMetrics(t *testing.T) {
	is := is.New(t)

	reasons := Evaluate(types.Reading{Temperature: f(42), Humidity: f(12)}, defaultThresholds(), false)

	is.Equal(2, len(reasons))
}
