package types

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseThresholdKey(t *testing.T) {
	is := is.New(t)

	k, err := ParseThresholdKey("critical_temperature_high")
	is.NoErr(err)
	is.Equal(SeverityCritical, k.Severity)
	is.Equal(MetricTemperature, k.Metric)
	is.Equal(BoundHigh, k.Bound)
	is.Equal(PhaseNone, k.Phase)
}

func TestParseThresholdKeyWithPhase(t *testing.T) {
	is := is.New(t)

	k, err := ParseThresholdKey("warning_amperage_high_3phase")
	is.NoErr(err)
	is.Equal(SeverityWarning, k.Severity)
	is.Equal(MetricAmperage, k.Metric)
	is.Equal(PhaseThree, k.Phase)

	k, err = ParseThresholdKey("critical_amperage_high_single_phase")
	is.NoErr(err)
	is.Equal(PhaseSingle, k.Phase)
}

func TestParseThresholdKeyRejectsGarbage(t *testing.T) {
	is := is.New(t)

	for _, bad := range []string{
		"",
		"critical",
		"critical_temperature",
		"severe_temperature_high",
		"critical_frequency_high",
		"critical_temperature_sideways",
		"critical_amperage_high_5phase",
	} {
		_, err := ParseThresholdKey(bad)
		is.Equal(ErrInvalidThresholdKey, err)
	}
}

func TestThresholdKeyRoundTrip(t *testing.T) {
	is := is.New(t)

	for _, s := range []string{
		"critical_temperature_high",
		"warning_humidity_low",
		"critical_amperage_high_3phase",
		"warning_amperage_low_single_phase",
	} {
		k, err := ParseThresholdKey(s)
		is.NoErr(err)
		is.Equal(s, k.String())
	}
}

func TestReadingPhase(t *testing.T) {
	is := is.New(t)

	is.Equal(PhaseSingle, Reading{}.Phase())
	is.Equal(PhaseThree, Reading{ThreePhase: true}.Phase())
}

func TestViolationReasonTag(t *testing.T) {
	is := is.New(t)

	v := ViolationReason{Severity: SeverityCritical, Metric: MetricTemperature, Bound: BoundHigh}
	is.Equal("critical_temperature", v.Tag())
}

func TestActiveAlertKey(t *testing.T) {
	is := is.New(t)

	a := ActiveAlert{PduID: "pdu-001", MetricType: "environment", AlertReason: "critical_temperature_high"}
	is.Equal("pdu-001/environment/critical_temperature_high", a.Key())
}
