package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestEnvironmentOverridesDefaults(t *testing.T) {
	is := is.New(t)

	t.Setenv("CONFIGURATION_FILE", "/etc/pdumonitor/config.yaml")
	t.Setenv("POLICIES_FILE", "/etc/pdumonitor/authz.rego")
	t.Setenv("POSTGRES_HOST", "db.internal")

	_, flags := parseExternalConfig(context.Background(), defaultFlags())

	is.Equal("/etc/pdumonitor/config.yaml", flags[configurationFile])
	is.Equal("/etc/pdumonitor/authz.rego", flags[policiesFile])
	is.Equal("db.internal", flags[dbHost])

	// untouched defaults survive
	is.Equal("8080", flags[servicePort])
}

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(io.NopCloser(strings.NewReader(configYaml)))
	is.NoErr(err)

	is.Equal(2, len(cfg.Thresholds))
	is.Equal("critical_temperature_high", cfg.Thresholds[0].Key)
	is.Equal(40.0, cfg.Thresholds[0].Value)
	is.Equal("30s", cfg.Alerting.CycleInterval)
	is.Equal(3, cfg.Alerting.StaleAfterCycles)
	is.Equal("1m", cfg.Correlation.Interval)
}

func TestParseDurationOrDefault(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	is.Equal(45*time.Second, parseDurationOrDefault(ctx, "45s", time.Minute))
	is.Equal(time.Minute, parseDurationOrDefault(ctx, "", time.Minute))
	is.Equal(time.Minute, parseDurationOrDefault(ctx, "bogus", time.Minute))
}

const configYaml string = `
thresholds:
  - key: critical_temperature_high
    value: 40
    unit: "°C"
  - key: warning_temperature_high
    value: 35
    unit: "°C"
alerting:
  cycle_interval: 30s
  stale_after_cycles: 3
correlation:
  interval: 1m
`
