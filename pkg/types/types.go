package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Metric string

const (
	MetricTemperature Metric = "temperature"
	MetricHumidity    Metric = "humidity"
	MetricAmperage    Metric = "amperage"
	MetricVoltage     Metric = "voltage"
	MetricPower       Metric = "power"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type Bound string

const (
	BoundLow  Bound = "low"
	BoundHigh Bound = "high"
)

type Phase string

const (
	PhaseNone   Phase = ""
	PhaseSingle Phase = "single_phase"
	PhaseThree  Phase = "3phase"
)

// ThresholdKey identifies one configurable bound. The legacy string form
// (e.g. critical_temperature_high, warning_amperage_high_3phase) is kept as
// the wire and database representation only.
type ThresholdKey struct {
	Metric   Metric
	Severity Severity
	Bound    Bound
	Phase    Phase
}

func (k ThresholdKey) String() string {
	s := fmt.Sprintf("%s_%s_%s", k.Severity, k.Metric, k.Bound)
	if k.Phase != PhaseNone {
		s += "_" + string(k.Phase)
	}
	return s
}

var ErrInvalidThresholdKey = errors.New("invalid threshold key")

func ParseThresholdKey(s string) (ThresholdKey, error) {
	parts := strings.SplitN(s, "_", 4)
	if len(parts) < 3 {
		return ThresholdKey{}, ErrInvalidThresholdKey
	}

	k := ThresholdKey{
		Severity: Severity(parts[0]),
		Metric:   Metric(parts[1]),
		Bound:    Bound(parts[2]),
	}

	if len(parts) == 4 {
		k.Phase = Phase(parts[3])
	}

	if k.Severity != SeverityWarning && k.Severity != SeverityCritical {
		return ThresholdKey{}, ErrInvalidThresholdKey
	}

	switch k.Metric {
	case MetricTemperature, MetricHumidity, MetricAmperage, MetricVoltage, MetricPower:
	default:
		return ThresholdKey{}, ErrInvalidThresholdKey
	}

	if k.Bound != BoundLow && k.Bound != BoundHigh {
		return ThresholdKey{}, ErrInvalidThresholdKey
	}

	switch k.Phase {
	case PhaseNone, PhaseSingle, PhaseThree:
	default:
		return ThresholdKey{}, ErrInvalidThresholdKey
	}

	return k, nil
}

type ThresholdConfig struct {
	Key         string    `json:"key" yaml:"key"`
	Value       float64   `json:"value" yaml:"value"`
	Unit        string    `json:"unit" yaml:"unit"`
	Description string    `json:"description,omitempty" yaml:"description"`
	ModifiedOn  time.Time `json:"modifiedOn,omitempty" yaml:"-"`
}

type RackThresholdOverride struct {
	RackID      string    `json:"rackID"`
	Key         string    `json:"key"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	ModifiedOn  time.Time `json:"modifiedOn,omitempty"`
}

// EffectiveThresholds is the merged global+override set for one rack.
type EffectiveThresholds map[ThresholdKey]float64

func (et EffectiveThresholds) Lookup(m Metric, sev Severity, b Bound, p Phase) (float64, bool) {
	v, ok := et[ThresholdKey{Metric: m, Severity: sev, Bound: b, Phase: p}]
	return v, ok
}

// Reading is the normalized per-rack input delivered once per acquisition
// cycle. Values the PDU did not report are nil and are not evaluated.
type Reading struct {
	PduID       string `json:"pduID"`
	RackID      string `json:"rackID"`
	Chain       string `json:"chain,omitempty"`
	Node        string `json:"node,omitempty"`
	Site        string `json:"site,omitempty"`
	DC          string `json:"dc,omitempty"`
	Country     string `json:"country,omitempty"`
	GatewayName string `json:"gwName,omitempty"`
	GatewayIP   string `json:"gwIp,omitempty"`
	Serial      string `json:"serial,omitempty"`
	Name        string `json:"name,omitempty"`

	MetricType string `json:"metricType"`
	ThreePhase bool   `json:"threePhase,omitempty"`

	Amperage    *float64 `json:"amperage,omitempty"`
	Voltage     *float64 `json:"voltage,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Power       *float64 `json:"power,omitempty"`

	ObservedAt time.Time `json:"observedAt"`
}

func (r Reading) Phase() Phase {
	if r.ThreePhase {
		return PhaseThree
	}
	return PhaseSingle
}

// ViolationReason is one violated bound for one metric of a reading.
type ViolationReason struct {
	Severity  Severity `json:"severity"`
	Metric    Metric   `json:"metric"`
	Bound     Bound    `json:"bound"`
	Value     float64  `json:"value"`
	Threshold float64  `json:"threshold"`
}

// Tag is the {severity}_{metric} form matched by view filters.
func (v ViolationReason) Tag() string {
	return fmt.Sprintf("%s_%s", v.Severity, v.Metric)
}

// ActiveAlert is an open critical condition, unique per
// (pdu_id, metric_type, alert_reason). Location and gateway fields are a
// point-in-time copy of the reading that opened it.
type ActiveAlert struct {
	ID          string `json:"id"`
	PduID       string `json:"pduID"`
	MetricType  string `json:"metricType"`
	AlertReason string `json:"alertReason"`

	Severity          Severity `json:"severity"`
	Value             float64  `json:"value"`
	ThresholdExceeded float64  `json:"thresholdExceeded"`

	RackID      string `json:"rackID"`
	Chain       string `json:"chain,omitempty"`
	Node        string `json:"node,omitempty"`
	Site        string `json:"site,omitempty"`
	DC          string `json:"dc,omitempty"`
	Country     string `json:"country,omitempty"`
	GatewayName string `json:"gwName,omitempty"`
	GatewayIP   string `json:"gwIp,omitempty"`

	StartedAt     time.Time `json:"startedAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`

	UUIDOpen *string `json:"uuidOpen,omitempty"`
}

func (a ActiveAlert) Key() string {
	return a.PduID + "/" + a.MetricType + "/" + a.AlertReason
}

const (
	ResolutionAuto   = "auto"
	ResolutionManual = "manual"
	ResolutionStale  = "stale"
)

// AlertHistoryRecord is the immutable archive row produced when an
// ActiveAlert closes.
type AlertHistoryRecord struct {
	ActiveAlert

	ResolvedAt      time.Time `json:"resolvedAt"`
	ResolvedBy      string    `json:"resolvedBy"`
	ResolutionType  string    `json:"resolutionType"`
	DurationMinutes int64     `json:"durationMinutes"`
	UUIDClosed      *string   `json:"uuidClosed,omitempty"`
}

const (
	MaintenanceIndividualRack = "individual_rack"
	MaintenanceChain          = "chain"
)

type MaintenanceEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	RackID    string    `json:"rackID,omitempty"`
	Chain     string    `json:"chain,omitempty"`
	DC        string    `json:"dc,omitempty"`
	Site      string    `json:"site,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	StartedBy string    `json:"startedBy"`
	StartedAt time.Time `json:"startedAt"`

	Racks []RackDetail `json:"racks,omitempty"`
}

type RackDetail struct {
	EntryID string    `json:"entryID"`
	RackID  string    `json:"rackID"`
	PduID   string    `json:"pduID,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

type MaintenanceHistoryRecord struct {
	EntryID         string    `json:"entryID"`
	Type            string    `json:"type"`
	RackID          string    `json:"rackID"`
	Chain           string    `json:"chain,omitempty"`
	DC              string    `json:"dc,omitempty"`
	Site            string    `json:"site,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	StartedBy       string    `json:"startedBy"`
	EndedBy         string    `json:"endedBy"`
	StartedAt       time.Time `json:"startedAt"`
	EndedAt         time.Time `json:"endedAt"`
	DurationMinutes int64     `json:"durationMinutes"`
}

const (
	RackStatusOK          = "ok"
	RackStatusWarning     = "warning"
	RackStatusCritical    = "critical"
	RackStatusMaintenance = "maintenance"
)

// RackState is the latest known evaluation outcome for one rack, kept in
// memory for grouping and view filtering. Warning reasons live only here.
type RackState struct {
	Reading       Reading           `json:"reading"`
	Status        string            `json:"status"`
	Reasons       []ViolationReason `json:"reasons,omitempty"`
	InMaintenance bool              `json:"inMaintenance"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (rs RackState) Tags() []string {
	tags := make([]string, 0, len(rs.Reasons))
	for _, r := range rs.Reasons {
		tags = append(tags, r.Tag())
	}
	return tags
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
