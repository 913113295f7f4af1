package views

import (
	"testing"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/matryer/is"
)

func stateWith(rackID, status string, maint bool, reasons ...types.ViolationReason) types.RackState {
	return types.RackState{
		Reading: types.Reading{
			RackID:  rackID,
			PduID:   "pdu-" + rackID,
			Country: "ES",
			Site:    "MAD",
			DC:      "DC1",
			Chain:   "A",
			Name:    "rack " + rackID,
		},
		Status:        status,
		Reasons:       reasons,
		InMaintenance: maint,
	}
}

func fleet() []types.RackState {
	return []types.RackState{
		stateWith("ok-1", types.RackStatusOK, false),
		stateWith("warn-1", types.RackStatusWarning, false,
			types.ViolationReason{Severity: types.SeverityWarning, Metric: types.MetricTemperature}),
		stateWith("crit-1", types.RackStatusCritical, false,
			types.ViolationReason{Severity: types.SeverityCritical, Metric: types.MetricHumidity}),
		stateWith("maint-1", types.RackStatusMaintenance, true),
	}
}

func rackIDs(racks []types.RackState) []string {
	ids := make([]string, 0, len(racks))
	for _, r := range racks {
		ids = append(ids, r.Reading.RackID)
	}
	return ids
}

func TestAllEquipmentWithoutCriteriaReturnsEverything(t *testing.T) {
	is := is.New(t)

	out := Filter(fleet(), ModeAllEquipment, Criteria{})
	is.Equal(4, len(out))

	out = Filter(fleet(), ModeAllEquipment, Criteria{Status: StatusAll})
	is.Equal(4, len(out))
}

func TestAllEquipmentStatusCriterion(t *testing.T) {
	is := is.New(t)

	out := Filter(fleet(), ModeAllEquipment, Criteria{Status: types.RackStatusCritical})
	is.Equal([]string{"crit-1"}, rackIDs(out))

	out = Filter(fleet(), ModeAllEquipment, Criteria{Status: types.RackStatusMaintenance})
	is.Equal([]string{"maint-1"}, rackIDs(out))
}

func TestAlertsOnlyExcludesMaintenanceAndHealthy(t *testing.T) {
	is := is.New(t)

	racks := fleet()
	// a rack in maintenance stays hidden even if its last status was critical
	racks = append(racks, stateWith("maint-2", types.RackStatusCritical, true))

	out := Filter(racks, ModeAlertsOnly, Criteria{})
	is.Equal([]string{"warn-1", "crit-1"}, rackIDs(out))
}

func TestAlertsOnlyTagStatusPrefix(t *testing.T) {
	is := is.New(t)

	out := Filter(fleet(), ModeAlertsOnly, Criteria{Status: "critical"})
	is.Equal([]string{"crit-1"}, rackIDs(out))

	out = Filter(fleet(), ModeAlertsOnly, Criteria{Status: "warning"})
	is.Equal([]string{"warn-1"}, rackIDs(out))
}

func TestAlertsOnlyTagMetricSubstring(t *testing.T) {
	is := is.New(t)

	out := Filter(fleet(), ModeAlertsOnly, Criteria{MetricType: "humid"})
	is.Equal([]string{"crit-1"}, rackIDs(out))

	out = Filter(fleet(), ModeAlertsOnly, Criteria{MetricType: "temperature"})
	is.Equal([]string{"warn-1"}, rackIDs(out))
}

func TestAlertsOnlyStatusAndMetricIntersect(t *testing.T) {
	is := is.New(t)

	// crit-1 violates humidity, warn-1 violates temperature: a combined
	// status+metric criterion must match both on the same rack
	out := Filter(fleet(), ModeAlertsOnly, Criteria{Status: "critical", MetricType: "temperature"})
	is.Equal(0, len(out))

	out = Filter(fleet(), ModeAlertsOnly, Criteria{Status: "warning", MetricType: "temperature"})
	is.Equal([]string{"warn-1"}, rackIDs(out))

	out = Filter(fleet(), ModeAlertsOnly, Criteria{Status: "critical", MetricType: "humid"})
	is.Equal([]string{"crit-1"}, rackIDs(out))
}

func TestLocationCriteriaIntersect(t *testing.T) {
	is := is.New(t)

	racks := fleet()
	other := stateWith("crit-2", types.RackStatusCritical, false,
		types.ViolationReason{Severity: types.SeverityCritical, Metric: types.MetricTemperature})
	other.Reading.Site = "STH"
	other.Reading.Country = "SE"
	racks = append(racks, other)

	out := Filter(racks, ModeAllEquipment, Criteria{Site: "MAD"})
	is.Equal(4, len(out))

	out = Filter(racks, ModeAllEquipment, Criteria{Site: "MAD", Country: "SE"})
	is.Equal(0, len(out))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	is := is.New(t)

	racks := fleet()
	racks[0].Reading.Serial = "SN-12345"

	out := Filter(racks, ModeAllEquipment, Criteria{Search: "sn-123"})
	is.Equal([]string{"ok-1"}, rackIDs(out))

	out = Filter(racks, ModeAllEquipment, Criteria{Search: "rack warn"})
	is.Equal([]string{"warn-1"}, rackIDs(out))
}

func TestFieldValueMatchesExactly(t *testing.T) {
	is := is.New(t)

	out := Filter(fleet(), ModeAllEquipment, Criteria{Field: "rack_id", Value: "crit-1"})
	is.Equal([]string{"crit-1"}, rackIDs(out))

	out = Filter(fleet(), ModeAllEquipment, Criteria{Field: "rack_id", Value: "crit"})
	is.Equal(0, len(out))
}

func TestModesPartitionNonMaintenanceRacks(t *testing.T) {
	is := is.New(t)

	racks := fleet()

	all := Filter(racks, ModeAllEquipment, Criteria{})
	alerts := Filter(racks, ModeAlertsOnly, Criteria{})

	// every alerting rack is part of the all-equipment view
	seen := map[string]bool{}
	for _, r := range all {
		seen[r.Reading.RackID] = true
	}
	for _, r := range alerts {
		is.True(seen[r.Reading.RackID])
	}
	is.True(len(alerts) < len(all))
}
