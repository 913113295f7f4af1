package views

import (
	"strings"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
)

type ViewMode string

const (
	ModeAllEquipment ViewMode = "all-equipment"
	ModeAlertsOnly   ViewMode = "alerts-only"
)

const StatusAll = "all"

// Criteria narrows the rack list. Location and search criteria always
// intersect; they never widen a result.
type Criteria struct {
	Country string
	Site    string
	DC      string

	// Search matches case-insensitively across site, country, dc, node,
	// chain, name and serial.
	Search string

	// Field/Value matches a single named field exactly.
	Field string
	Value string

	Status     string
	MetricType string
}

// Filter derives the subset of racks visible under the given view mode.
// The alerts-only mode unconditionally excludes racks in maintenance before
// any other criterion applies.
func Filter(racks []types.RackState, mode ViewMode, c Criteria) []types.RackState {
	out := make([]types.RackState, 0, len(racks))

	for _, rs := range racks {
		if !matchesLocation(rs.Reading, c) {
			continue
		}

		switch mode {
		case ModeAlertsOnly:
			if rs.InMaintenance {
				continue
			}
			if rs.Status != types.RackStatusCritical && rs.Status != types.RackStatusWarning {
				continue
			}
			if !matchesTags(rs, c) {
				continue
			}
		default:
			if !matchesStatus(rs, c.Status) {
				continue
			}
		}

		out = append(out, rs)
	}

	return out
}

func matchesLocation(r types.Reading, c Criteria) bool {
	if c.Country != "" && !strings.EqualFold(r.Country, c.Country) {
		return false
	}
	if c.Site != "" && !strings.EqualFold(r.Site, c.Site) {
		return false
	}
	if c.DC != "" && !strings.EqualFold(r.DC, c.DC) {
		return false
	}

	if c.Search != "" {
		s := strings.ToLower(c.Search)
		haystack := strings.ToLower(strings.Join([]string{
			r.Site, r.Country, r.DC, r.Node, r.Chain, r.Name, r.Serial,
		}, "\x00"))
		if !strings.Contains(haystack, s) {
			return false
		}
	}

	if c.Field != "" {
		if !strings.EqualFold(fieldValue(r, c.Field), c.Value) {
			return false
		}
	}

	return true
}

func fieldValue(r types.Reading, field string) string {
	switch strings.ToLower(field) {
	case "site":
		return r.Site
	case "country":
		return r.Country
	case "dc":
		return r.DC
	case "node":
		return r.Node
	case "chain":
		return r.Chain
	case "name":
		return r.Name
	case "serial":
		return r.Serial
	case "rack_id":
		return r.RackID
	case "pdu_id":
		return r.PduID
	}
	return ""
}

// matchesStatus implements the all-equipment status criterion: the
// maintenance status selects suppressed racks, any other explicit status
// excludes them and matches on status, and "all" applies no restriction.
func matchesStatus(rs types.RackState, status string) bool {
	if status == "" || status == StatusAll {
		return true
	}

	if status == types.RackStatusMaintenance {
		return rs.InMaintenance
	}

	if rs.InMaintenance {
		return false
	}

	return rs.Status == status
}

// matchesTags narrows alerts-only results by substring match against the
// rack's {severity}_{metric} violation tags. Both criteria must hold when
// both are set; criteria always intersect.
func matchesTags(rs types.RackState, c Criteria) bool {
	if c.Status != "" && !anyTag(rs, func(tag string) bool {
		return strings.HasPrefix(tag, c.Status)
	}) {
		return false
	}

	if c.MetricType != "" && !anyTag(rs, func(tag string) bool {
		_, metric, found := strings.Cut(tag, "_")
		return found && strings.Contains(metric, c.MetricType)
	}) {
		return false
	}

	return true
}

func anyTag(rs types.RackState, match func(string) bool) bool {
	for _, tag := range rs.Tags() {
		if match(tag) {
			return true
		}
	}
	return false
}
