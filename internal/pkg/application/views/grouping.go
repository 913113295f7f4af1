package views

import (
	"sort"
	"strings"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"

	"github.com/samber/lo"
)

// Placeholder replaces missing location and gateway fields so no rack is
// ever dropped from the hierarchy.
const Placeholder = "unknown"

// LogicalRackGroup collects the readings that share one logical rack
// identity within a gateway.
type LogicalRackGroup struct {
	RackID   string            `json:"rackID"`
	Chain    string            `json:"chain,omitempty"`
	Name     string            `json:"name,omitempty"`
	Readings []types.RackState `json:"readings"`
}

// Grouped is the Country → Site → DC → GatewayKey hierarchy. The leaf is
// the ordered list of logical rack groups for one gateway.
type Grouped map[string]map[string]map[string]map[string][]LogicalRackGroup

func orDefault(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// GatewayKey identifies the relaying gateway by name and ip. Missing parts
// normalize to the placeholder rather than being omitted.
func GatewayKey(r types.Reading) string {
	return orDefault(r.GatewayName) + orDefault(r.GatewayIP)
}

func logicalRackID(r types.Reading) string {
	if r.RackID != "" {
		return r.RackID
	}
	return r.PduID
}

// Group organizes a flat rack list into the presentation hierarchy. Every
// input rack lands in exactly one leaf group. Within a gateway the groups
// sort by chain (numeric-aware) and then by rack name, case-insensitively.
func Group(racks []types.RackState) Grouped {
	grouped := Grouped{}

	type leaf struct {
		country, site, dc, gateway string
	}

	leaves := lo.GroupBy(racks, func(rs types.RackState) leaf {
		r := rs.Reading
		return leaf{
			country: orDefault(r.Country),
			site:    orDefault(r.Site),
			dc:      orDefault(r.DC),
			gateway: GatewayKey(r),
		}
	})

	for l, members := range leaves {
		byRack := lo.GroupBy(members, func(rs types.RackState) string {
			return logicalRackID(rs.Reading)
		})

		groups := make([]LogicalRackGroup, 0, len(byRack))
		for rackID, readings := range byRack {
			groups = append(groups, LogicalRackGroup{
				RackID:   rackID,
				Chain:    readings[0].Reading.Chain,
				Name:     readings[0].Reading.Name,
				Readings: readings,
			})
		}

		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Chain != groups[j].Chain {
				return naturalLess(groups[i].Chain, groups[j].Chain)
			}
			return strings.ToLower(groups[i].Name) < strings.ToLower(groups[j].Name)
		})

		if grouped[l.country] == nil {
			grouped[l.country] = map[string]map[string]map[string][]LogicalRackGroup{}
		}
		if grouped[l.country][l.site] == nil {
			grouped[l.country][l.site] = map[string]map[string][]LogicalRackGroup{}
		}
		if grouped[l.country][l.site][l.dc] == nil {
			grouped[l.country][l.site][l.dc] = map[string][]LogicalRackGroup{}
		}

		grouped[l.country][l.site][l.dc][l.gateway] = groups
	}

	return grouped
}

// naturalLess compares strings so that embedded numbers order numerically:
// chain2 sorts before chain10.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := leadingNumber(a)
			nb, rb := leadingNumber(b)
			if na != nb {
				return na < nb
			}
			a, b = ra, rb
			continue
		}

		ca := lower(a[0])
		cb := lower(b[0])
		if ca != cb {
			return ca < cb
		}
		a, b = a[1:], b[1:]
	}

	return len(a) < len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func leadingNumber(s string) (int64, string) {
	var n int64
	i := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int64(s[i]-'0')
		i++
	}
	return n, s[i:]
}
