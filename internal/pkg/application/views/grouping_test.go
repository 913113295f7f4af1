package views

import (
	"testing"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/matryer/is"
)

func rack(country, site, dc, gwName, gwIP, rackID, chain, name string) types.RackState {
	return types.RackState{
		Reading: types.Reading{
			Country:     country,
			Site:        site,
			DC:          dc,
			GatewayName: gwName,
			GatewayIP:   gwIP,
			RackID:      rackID,
			PduID:       "pdu-" + rackID,
			Chain:       chain,
			Name:        name,
		},
	}
}

func TestGroupPlacesEveryRackInExactlyOneLeaf(t *testing.T) {
	is := is.New(t)

	racks := []types.RackState{
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-A01", "A", "r1"),
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-A02", "A", "r2"),
		rack("ES", "MAD", "DC2", "gw2", "10.0.0.2", "rack-B01", "B", "r3"),
		rack("SE", "STH", "DC1", "gw3", "10.0.1.1", "rack-C01", "C", "r4"),
	}

	grouped := Group(racks)

	total := 0
	for _, sites := range grouped {
		for _, dcs := range sites {
			for _, gateways := range dcs {
				for _, groups := range gateways {
					for _, g := range groups {
						total += len(g.Readings)
					}
				}
			}
		}
	}

	is.Equal(len(racks), total)
	is.Equal(2, len(grouped["ES"]["MAD"]["DC1"]["gw110.0.0.1"]))
	is.Equal(1, len(grouped["ES"]["MAD"]["DC2"]["gw210.0.0.2"]))
	is.Equal(1, len(grouped["SE"]["STH"]["DC1"]["gw310.0.1.1"]))
}

func TestGroupNormalizesMissingFieldsToPlaceholder(t *testing.T) {
	is := is.New(t)

	grouped := Group([]types.RackState{
		rack("", "", "", "", "", "rack-X01", "", ""),
	})

	groups := grouped[Placeholder][Placeholder][Placeholder][Placeholder+Placeholder]
	is.Equal(1, len(groups))
	is.Equal("rack-X01", groups[0].RackID)
}

func TestGroupFallsBackToPduIDForRackIdentity(t *testing.T) {
	is := is.New(t)

	rs := rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "", "A", "r1")
	rs.Reading.PduID = "pdu-solo"

	grouped := Group([]types.RackState{rs})

	groups := grouped["ES"]["MAD"]["DC1"]["gw110.0.0.1"]
	is.Equal(1, len(groups))
	is.Equal("pdu-solo", groups[0].RackID)
}

func TestGroupCollectsReadingsPerLogicalRack(t *testing.T) {
	is := is.New(t)

	racks := []types.RackState{
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-A01", "A", "r1"),
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-A01", "A", "r1"),
	}
	racks[1].Reading.PduID = "pdu-other"

	grouped := Group(racks)

	groups := grouped["ES"]["MAD"]["DC1"]["gw110.0.0.1"]
	is.Equal(1, len(groups))
	is.Equal(2, len(groups[0].Readings))
}

func TestGroupOrdersChainsNaturally(t *testing.T) {
	is := is.New(t)

	racks := []types.RackState{
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-1", "chain10", "a"),
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-2", "chain2", "b"),
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-3", "chain1", "c"),
	}

	grouped := Group(racks)

	groups := grouped["ES"]["MAD"]["DC1"]["gw110.0.0.1"]
	is.Equal("chain1", groups[0].Chain)
	is.Equal("chain2", groups[1].Chain)
	is.Equal("chain10", groups[2].Chain)
}

func TestGroupOrdersByNameWithinChain(t *testing.T) {
	is := is.New(t)

	racks := []types.RackState{
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-1", "A", "Zulu"),
		rack("ES", "MAD", "DC1", "gw1", "10.0.0.1", "rack-2", "A", "alpha"),
	}

	grouped := Group(racks)

	groups := grouped["ES"]["MAD"]["DC1"]["gw110.0.0.1"]
	is.Equal("alpha", groups[0].Name)
	is.Equal("Zulu", groups[1].Name)
}

func TestNaturalLess(t *testing.T) {
	is := is.New(t)

	is.True(naturalLess("chain2", "chain10"))
	is.True(!naturalLess("chain10", "chain2"))
	is.True(naturalLess("a", "b"))
	is.True(naturalLess("A", "b"))
	is.True(naturalLess("rack", "rack1"))
	is.True(!naturalLess("x", "x"))
}
