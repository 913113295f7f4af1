package alerting

import (
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/matryer/is"
)

func TestGetByRackReturnsNewestReading(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()

	c := NewStateCache()
	c.Set("pdu-001", types.RackState{
		Reading:   types.Reading{PduID: "pdu-001", RackID: "rack-A01"},
		Status:    types.RackStatusCritical,
		UpdatedAt: now.Add(-time.Minute),
	})
	c.Set("pdu-002", types.RackState{
		Reading:   types.Reading{PduID: "pdu-002", RackID: "rack-A01"},
		Status:    types.RackStatusOK,
		UpdatedAt: now,
	})
	c.Set("pdu-003", types.RackState{
		Reading:   types.Reading{PduID: "pdu-003", RackID: "rack-B01"},
		Status:    types.RackStatusOK,
		UpdatedAt: now,
	})

	state, ok := c.GetByRack("rack-A01")
	is.True(ok)
	is.Equal("pdu-002", state.Reading.PduID)

	_, ok = c.GetByRack("rack-Z99")
	is.True(!ok)
}
