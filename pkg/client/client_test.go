package client

import (
	"context"
	"testing"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestActiveAlerts(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts"),
			expects.RequestMethod("GET"),
			expects.RequestHeaderContains("Authorization", "Bearer testtoken"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(alertsResponse)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	alerts, err := c.ActiveAlerts(context.Background())
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal("pdu-001", alerts[0].PduID)
	is.Equal("critical_temperature_high", alerts[0].AlertReason)
}

func TestActiveAlertsForPdu(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`[]`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	alerts, err := c.ActiveAlertsForPdu(context.Background(), "pdu 001")
	is.NoErr(err)
	is.Equal(0, len(alerts))
}

func TestNonOKStatusIsAnError(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/maintenance"),
		),
		test.Returns(
			response.Code(500),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	_, err := c.MaintenanceEntries(context.Background())
	is.True(err != nil)
}

const alertsResponse string = `[{"id":"alert-1","pduID":"pdu-001","metricType":"environment","alertReason":"critical_temperature_high","severity":"critical","value":42,"thresholdExceeded":40,"rackID":"rack-A01"}]`
