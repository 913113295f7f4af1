package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pdu-alert-mgmt-client")

// AlertManagementClient is a typed client for other services that need to
// look at the current alert and maintenance state.
type AlertManagementClient interface {
	ActiveAlerts(ctx context.Context) ([]types.ActiveAlert, error)
	ActiveAlertsForPdu(ctx context.Context, pduID string) ([]types.ActiveAlert, error)
	MaintenanceEntries(ctx context.Context) ([]types.MaintenanceEntry, error)
}

type alertMgmtClient struct {
	url   string
	token string

	httpClient http.Client
}

func New(serviceURL, accessToken string) AlertManagementClient {
	return &alertMgmtClient{
		url:   serviceURL,
		token: accessToken,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *alertMgmtClient) ActiveAlerts(ctx context.Context) ([]types.ActiveAlert, error) {
	var alerts []types.ActiveAlert
	err := c.get(ctx, "find-active-alerts", c.url+"/api/v0/alerts", &alerts)
	return alerts, err
}

func (c *alertMgmtClient) ActiveAlertsForPdu(ctx context.Context, pduID string) ([]types.ActiveAlert, error) {
	var alerts []types.ActiveAlert
	err := c.get(ctx, "find-alerts-for-pdu", c.url+"/api/v0/alerts?pdu_id="+url.QueryEscape(pduID), &alerts)
	return alerts, err
}

func (c *alertMgmtClient) MaintenanceEntries(ctx context.Context) ([]types.MaintenanceEntry, error) {
	var entries []types.MaintenanceEntry
	err := c.get(ctx, "find-maintenance-entries", c.url+"/api/v0/maintenance", &entries)
	return entries, err
}

func (c *alertMgmtClient) get(ctx context.Context, spanName, requestURL string, result any) error {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("request failed: %w", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return err
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return err
	}

	return nil
}
