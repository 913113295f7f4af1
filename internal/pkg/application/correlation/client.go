package correlation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pdu-alert-mgmt/correlation")

// Client talks to the external ticketing service. Both exchanges are
// idempotent from the engine's side: retrying them never duplicates a
// history record.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	RequestOpen(ctx context.Context, task storage.CorrelationTask) (string, error)
	RequestClose(ctx context.Context, task storage.CorrelationTask) (string, error)
}

type httpClient struct {
	url string
}

func NewClient(url string) Client {
	return &httpClient{url: url}
}

type correlationRequest struct {
	AlertID     string `json:"alertID"`
	PduID       string `json:"pduID"`
	RackID      string `json:"rackID"`
	MetricType  string `json:"metricType"`
	AlertReason string `json:"alertReason"`
}

type correlationResponse struct {
	UUID string `json:"uuid"`
}

func (c *httpClient) RequestOpen(ctx context.Context, task storage.CorrelationTask) (string, error) {
	return c.request(ctx, "open-correlation", c.url+"/api/v1/alerts/open", task)
}

func (c *httpClient) RequestClose(ctx context.Context, task storage.CorrelationTask) (string, error) {
	return c.request(ctx, "close-correlation", c.url+"/api/v1/alerts/close", task)
}

func (c *httpClient) request(ctx context.Context, spanName, url string, task storage.CorrelationTask) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(correlationRequest{
		AlertID:     task.AlertID,
		PduID:       task.PduID,
		RackID:      task.RackID,
		MetricType:  task.MetricType,
		AlertReason: task.AlertReason,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("correlation request failed: %w", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("correlation service returned status %d", resp.StatusCode)
		return "", err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return "", err
	}

	result := correlationResponse{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return "", err
	}

	if result.UUID == "" {
		err = fmt.Errorf("correlation service returned an empty id")
		return "", err
	}

	return result.UUID, nil
}
