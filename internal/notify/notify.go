// Package notify delivers scan results to optional external endpoints:
// a user-configured webhook and an anonymized telemetry sink. Both
// follow the pipeline's "never abort the scan" contract: each request
// runs under an independent hard timeout and reports failure as a
// value, never as a panic or propagated abort.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/boshu2/agentaudit/internal/audit"
)

// requestTimeout is the hard ceiling on any outbound delivery.
const requestTimeout = 5 * time.Second

// TelemetryFinding is the stripped shape shared with telemetry: rule
// id, severity, and category only. No titles, descriptions, or paths
// ever leave the machine.
type TelemetryFinding struct {
	ID       string         `json:"id"`
	Severity audit.Severity `json:"severity"`
	Category string         `json:"category"`
}

// TelemetryPayload is the anonymized scan summary.
type TelemetryPayload struct {
	Score    int                `json:"score"`
	Platform string             `json:"platform"`
	Findings []TelemetryFinding `json:"findings"`
}

// Client posts scan output to external endpoints.
type Client struct {
	http *http.Client
}

// NewClient creates a delivery client with the hard timeout installed.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: requestTimeout}}
}

// SendWebhook POSTs the (already sanitized) result to url.
func (c *Client) SendWebhook(ctx context.Context, url string, result *audit.Result) error {
	return c.post(ctx, url, result)
}

// SendTelemetry POSTs the stripped telemetry payload to url.
func (c *Client) SendTelemetry(ctx context.Context, url string, result *audit.Result) error {
	payload := TelemetryPayload{
		Score:    result.Score,
		Platform: result.Platform,
		Findings: make([]TelemetryFinding, 0, len(result.Findings)),
	}
	for _, f := range result.Findings {
		payload.Findings = append(payload.Findings, TelemetryFinding{
			ID: f.ID, Severity: f.Severity, Category: f.Category,
		})
	}
	return c.post(ctx, url, payload)
}

func (c *Client) post(ctx context.Context, url string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("posting to %s: status %d", url, resp.StatusCode)
	}
	return nil
}
