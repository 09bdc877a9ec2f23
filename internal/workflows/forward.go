package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hookflow/pkg/models"
)

// Forwarder posts workflow payloads to a downstream HTTP endpoint.
type Forwarder struct {
	url    string
	client *http.Client
}

// NewForwarder creates a Forwarder targeting the given base URL.
func NewForwarder(url string) *Forwarder {
	return &Forwarder{url: url, client: http.DefaultClient}
}

// Send delivers the payload as JSON and returns the downstream status code.
func (f *Forwarder) Send(ctx context.Context, payload any) (int, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", f.url, bytes.NewBuffer(requestBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("downstream returned status code %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// Forward returns an API-key-protected workflow relaying its payload to a
// downstream endpoint.
func Forward(id, apiKey, downstreamURL string) *models.Workflow {
	fwd := NewForwarder(downstreamURL)
	return &models.Workflow{
		Config: models.Config{
			ID:          id,
			Name:        "Forward",
			Description: "Relays the inbound payload to a downstream endpoint.",
			Auth:        models.APIKeyAuth(apiKey),
		},
		Execute: func(ctx context.Context, payload any, ec *models.ExecutionContext) (any, error) {
			status, err := fwd.Send(ctx, payload)
			if err != nil {
				return nil, err
			}
			return map[string]any{"forwarded": true, "downstreamStatus": status}, nil
		},
	}
}
