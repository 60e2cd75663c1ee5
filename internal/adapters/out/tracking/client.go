// Package tracking looks up carrier tracking state from the external
// vessel tracking provider over HTTP.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

const requestTimeout = 15 * time.Second

// Client implements TrackingLookup against the provider's REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a tracking client for the given provider endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// trackingResponse mirrors the provider's JSON payload.
type trackingResponse struct {
	Code        string     `json:"code"`
	VesselName  string     `json:"vessel_name"`
	Origin      string     `json:"origin_port"`
	Destination string     `json:"destination_port"`
	ETA         *time.Time `json:"eta"`
	Status      string     `json:"status"`
}

// Lookup fetches the current tracking state for one carrier code. An
// unknown code surfaces as errs.ErrObjectNotFound.
func (c *Client) Lookup(ctx context.Context, carrierCode string) (shipment.TrackingSnapshot, error) {
	endpoint := fmt.Sprintf("%s/v1/tracking/%s", c.baseURL, url.PathEscape(carrierCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return shipment.TrackingSnapshot{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return shipment.TrackingSnapshot{}, fmt.Errorf("tracking lookup %s: %w", carrierCode, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return shipment.TrackingSnapshot{}, errs.NewObjectNotFoundError("tracking record", carrierCode)
	case resp.StatusCode != http.StatusOK:
		return shipment.TrackingSnapshot{}, fmt.Errorf("tracking lookup %s: provider returned %s",
			carrierCode, resp.Status)
	}

	var payload trackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return shipment.TrackingSnapshot{}, fmt.Errorf("tracking lookup %s: decode response: %w",
			carrierCode, err)
	}

	return shipment.TrackingSnapshot{
		Code:        payload.Code,
		Name:        payload.VesselName,
		Origin:      payload.Origin,
		Destination: payload.Destination,
		ETA:         payload.ETA,
		Status:      payload.Status,
	}, nil
}
