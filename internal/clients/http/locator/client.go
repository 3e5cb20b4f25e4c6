// Package locator is the outbound HTTP adapter for position lookups.
package locator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	geodomain "github.com/labops/labstock/internal/domains/geo/domain"
	geoports "github.com/labops/labstock/internal/domains/geo/ports"
)

var _ geoports.PositionProvider = (*Client)(nil)

// Client resolves the caller's position through a locator endpoint
// that answers GET <baseURL>/position with a JSON coordinate.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient instantiates the locator client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("locator base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

type positionPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CurrentPosition performs one lookup. Failures map onto the geo error
// taxonomy and are terminal for the request; there is no retry.
func (c *Client) CurrentPosition(ctx context.Context) (geodomain.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/position", nil)
	if err != nil {
		return geodomain.Coordinate{}, fmt.Errorf("%w: %w", geoports.ErrPositionUnknown, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geodomain.Coordinate{}, fmt.Errorf("%w: %w", geoports.ErrPositionUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return geodomain.Coordinate{}, fmt.Errorf("%w: locator answered %s", geoports.ErrPermissionDenied, resp.Status)
	case resp.StatusCode >= http.StatusInternalServerError:
		return geodomain.Coordinate{}, fmt.Errorf("%w: locator answered %s", geoports.ErrPositionUnavailable, resp.Status)
	default:
		return geodomain.Coordinate{}, fmt.Errorf("%w: locator answered %s", geoports.ErrPositionUnknown, resp.Status)
	}

	var payload positionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return geodomain.Coordinate{}, fmt.Errorf("%w: decode locator response: %w", geoports.ErrPositionUnknown, err)
	}
	if payload.Lat == nil || payload.Lng == nil {
		return geodomain.Coordinate{}, fmt.Errorf("%w: locator response missing coordinates", geoports.ErrPositionUnknown)
	}
	return geodomain.Coordinate{Lat: *payload.Lat, Lng: *payload.Lng}, nil
}
