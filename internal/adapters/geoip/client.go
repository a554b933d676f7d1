package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portsrepo "github.com/svitvalut/exchange_backend/internal/core/ports/repositories"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// provider is one external IP-geolocation API. Each answers a bare GET with
// JSON; field names and success signalling differ per service, so parsing is
// provider-specific.
type provider struct {
	name  string
	url   func(ip string) string
	parse func(body map[string]any) *domain.GeoPoint
}

// Client resolves IPs through an ordered chain of free geolocation
// providers. Each attempt is bounded by its own timeout; the first usable
// coordinate wins, and one slow or dead provider never blocks the chain for
// more than its slice of time.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	providers  []provider
}

// NewClient creates a geolocation client with the given per-provider timeout.
func NewClient(timeout time.Duration) portsrepo.Geolocator {
	return &Client{
		httpClient: &http.Client{},
		timeout:    timeout,
		providers:  defaultProviders(),
	}
}

func defaultProviders() []provider {
	return []provider{
		{
			name: "ipwho.is",
			url:  func(ip string) string { return "https://ipwho.is/" + ip },
			parse: func(body map[string]any) *domain.GeoPoint {
				if ok, _ := body["success"].(bool); !ok {
					return nil
				}
				return domain.ParseGeoPoint(body["latitude"], body["longitude"])
			},
		},
		{
			name: "freeipapi.com",
			url:  func(ip string) string { return "https://freeipapi.com/api/json/" + ip },
			parse: func(body map[string]any) *domain.GeoPoint {
				return domain.ParseGeoPoint(body["latitude"], body["longitude"])
			},
		},
		{
			name: "ipapi.co",
			url:  func(ip string) string { return "https://ipapi.co/" + ip + "/json/" },
			parse: func(body map[string]any) *domain.GeoPoint {
				if failed, _ := body["error"].(bool); failed {
					return nil
				}
				return domain.ParseGeoPoint(body["latitude"], body["longitude"])
			},
		},
	}
}

// Locate tries each provider in order and returns the first usable
// coordinate. All providers failing maps to apperrors.ErrLocation.
func (c *Client) Locate(ctx context.Context, ip string) (*domain.GeoPoint, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, p := range c.providers {
		point, err := c.tryProvider(ctx, p, ip)
		if err != nil {
			logger.Debug("Geolocation provider failed",
				slog.String("provider", p.name),
				slog.String("ip", ip),
				slog.String("error", err.Error()),
			)
			continue
		}
		return point, nil
	}
	return nil, fmt.Errorf("%w: no provider could place ip %s", apperrors.ErrLocation, ip)
}

func (c *Client) tryProvider(ctx context.Context, p provider, ip string) (*domain.GeoPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	point := p.parse(body)
	if point == nil {
		return nil, fmt.Errorf("no usable coordinates in response")
	}
	return point, nil
}
