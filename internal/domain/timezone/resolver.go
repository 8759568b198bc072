package timezone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

// Resolver maps a coordinate pair to an IANA timezone name. The place service
// treats it as an opaque collaborator and tolerates any failure.
type Resolver interface {
	ResolveTimezone(ctx context.Context, lat, lon string) (string, error)
}

var _ Resolver = (*HTTPResolver)(nil)

// HTTPResolver asks a point-to-zone HTTP endpoint and memoizes answers: a
// fixed coordinate never changes zone, so the cache TTL only bounds memory.
type HTTPResolver struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	cache      *cache.Cache
}

func NewHTTPResolver(endpoint string, timeout time.Duration, logger *slog.Logger) *HTTPResolver {
	return &HTTPResolver{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		cache:      cache.New(24*time.Hour, time.Hour),
	}
}

// ResolveTimezone queries the configured endpoint with the coordinates as
// decimal strings and returns the zone name from its JSON response.
func (r *HTTPResolver) ResolveTimezone(ctx context.Context, lat, lon string) (string, error) {
	key := lat + "," + lon
	if zone, ok := r.cache.Get(key); ok {
		return zone.(string), nil
	}

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build timezone request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("timezone request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return "", fmt.Errorf("timezone endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Timezone string `json:"timezone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode timezone response: %w", err)
	}
	if payload.Timezone == "" {
		return "", fmt.Errorf("timezone endpoint returned no zone for %s", key)
	}

	r.cache.Set(key, payload.Timezone, cache.DefaultExpiration)
	r.logger.DebugContext(ctx, "timezone resolved",
		slog.String("coords", key),
		slog.String("timezone", payload.Timezone))
	return payload.Timezone, nil
}
