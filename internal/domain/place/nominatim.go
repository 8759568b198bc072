package place

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/cailurus/hearth/internal/types"
	"github.com/cailurus/hearth/pkg/observability"
)

const (
	maxAttempts  = 3
	maxErrorBody = 4096
)

// Provider fetches raw search results from the upstream geocoding service.
type Provider interface {
	Search(ctx context.Context, query string, limit int, languageTag string) ([]types.NominatimResult, error)
}

var _ Provider = (*NominatimClient)(nil)

// NominatimClient calls a Nominatim-compatible /search endpoint. It retries
// rate-limit and server-side failures with a short escalating backoff and
// leaves result interpretation to the caller.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics

	// retryWait is the backoff unit; attempt n waits n*retryWait. Tests
	// shrink it to keep the retry path fast.
	retryWait time.Duration
}

// NewNominatimClient wires a provider client. userAgent identifies this
// deployment to the provider, as its usage policy requires.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
		retryWait:  time.Second,
	}
}

// Search runs one upstream search, retrying up to maxAttempts times on
// transient failures. The backoff wait is cancellable: a context cancelled
// mid-wait aborts the whole call with the context's error.
func (c *NominatimClient) Search(ctx context.Context, query string, limit int, languageTag string) ([]types.NominatimResult, error) {
	ctx, span := otel.Tracer("NominatimClient").Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("provider.query", query),
		attribute.Int("provider.limit", limit),
	)

	l := c.logger.With(slog.String("method", "Search"), slog.String("query", query))

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))
	if languageTag != "" {
		params.Set("accept-language", languageTag)
	}
	searchURL := c.baseURL + "/search?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			c.metrics.ProviderRetries.Inc()
			wait := time.Duration(attempt) * c.retryWait
			l.InfoContext(ctx, "retrying provider request",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", wait))
			select {
			case <-ctx.Done():
				span.RecordError(ctx.Err())
				span.SetStatus(codes.Error, "cancelled during backoff")
				c.metrics.ProviderRequests.WithLabelValues("cancelled").Inc()
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		results, err := c.doSearch(ctx, searchURL)
		if err == nil {
			span.SetAttributes(attribute.Int("provider.results", len(results)))
			span.SetStatus(codes.Ok, "search completed")
			c.metrics.ProviderRequests.WithLabelValues("ok").Inc()
			return results, nil
		}

		if ctx.Err() != nil {
			span.RecordError(ctx.Err())
			span.SetStatus(codes.Error, "cancelled")
			c.metrics.ProviderRequests.WithLabelValues("cancelled").Inc()
			return nil, ctx.Err()
		}

		var provErr *types.ProviderError
		if errors.As(err, &provErr) && provErr.Retryable() {
			l.WarnContext(ctx, "transient provider failure",
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			lastErr = err
			continue
		}

		l.ErrorContext(ctx, "terminal provider failure", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider request failed")
		c.metrics.ProviderRequests.WithLabelValues("terminal").Inc()
		return nil, err
	}

	c.metrics.ProviderRequests.WithLabelValues("exhausted").Inc()
	if lastErr != nil {
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, "retries exhausted")
		return nil, fmt.Errorf("provider retries exhausted: %w", lastErr)
	}
	return nil, fmt.Errorf("provider retries exhausted")
}

// doSearch performs a single attempt. Retryability is encoded on the returned
// *types.ProviderError so the classification in Search stays in one place.
func (c *NominatimClient) doSearch(ctx context.Context, searchURL string) ([]types.NominatimResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.ProviderError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		// Drain so the connection can be reused for the retry.
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		return nil, &types.ProviderError{StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &types.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []types.NominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	return results, nil
}
