package place

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/cailurus/hearth/internal/domain/timezone"
	"github.com/cailurus/hearth/internal/types"
)

const (
	defaultResultCount = 8
	maxResultCount     = 20
)

type Service interface {
	SearchCities(ctx context.Context, query string, count int, language string) ([]types.GeoPoint, error)
	GeocodeCity(ctx context.Context, city, language string) (types.GeoPoint, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger   *slog.Logger
	provider Provider
	timezone timezone.Resolver
}

func NewPlaceService(provider Provider, tz timezone.Resolver, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		provider: provider,
		timezone: tz,
	}
}

// acceptLanguage normalizes the widget-facing language preference to the
// provider's accept-language parameter.
func acceptLanguage(language string) string {
	if language == "zh" {
		return "zh-CN,zh"
	}
	return "en"
}

// SearchCities resolves a free-form city query to up to count geocoded
// points with hierarchical display names. Queries in Chinese are widened via
// the static translation table, falling back to the untranslated term when
// the widened search finds nothing. An empty result is always an error.
func (s *ServiceImpl) SearchCities(ctx context.Context, query string, count int, language string) ([]types.GeoPoint, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "SearchCities")
	defer span.End()

	l := s.logger.With(slog.String("method", "SearchCities"))

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		span.SetStatus(codes.Error, "empty query")
		return nil, fmt.Errorf("empty query: %w", types.ErrBadRequest)
	}

	// "City, State, Country" style qualifiers confuse the provider's
	// free-text search; keep only the city part. Full-width commas cover
	// queries typed with a CJK input method.
	if idx := strings.IndexAny(trimmed, ",，"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	if trimmed == "" {
		span.SetStatus(codes.Error, "empty query after qualifier trim")
		return nil, fmt.Errorf("query is only a qualifier: %w", types.ErrBadRequest)
	}

	if count <= 0 {
		count = defaultResultCount
	} else if count > maxResultCount {
		count = maxResultCount
	}

	tag := acceptLanguage(language)
	span.SetAttributes(
		attribute.String("search.query", trimmed),
		attribute.Int("search.count", count),
		attribute.String("search.language", tag),
	)

	term := trimmed
	translated := false
	if containsHan(trimmed) {
		if token := translateChineseCity(trimmed); token != trimmed {
			term = token
			translated = true
			l.DebugContext(ctx, "translated Chinese query",
				slog.String("query", trimmed),
				slog.String("term", term))
		}
	}

	// Over-fetch so place_id de-duplication still fills the requested count.
	results, err := s.provider.Search(ctx, term, count*2, tag)
	if err != nil {
		l.ErrorContext(ctx, "provider search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider search failed")
		return nil, fmt.Errorf("search places: %w", err)
	}

	if len(results) == 0 && translated {
		l.DebugContext(ctx, "translated term matched nothing, retrying untranslated",
			slog.String("term", trimmed))
		results, err = s.provider.Search(ctx, trimmed, count*2, tag)
		if err != nil {
			l.ErrorContext(ctx, "provider fallback search failed", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "provider search failed")
			return nil, fmt.Errorf("search places: %w", err)
		}
	}

	if len(results) == 0 {
		span.SetStatus(codes.Error, "no results")
		return nil, fmt.Errorf("no places matched %q: %w", trimmed, types.ErrNotFound)
	}

	seen := make(map[int64]struct{}, len(results))
	points := make([]types.GeoPoint, 0, count)
	for _, r := range results {
		if _, dup := seen[r.PlaceID]; dup {
			continue
		}
		seen[r.PlaceID] = struct{}{}

		lat, _ := strconv.ParseFloat(r.Lat, 64)
		lon, _ := strconv.ParseFloat(r.Lon, 64)
		points = append(points, types.GeoPoint{
			Latitude:    lat,
			Longitude:   lon,
			DisplayName: buildDisplayName(r),
		})
		if len(points) == count {
			break
		}
	}

	if len(points) == 0 {
		span.SetStatus(codes.Error, "no usable results")
		return nil, fmt.Errorf("no places matched %q: %w", trimmed, types.ErrNotFound)
	}

	l.InfoContext(ctx, "places resolved",
		slog.String("query", trimmed),
		slog.Int("count", len(points)))
	span.SetAttributes(attribute.Int("search.results", len(points)))
	span.SetStatus(codes.Ok, "places resolved")

	return points, nil
}

// GeocodeCity resolves a query to its single best match and enriches it with
// a timezone. Timezone resolution is best-effort: a resolver failure leaves
// the zone empty and never fails the geocode.
func (s *ServiceImpl) GeocodeCity(ctx context.Context, city, language string) (types.GeoPoint, error) {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "GeocodeCity")
	defer span.End()

	l := s.logger.With(slog.String("method", "GeocodeCity"))

	points, err := s.SearchCities(ctx, city, 1, language)
	if err != nil {
		return types.GeoPoint{}, err
	}

	point := points[0]
	if point.Timezone == "" && s.timezone != nil {
		lat := strconv.FormatFloat(point.Latitude, 'f', -1, 64)
		lon := strconv.FormatFloat(point.Longitude, 'f', -1, 64)
		zone, tzErr := s.timezone.ResolveTimezone(ctx, lat, lon)
		if tzErr != nil {
			l.WarnContext(ctx, "timezone resolution failed",
				slog.String("city", point.DisplayName),
				slog.Any("error", tzErr))
		} else {
			point.Timezone = zone
		}
	}

	span.SetAttributes(attribute.String("geocode.display_name", point.DisplayName))
	span.SetStatus(codes.Ok, "city geocoded")
	return point, nil
}
