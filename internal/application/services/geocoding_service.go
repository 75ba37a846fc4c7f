package services

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

// MatchOptions narrows a geocoding lookup
type MatchOptions struct {
	// Types restricts results to these place types; empty means any
	Types []string
	// Limit caps the number of results after ordering; zero means no cap
	Limit int
}

// GeocodingService matches free text against the directory's names and addresses
type GeocodingService struct {
	directory repositories.FacilityDirectory
	metrics   *observability.DomainMetrics
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(directory repositories.FacilityDirectory, metrics *observability.DomainMetrics) *GeocodingService {
	return &GeocodingService{directory: directory, metrics: metrics}
}

// Match returns place features whose name or formatted address contains query
func (s *GeocodingService) Match(ctx context.Context, query string, opts MatchOptions) ([]entities.PlaceFeature, error) {
	ctx, span := observability.StartSpan(ctx, "GeocodingService.Match")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		err := apperrors.NewInvalidArgumentError("query is required")
		observability.RecordError(span, err)
		return nil, err
	}

	if len(opts.Types) > 0 && !containsFold(opts.Types, "poi") {
		s.metrics.ObserveGeocoding(false)
		return []entities.PlaceFeature{}, nil
	}

	facilities, err := s.directory.All(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewInternalError("failed to load facility directory", err)
	}

	matched := MatchFacilities(facilities, query)
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	features := make([]entities.PlaceFeature, len(matched))
	for i := range matched {
		features[i] = entities.NewPlaceFeature(&matched[i])
	}

	span.SetAttributes(attribute.Int("geocoding.result_count", len(features)))
	s.metrics.ObserveGeocoding(len(features) > 0)

	return features, nil
}

// MatchFacilities returns facilities whose name or place name contains query
// case-insensitively, ordered by static relevance descending with ties kept
// in input order.
func MatchFacilities(facilities []entities.Facility, query string) []entities.Facility {
	needle := strings.ToLower(query)
	matched := make([]entities.Facility, 0, len(facilities))
	for _, f := range facilities {
		if strings.Contains(strings.ToLower(f.Name), needle) ||
			strings.Contains(strings.ToLower(f.PlaceName()), needle) {
			matched = append(matched, f)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Relevance > matched[j].Relevance
	})
	return matched
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
