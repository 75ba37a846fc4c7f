package services

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

// DefaultRadiusMiles is the cutoff applied when a query with an origin carries no radius
const DefaultRadiusMiles = 10.0

// QueryEngine filters and sorts the facility directory
type QueryEngine struct {
	directory     repositories.FacilityDirectory
	defaultRadius float64
	metrics       *observability.DomainMetrics
}

// NewQueryEngine creates a new query engine. A non-positive defaultRadiusMiles
// falls back to DefaultRadiusMiles.
func NewQueryEngine(directory repositories.FacilityDirectory, defaultRadiusMiles float64, metrics *observability.DomainMetrics) *QueryEngine {
	if defaultRadiusMiles <= 0 {
		defaultRadiusMiles = DefaultRadiusMiles
	}
	return &QueryEngine{
		directory:     directory,
		defaultRadius: defaultRadiusMiles,
		metrics:       metrics,
	}
}

// Search runs q against the current directory snapshot
func (e *QueryEngine) Search(ctx context.Context, q entities.Query) ([]entities.Facility, error) {
	ctx, span := observability.StartSpan(ctx, "QueryEngine.Search")
	defer span.End()

	observability.SetSpanAttributes(span,
		attribute.String("query.term", q.SearchTerm),
		attribute.String("query.service", q.ServiceFilter),
		attribute.String("query.sort", string(q.SortKey)),
		attribute.Bool("query.with_origin", q.Origin != nil),
	)

	facilities, err := e.directory.All(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, apperrors.NewInternalError("failed to load facility directory", err)
	}

	if q.RadiusMiles <= 0 {
		q.RadiusMiles = e.defaultRadius
	}

	results, err := FilterAndSort(facilities, q)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("query.result_count", len(results)))
	e.metrics.ObserveSearch(sortLabel(q.SortKey), q.Origin != nil, len(results))

	return results, nil
}

// FilterAndSort applies the text filter, service filter, optional distance
// recompute with radius cutoff, and a stable sort to facilities. The input
// slice and its elements are never modified.
func FilterAndSort(facilities []entities.Facility, q entities.Query) ([]entities.Facility, error) {
	if q.Origin != nil && !geo.Valid(*q.Origin) {
		return nil, apperrors.NewInvalidArgumentError("origin coordinates are invalid")
	}

	radius := q.RadiusMiles
	if radius <= 0 {
		radius = DefaultRadiusMiles
	}

	term := strings.ToLower(q.SearchTerm)
	results := make([]entities.Facility, 0, len(facilities))

	for _, f := range facilities {
		if !matchesTerm(&f, term) {
			continue
		}
		if !q.MatchesAllServices() && !f.HasService(q.ServiceFilter) {
			continue
		}
		if q.Origin != nil {
			f.Distance = geo.PlanarDistanceMiles(*q.Origin, f.Coordinates)
			if f.Distance > radius {
				continue
			}
		}
		results = append(results, f)
	}

	sortFacilities(results, q.SortKey)
	return results, nil
}

func sortLabel(key entities.SortKey) string {
	switch key {
	case entities.SortByDistance, entities.SortByRating, entities.SortByName:
		return string(key)
	}
	return "none"
}

func matchesTerm(f *entities.Facility, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), lowerTerm) {
		return true
	}
	for _, s := range f.Services {
		if strings.Contains(strings.ToLower(s), lowerTerm) {
			return true
		}
	}
	return false
}

func sortFacilities(facilities []entities.Facility, key entities.SortKey) {
	switch key {
	case entities.SortByDistance:
		sort.SliceStable(facilities, func(i, j int) bool {
			return facilities[i].Distance < facilities[j].Distance
		})
	case entities.SortByRating:
		sort.SliceStable(facilities, func(i, j int) bool {
			return facilities[i].Rating > facilities[j].Rating
		})
	case entities.SortByName:
		// Collators keep internal buffers and are not safe for concurrent use.
		c := collate.New(language.English)
		sort.SliceStable(facilities, func(i, j int) bool {
			return c.CompareString(facilities[i].Name, facilities[j].Name) < 0
		})
	}
}
