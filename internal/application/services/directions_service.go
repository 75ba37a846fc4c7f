package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

// narrativeStep is one fixed leg of the synthetic turn-by-turn narrative
type narrativeStep struct {
	share       float64
	instruction string
	maneuver    entities.ManeuverKind
}

// The narrative ignores geometry; shares are fixed fractions of the totals.
var narrative = []narrativeStep{
	{0.3, "Head northeast on Main Street", entities.ManeuverDepart},
	{0.4, "Turn right onto Oak Avenue", entities.ManeuverTurn},
	{0.3, "Continue straight to destination", entities.ManeuverStraight},
	{0, "Arrive at destination", entities.ManeuverArrive},
}

// DirectionsService synthesizes straight-line routes shaped like a directions API response
type DirectionsService struct {
	metrics *observability.DomainMetrics
}

// NewDirectionsService creates a new directions service
func NewDirectionsService(metrics *observability.DomainMetrics) *DirectionsService {
	return &DirectionsService{metrics: metrics}
}

// Synthesize builds a route from start to end. An empty profile means driving.
func (s *DirectionsService) Synthesize(ctx context.Context, start, end []float64, profile entities.TravelProfile) (*entities.RouteResult, error) {
	_, span := observability.StartSpan(ctx, "DirectionsService.Synthesize")
	defer span.End()

	route, err := SynthesizeRoute(start, end, profile)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("route.profile", string(route.Profile)),
		attribute.Float64("route.distance_m", route.TotalDistanceMeters),
	)
	s.metrics.ObserveRoute(profileLabel(route.Profile))

	return route, nil
}

// SynthesizeBatch builds one route from the first coordinate to each of the others
func (s *DirectionsService) SynthesizeBatch(ctx context.Context, coordinates [][]float64, profile entities.TravelProfile) ([]*entities.RouteResult, error) {
	_, span := observability.StartSpan(ctx, "DirectionsService.SynthesizeBatch")
	defer span.End()

	if len(coordinates) < 2 {
		err := apperrors.NewInvalidArgumentError("at least 2 coordinates are required")
		observability.RecordError(span, err)
		return nil, err
	}

	routes := make([]*entities.RouteResult, 0, len(coordinates)-1)
	for i, dest := range coordinates[1:] {
		route, err := SynthesizeRoute(coordinates[0], dest, profile)
		if err != nil {
			observability.RecordError(span, err)
			return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("coordinate %d: %s", i+1, messageOf(err)))
		}
		s.metrics.ObserveRoute(profileLabel(route.Profile))
		routes = append(routes, route)
	}

	span.SetAttributes(attribute.Int("route.count", len(routes)))
	return routes, nil
}

// SynthesizeRoute is the pure route computation. start and end are
// [lng, lat] pairs.
func SynthesizeRoute(start, end []float64, profile entities.TravelProfile) (*entities.RouteResult, error) {
	from, err := toLngLat("start", start)
	if err != nil {
		return nil, err
	}
	to, err := toLngLat("end", end)
	if err != nil {
		return nil, err
	}
	if profile == "" {
		profile = entities.ProfileDriving
	}

	distance := geo.AxisWeightedDistanceMeters(from.Coordinates(), to.Coordinates())
	duration := geo.EstimateDurationSeconds(distance, profile)

	steps := make([]entities.RouteStep, len(narrative))
	for i, n := range narrative {
		steps[i] = entities.RouteStep{
			DistanceMeters:  distance * n.share,
			DurationSeconds: duration * n.share,
			Instruction:     n.instruction,
			Maneuver:        n.maneuver,
		}
	}

	return &entities.RouteResult{
		Start:                from,
		End:                  to,
		Profile:              profile,
		Geometry:             []entities.LngLat{from, geo.Midpoint(from, to), to},
		TotalDistanceMeters:  distance,
		TotalDurationSeconds: duration,
		Steps:                steps,
	}, nil
}

// ParseLngLat parses a "lng,lat" query value
func ParseLngLat(value string) ([]float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, apperrors.NewInvalidArgumentError("coordinate is required")
	}
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("coordinate %q must be \"lng,lat\"", value))
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("coordinate %q is not numeric", value))
		}
		out[i] = v
	}
	return out, nil
}

func toLngLat(name string, pair []float64) (entities.LngLat, error) {
	if len(pair) != 2 {
		return entities.LngLat{}, apperrors.NewInvalidArgumentError(fmt.Sprintf("%s must have exactly 2 components", name))
	}
	for _, v := range pair {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return entities.LngLat{}, apperrors.NewInvalidArgumentError(fmt.Sprintf("%s has non-numeric components", name))
		}
	}
	p := entities.LngLat{pair[0], pair[1]}
	if !geo.Valid(p.Coordinates()) {
		return entities.LngLat{}, apperrors.NewInvalidArgumentError(fmt.Sprintf("%s is outside valid degree ranges", name))
	}
	return p, nil
}

// profileLabel bounds metric cardinality; callers may pass any profile string
func profileLabel(p entities.TravelProfile) string {
	switch p {
	case entities.ProfileDriving, entities.ProfileWalking, entities.ProfileCycling:
		return string(p)
	}
	return "other"
}

func messageOf(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
