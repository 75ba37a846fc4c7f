package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
)

// DefaultLocationTimeout bounds how long Resolve waits for a position reading
const DefaultLocationTimeout = 10 * time.Second

// DefaultLocation is used whenever no usable reading is obtained
var DefaultLocation = entities.Coordinates{Lat: 40.7128, Lng: -74.006}

// LocationService resolves the user's position, falling back to a default
// coordinate on failure, timeout, or an unsupported environment
type LocationService struct {
	timeout  time.Duration
	fallback entities.Coordinates
	metrics  *observability.DomainMetrics
}

// NewLocationService creates a new location service. A non-positive timeout
// falls back to DefaultLocationTimeout.
func NewLocationService(timeout time.Duration, fallback entities.Coordinates, metrics *observability.DomainMetrics) *LocationService {
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}
	return &LocationService{
		timeout:  timeout,
		fallback: fallback,
		metrics:  metrics,
	}
}

type positionResult struct {
	coords *entities.Coordinates
	err    error
}

// Resolve asks provider for a reading. It never returns an error: failures
// yield the fallback coordinate with a classified message.
func (s *LocationService) Resolve(ctx context.Context, provider providers.PositionProvider) entities.LocationState {
	ctx, span := observability.StartSpan(ctx, "LocationService.Resolve")
	defer span.End()

	if provider == nil {
		return s.fallbackState(ctx, entities.LocationUnsupported)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Buffered so the provider goroutine never blocks after a timeout
	done := make(chan positionResult, 1)
	go func() {
		coords, err := provider.CurrentPosition(ctx)
		done <- positionResult{coords: coords, err: err}
	}()

	var res positionResult
	select {
	case res = <-done:
	case <-ctx.Done():
		return s.fallbackState(ctx, entities.LocationTimeout)
	}

	if res.err != nil {
		return s.fallbackState(ctx, classifyPositionError(res.err))
	}
	if res.coords == nil || !geo.Valid(*res.coords) {
		return s.fallbackState(ctx, entities.LocationPositionUnavailable)
	}

	span.SetAttributes(attribute.Bool("location.fallback", false))
	return entities.LocationState{Location: *res.coords}
}

func (s *LocationService) fallbackState(ctx context.Context, kind entities.LocationErrorKind) entities.LocationState {
	observability.LoggerFromContext(ctx).Debug().
		Str("reason", string(kind)).
		Msg("Using default location")
	s.metrics.ObserveLocationFallback(string(kind))

	return entities.LocationState{
		Location: s.fallback,
		Error:    kind.Message(),
	}
}

func classifyPositionError(err error) entities.LocationErrorKind {
	var posErr *providers.PositionError
	switch {
	case errors.As(err, &posErr):
		return posErr.Kind
	case errors.Is(err, context.DeadlineExceeded):
		return entities.LocationTimeout
	default:
		return entities.LocationUnknown
	}
}
