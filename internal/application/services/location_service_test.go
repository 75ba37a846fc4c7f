package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
)

type positionFunc func(ctx context.Context) (*entities.Coordinates, error)

func (f positionFunc) CurrentPosition(ctx context.Context) (*entities.Coordinates, error) {
	return f(ctx)
}

func TestLocationService_Resolve(t *testing.T) {
	svc := services.NewLocationService(time.Second, services.DefaultLocation, nil)

	state := svc.Resolve(context.Background(), positionFunc(func(context.Context) (*entities.Coordinates, error) {
		return &entities.Coordinates{Lat: 40.75, Lng: -73.99}, nil
	}))

	assert.Equal(t, entities.Coordinates{Lat: 40.75, Lng: -73.99}, state.Location)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
}

func TestLocationService_ResolveFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		provider providers.PositionProvider
		wantErr  string
	}{
		{
			name:     "unsupported environment",
			provider: nil,
			wantErr:  "Geolocation is not supported by this browser.",
		},
		{
			name: "permission denied",
			provider: positionFunc(func(context.Context) (*entities.Coordinates, error) {
				return nil, providers.NewPositionError(entities.LocationPermissionDenied)
			}),
			wantErr: "User denied the request for Geolocation.",
		},
		{
			name: "unclassified error",
			provider: positionFunc(func(context.Context) (*entities.Coordinates, error) {
				return nil, errors.New("gps exploded")
			}),
			wantErr: "An unknown error occurred.",
		},
		{
			name: "invalid reading",
			provider: positionFunc(func(context.Context) (*entities.Coordinates, error) {
				return &entities.Coordinates{Lat: 123, Lng: 0}, nil
			}),
			wantErr: "Location information is unavailable.",
		},
		{
			name: "provider reports deadline",
			provider: positionFunc(func(context.Context) (*entities.Coordinates, error) {
				return nil, context.DeadlineExceeded
			}),
			wantErr: "The request to get user location timed out.",
		},
	}

	svc := services.NewLocationService(time.Second, services.DefaultLocation, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := svc.Resolve(context.Background(), tt.provider)
			assert.Equal(t, entities.Coordinates{Lat: 40.7128, Lng: -74.006}, state.Location)
			assert.Equal(t, tt.wantErr, state.Error)
			assert.False(t, state.Loading)
		})
	}
}

func TestLocationService_ResolveTimeout(t *testing.T) {
	svc := services.NewLocationService(20*time.Millisecond, services.DefaultLocation, nil)

	// The provider ignores ctx and never answers
	block := make(chan struct{})
	defer close(block)

	start := time.Now()
	state := svc.Resolve(context.Background(), positionFunc(func(context.Context) (*entities.Coordinates, error) {
		<-block
		return nil, nil
	}))

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, services.DefaultLocation, state.Location)
	assert.Equal(t, "The request to get user location timed out.", state.Error)
}

func TestNewLocationService_DefaultTimeout(t *testing.T) {
	// Non-positive timeouts fall back to the default rather than failing instantly
	svc := services.NewLocationService(0, services.DefaultLocation, nil)
	state := svc.Resolve(context.Background(), positionFunc(func(context.Context) (*entities.Coordinates, error) {
		return &entities.Coordinates{Lat: 1, Lng: 2}, nil
	}))
	assert.Empty(t, state.Error)
}
