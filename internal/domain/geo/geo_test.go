package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

var (
	cityGeneral = entities.Coordinates{Lat: 40.7128, Lng: -74.006}
	stMarys     = entities.Coordinates{Lat: 40.7589, Lng: -73.9851}
)

func TestPlanarDistanceMiles_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, PlanarDistanceMiles(cityGeneral, cityGeneral))
}

func TestPlanarDistanceMiles_Symmetric(t *testing.T) {
	assert.Equal(t, PlanarDistanceMiles(cityGeneral, stMarys), PlanarDistanceMiles(stMarys, cityGeneral))
}

func TestPlanarDistanceMiles_Value(t *testing.T) {
	dLat := 40.7589 - 40.7128
	dLng := -73.9851 - -74.006
	expected := math.Sqrt(dLat*dLat+dLng*dLng) * 69

	assert.InDelta(t, expected, PlanarDistanceMiles(cityGeneral, stMarys), 1e-9)
	assert.InDelta(t, 3.49, PlanarDistanceMiles(cityGeneral, stMarys), 0.01)
}

func TestAxisWeightedDistanceMeters(t *testing.T) {
	dLat := (40.7589 - 40.7128) * 69
	dLng := (-73.9851 - -74.006) * 54.6
	expected := math.Sqrt(dLat*dLat+dLng*dLng) * 1609.34

	assert.InDelta(t, expected, AxisWeightedDistanceMeters(cityGeneral, stMarys), 1e-6)
	assert.InDelta(t, AxisWeightedDistanceMeters(cityGeneral, stMarys), AxisWeightedDistanceMeters(stMarys, cityGeneral), 1e-9)
}

func TestEstimateDurationSeconds(t *testing.T) {
	tests := []struct {
		profile  entities.TravelProfile
		expected float64
	}{
		{entities.ProfileWalking, 1000 / 1.4},
		{entities.ProfileCycling, 1000 / 4.5},
		{entities.ProfileDriving, 1000 / 13.4},
		{entities.TravelProfile("hovercraft"), 1000 / 13.4},
		{entities.TravelProfile(""), 1000 / 13.4},
	}

	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateDurationSeconds(1000, tt.profile), 1e-9)
		})
	}
}

func TestEstimateDurationSeconds_NonFiniteInputPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(EstimateDurationSeconds(math.NaN(), entities.ProfileDriving)))
	assert.True(t, math.IsInf(EstimateDurationSeconds(math.Inf(1), entities.ProfileWalking), 1))
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(entities.LngLat{-74.0, 40.0}, entities.LngLat{-73.0, 41.0})
	assert.Equal(t, entities.LngLat{-73.5, 40.5}, mid)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(cityGeneral))
	assert.True(t, Valid(entities.Coordinates{Lat: 89.99, Lng: -179.99}))
	assert.False(t, Valid(entities.Coordinates{Lat: 91, Lng: 0}))
	assert.False(t, Valid(entities.Coordinates{Lat: 0, Lng: 180.5}))
	assert.False(t, Valid(entities.Coordinates{Lat: math.NaN(), Lng: 0}))
	assert.False(t, Valid(entities.Coordinates{Lat: 0, Lng: math.Inf(-1)}))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.0 mi", FormatMiles(1609.34))
	assert.Equal(t, "0.0 mi", FormatMiles(0))
	assert.Equal(t, "15 min", FormatMinutes(15*60+59))
	assert.Equal(t, "0 min", FormatMinutes(30))
}
