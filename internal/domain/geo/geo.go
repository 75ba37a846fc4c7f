// Package geo holds the flat-earth distance and travel-time approximations
// used by facility search and route synthesis.
//
// The two distance helpers are not numerically consistent with each other:
// PlanarDistanceMiles applies a single 69 mi/degree scalar to both axes while
// AxisWeightedDistanceMeters scales longitude by 54.6. Do not mix them within
// one computation.
package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

const (
	MilesPerDegreeLat = 69.0
	MilesPerDegreeLng = 54.6
	MetersPerMile     = 1609.34

	walkingSpeedMPS = 1.4
	cyclingSpeedMPS = 4.5
	drivingSpeedMPS = 13.4
)

// PlanarDistanceMiles returns sqrt(dLat^2 + dLng^2) * 69.
func PlanarDistanceMiles(a, b entities.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * MilesPerDegreeLat
}

// AxisWeightedDistanceMeters scales latitude by 69 and longitude by 54.6
// miles per degree, then converts to meters.
func AxisWeightedDistanceMeters(start, end entities.Coordinates) float64 {
	dLat := (end.Lat - start.Lat) * MilesPerDegreeLat
	dLng := (end.Lng - start.Lng) * MilesPerDegreeLng
	return math.Sqrt(dLat*dLat+dLng*dLng) * MetersPerMile
}

// SpeedMetersPerSecond returns the assumed constant speed for profile.
// Unrecognised profiles travel at driving speed.
func SpeedMetersPerSecond(profile entities.TravelProfile) float64 {
	switch profile {
	case entities.ProfileWalking:
		return walkingSpeedMPS
	case entities.ProfileCycling:
		return cyclingSpeedMPS
	default:
		return drivingSpeedMPS
	}
}

// EstimateDurationSeconds divides distanceMeters by the profile speed
func EstimateDurationSeconds(distanceMeters float64, profile entities.TravelProfile) float64 {
	return distanceMeters / SpeedMetersPerSecond(profile)
}

// Midpoint returns the arithmetic midpoint of a and b
func Midpoint(a, b entities.LngLat) entities.LngLat {
	return entities.LngLat{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Valid reports whether c is a finite coordinate with lat in [-90,90] and lng in [-180,180]
func Valid(c entities.Coordinates) bool {
	return s2.LatLngFromDegrees(c.Lat, c.Lng).IsValid()
}

// FormatMiles renders a meter distance as miles with one decimal, e.g. "2.4 mi"
func FormatMiles(meters float64) string {
	return fmt.Sprintf("%.1f mi", meters/MetersPerMile)
}

// FormatMinutes renders a duration in whole minutes, rounding down, e.g. "15 min"
func FormatMinutes(seconds float64) string {
	return fmt.Sprintf("%d min", int(math.Floor(seconds/60)))
}
