package entities

// LocationErrorKind classifies why a device position could not be acquired
type LocationErrorKind string

const (
	LocationPermissionDenied    LocationErrorKind = "permission_denied"
	LocationPositionUnavailable LocationErrorKind = "position_unavailable"
	LocationTimeout             LocationErrorKind = "timeout"
	LocationUnsupported         LocationErrorKind = "unsupported"
	LocationUnknown             LocationErrorKind = "unknown"
)

// Message returns the human-readable description shown to users
func (k LocationErrorKind) Message() string {
	switch k {
	case LocationPermissionDenied:
		return "User denied the request for Geolocation."
	case LocationPositionUnavailable:
		return "Location information is unavailable."
	case LocationTimeout:
		return "The request to get user location timed out."
	case LocationUnsupported:
		return "Geolocation is not supported by this browser."
	default:
		return "An unknown error occurred."
	}
}

// ParseLocationErrorKind maps a reported error code to a kind. Unrecognised
// codes classify as LocationUnknown.
func ParseLocationErrorKind(code string) LocationErrorKind {
	switch LocationErrorKind(code) {
	case LocationPermissionDenied, LocationPositionUnavailable, LocationTimeout, LocationUnsupported:
		return LocationErrorKind(code)
	}
	// W3C PositionError numeric codes
	switch code {
	case "1":
		return LocationPermissionDenied
	case "2":
		return LocationPositionUnavailable
	case "3":
		return LocationTimeout
	}
	return LocationUnknown
}

// LocationState is the resolved user position handed to callers of the query engine
type LocationState struct {
	Location Coordinates `json:"location"`
	Error    string      `json:"error,omitempty"`
	Loading  bool        `json:"loading"`
}
