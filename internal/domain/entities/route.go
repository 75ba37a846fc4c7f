package entities

// TravelProfile governs the assumed travel speed of a synthesized route
type TravelProfile string

const (
	ProfileDriving TravelProfile = "driving"
	ProfileWalking TravelProfile = "walking"
	ProfileCycling TravelProfile = "cycling"
)

// ManeuverKind classifies a route step
type ManeuverKind string

const (
	ManeuverDepart   ManeuverKind = "depart"
	ManeuverTurn     ManeuverKind = "turn"
	ManeuverStraight ManeuverKind = "straight"
	ManeuverArrive   ManeuverKind = "arrive"
)

// RouteStep is one instruction of a route narrative
type RouteStep struct {
	DistanceMeters  float64
	DurationSeconds float64
	Instruction     string
	Maneuver        ManeuverKind
}

// RouteResult is a synthesized route between two coordinates
type RouteResult struct {
	Start                LngLat
	End                  LngLat
	Profile              TravelProfile
	Geometry             []LngLat
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
	Steps                []RouteStep
}
