package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
)

// RouteSynthesizer builds routes between coordinates
type RouteSynthesizer interface {
	Synthesize(ctx context.Context, start, end []float64, profile entities.TravelProfile) (*entities.RouteResult, error)
	SynthesizeBatch(ctx context.Context, coordinates [][]float64, profile entities.TravelProfile) ([]*entities.RouteResult, error)
}

// DirectionsResponse mirrors the Mapbox Directions API payload
type DirectionsResponse struct {
	Routes    []Route    `json:"routes"`
	Waypoints []Waypoint `json:"waypoints"`
	Code      string     `json:"code"`
	UUID      string     `json:"uuid"`
}

// BatchDirectionsResponse is returned for multi-destination requests
type BatchDirectionsResponse struct {
	Routes []Route `json:"routes"`
	Code   string  `json:"code"`
}

// Route is one directions route
type Route struct {
	Geometry   LineString   `json:"geometry"`
	Legs       []Leg        `json:"legs"`
	Distance   float64      `json:"distance"`
	Duration   float64      `json:"duration"`
	WeightName string       `json:"weight_name"`
	Weight     float64      `json:"weight"`
	Summary    RouteSummary `json:"summary"`
}

// LineString is a GeoJSON line geometry
type LineString struct {
	Coordinates []entities.LngLat `json:"coordinates"`
	Type        string            `json:"type"`
}

// Leg is the portion of a route between two waypoints
type Leg struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Steps    []Step  `json:"steps"`
}

// Step is a single turn-by-turn instruction
type Step struct {
	Distance    float64  `json:"distance"`
	Duration    float64  `json:"duration"`
	Instruction string   `json:"instruction"`
	Maneuver    Maneuver `json:"maneuver"`
}

// Maneuver describes the action at the start of a step
type Maneuver struct {
	Type        string `json:"type"`
	Instruction string `json:"instruction"`
}

// Waypoint is a snapped input coordinate
type Waypoint struct {
	Distance float64         `json:"distance"`
	Name     string          `json:"name"`
	Location entities.LngLat `json:"location"`
}

// RouteSummary carries display strings for a route
type RouteSummary struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

type batchDirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
	Profile     string      `json:"profile"`
}

// DirectionsHandler serves synthesized directions
type DirectionsHandler struct {
	synthesizer RouteSynthesizer
	newID       func() string
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(synthesizer RouteSynthesizer) *DirectionsHandler {
	return &DirectionsHandler{
		synthesizer: synthesizer,
		newID:       uuid.NewString,
	}
}

// GetDirections handles GET /api/mapbox/directions?start=lng,lat&end=lng,lat&profile=
func (h *DirectionsHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	startStr := strings.TrimSpace(params.Get("start"))
	endStr := strings.TrimSpace(params.Get("end"))
	if startStr == "" || endStr == "" {
		respondWithError(w, http.StatusBadRequest, "Start and end coordinates are required")
		return
	}

	start, err := services.ParseLngLat(startStr)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	end, err := services.ParseLngLat(endStr)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	route, err := h.synthesizer.Synthesize(r.Context(), start, end, parseProfile(params.Get("profile")))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DirectionsResponse{
		Routes: []Route{toRoute(route)},
		Waypoints: []Waypoint{
			{Location: route.Start},
			{Location: route.End},
		},
		Code: "Ok",
		UUID: h.newID(),
	})
}

// BatchDirections handles POST /api/mapbox/directions, routing from the
// first coordinate to each of the others
func (h *DirectionsHandler) BatchDirections(w http.ResponseWriter, r *http.Request) {
	var req batchDirectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Coordinates) < 2 {
		respondWithError(w, http.StatusBadRequest, "At least 2 coordinates are required")
		return
	}

	routes, err := h.synthesizer.SynthesizeBatch(r.Context(), req.Coordinates, parseProfile(req.Profile))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	resp := BatchDirectionsResponse{
		Routes: make([]Route, len(routes)),
		Code:   "Ok",
	}
	for i, route := range routes {
		resp.Routes[i] = toRoute(route)
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func parseProfile(value string) entities.TravelProfile {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return entities.ProfileDriving
	}
	return entities.TravelProfile(value)
}

func toRoute(route *entities.RouteResult) Route {
	steps := make([]Step, len(route.Steps))
	for i, s := range route.Steps {
		steps[i] = Step{
			Distance:    s.DistanceMeters,
			Duration:    s.DurationSeconds,
			Instruction: s.Instruction,
			Maneuver: Maneuver{
				Type:        string(s.Maneuver),
				Instruction: s.Instruction,
			},
		}
	}

	return Route{
		Geometry: LineString{
			Coordinates: route.Geometry,
			Type:        "LineString",
		},
		Legs: []Leg{{
			Distance: route.TotalDistanceMeters,
			Duration: route.TotalDurationSeconds,
			Steps:    steps,
		}},
		Distance:   route.TotalDistanceMeters,
		Duration:   route.TotalDurationSeconds,
		WeightName: "routability",
		Weight:     route.TotalDurationSeconds,
		Summary: RouteSummary{
			Distance: geo.FormatMiles(route.TotalDistanceMeters),
			Duration: geo.FormatMinutes(route.TotalDurationSeconds),
		},
	}
}
