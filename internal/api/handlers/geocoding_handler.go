package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

const geocodingAttribution = "© Mapbox © OpenStreetMap"

// PlaceMatcher resolves free text to place features
type PlaceMatcher interface {
	Match(ctx context.Context, query string, opts services.MatchOptions) ([]entities.PlaceFeature, error)
}

// FeatureCollection mirrors the Mapbox Geocoding API payload
type FeatureCollection struct {
	Type        string                  `json:"type"`
	Query       []string                `json:"query"`
	Features    []entities.PlaceFeature `json:"features"`
	Attribution string                  `json:"attribution"`
}

// GeocodingHandler serves directory-backed geocoding lookups
type GeocodingHandler struct {
	matcher PlaceMatcher
}

// NewGeocodingHandler creates a new geocoding handler
func NewGeocodingHandler(matcher PlaceMatcher) *GeocodingHandler {
	return &GeocodingHandler{matcher: matcher}
}

// Geocode handles GET /api/mapbox/geocoding?q=&proximity=&types=&limit=
func (h *GeocodingHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := strings.TrimSpace(params.Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	// proximity is accepted for API compatibility; results are ranked by static relevance
	if proximity := strings.TrimSpace(params.Get("proximity")); proximity != "" {
		if _, err := services.ParseLngLat(proximity); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid proximity parameter")
			return
		}
	}

	var opts services.MatchOptions
	if types := strings.TrimSpace(params.Get("types")); types != "" {
		opts.Types = strings.Split(types, ",")
	}
	if limitStr := strings.TrimSpace(params.Get("limit")); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		opts.Limit = limit
	}

	features, err := h.matcher.Match(r.Context(), query, opts)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, FeatureCollection{
		Type:        "FeatureCollection",
		Query:       []string{query},
		Features:    features,
		Attribution: geocodingAttribution,
	})
}
