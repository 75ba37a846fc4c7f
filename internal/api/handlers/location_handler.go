package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/hospital-locator/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
)

// LocationResolver turns a position source into a usable location
type LocationResolver interface {
	Resolve(ctx context.Context, provider providers.PositionProvider) entities.LocationState
}

// LocationHandler resolves device-reported positions
type LocationHandler struct {
	resolver LocationResolver
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(resolver LocationResolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// ResolveLocation handles GET /api/location?lat=&lng=&error=
func (h *LocationHandler) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	report := geolocation.Report{
		ErrorCode: strings.TrimSpace(params.Get("error")),
	}

	var err error
	if report.Lat, err = optionalFloat(params.Get("lat")); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
		return
	}
	if report.Lng, err = optionalFloat(params.Get("lng")); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lng parameter")
		return
	}

	state := h.resolver.Resolve(r.Context(), geolocation.NewReportedPositionProvider(report))
	respondWithJSON(w, http.StatusOK, state)
}

func optionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
