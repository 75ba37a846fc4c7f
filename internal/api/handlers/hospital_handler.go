package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

// FacilitySearcher runs directory queries
type FacilitySearcher interface {
	Search(ctx context.Context, q entities.Query) ([]entities.Facility, error)
}

// FacilityCatalog serves individual facility records
type FacilityCatalog interface {
	GetByID(ctx context.Context, id int) (*entities.Facility, error)
	Services(ctx context.Context) ([]string, error)
	Draft(ctx context.Context, facility entities.Facility) (*entities.Facility, error)
}

// HospitalHandler handles hospital directory HTTP requests
type HospitalHandler struct {
	searcher FacilitySearcher
	catalog  FacilityCatalog
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(searcher FacilitySearcher, catalog FacilityCatalog) *HospitalHandler {
	return &HospitalHandler{
		searcher: searcher,
		catalog:  catalog,
	}
}

// ListHospitals handles GET /api/hospitals
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := entities.Query{
		SearchTerm:    strings.TrimSpace(params.Get("q")),
		ServiceFilter: strings.TrimSpace(params.Get("service")),
		SortKey:       entities.SortKey(strings.TrimSpace(params.Get("sort"))),
	}

	// Distance is only recomputed when both halves of the origin are present
	latStr := strings.TrimSpace(params.Get("lat"))
	lngStr := strings.TrimSpace(params.Get("lng"))
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid lng parameter")
			return
		}
		q.Origin = &entities.Coordinates{Lat: lat, Lng: lng}
	}

	if radiusStr := strings.TrimSpace(params.Get("radius")); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid radius parameter")
			return
		}
		q.RadiusMiles = radius
	}

	hospitals, err := h.searcher.Search(r.Context(), q)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    hospitals,
		"count":   len(hospitals),
		"message": "Hospitals retrieved successfully",
	})
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid hospital id")
		return
	}

	hospital, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    hospital,
	})
}

// CreateHospital handles POST /api/hospitals. The record is validated and
// echoed with a generated id; the directory itself is read-only.
func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var body entities.Facility
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.catalog.Draft(r.Context(), body)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Hospital created successfully",
		"data":    hospital,
	})
}

// ListServices handles GET /api/services
func (h *HospitalHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.Services(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    services,
		"count":   len(services),
	})
}
