package directory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

//go:embed data/facilities.json
var defaultFacilities []byte

// StaticDirectory is an immutable, in-memory FacilityDirectory
type StaticDirectory struct {
	facilities []entities.Facility
	byID       map[int]int
}

// Ensure StaticDirectory implements FacilityDirectory
var _ repositories.FacilityDirectory = (*StaticDirectory)(nil)

// seedRecord exposes fields that Facility keeps off the public wire
type seedRecord struct {
	entities.Facility
	Relevance float64 `json:"relevance"`
}

// LoadDefault loads the directory bundled with the binary
func LoadDefault() (*StaticDirectory, error) {
	return LoadJSON(defaultFacilities)
}

// LoadJSON parses a JSON array of facility records into a directory
func LoadJSON(data []byte) (*StaticDirectory, error) {
	var records []seedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse facility data: %w", err)
	}

	facilities := make([]entities.Facility, len(records))
	for i, rec := range records {
		facilities[i] = rec.Facility
		facilities[i].Relevance = rec.Relevance
	}
	return NewStaticDirectory(facilities)
}

// NewStaticDirectory validates facilities and wraps them in a directory.
// IDs must be unique, ratings within [0,5] and coordinates valid degrees.
func NewStaticDirectory(facilities []entities.Facility) (*StaticDirectory, error) {
	byID := make(map[int]int, len(facilities))
	for i, f := range facilities {
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate facility id %d", f.ID)
		}
		if !(f.Rating >= 0 && f.Rating <= 5) {
			return nil, fmt.Errorf("facility %d: rating %v outside [0,5]", f.ID, f.Rating)
		}
		if !geo.Valid(f.Coordinates) {
			return nil, fmt.Errorf("facility %d: invalid coordinates (%v, %v)", f.ID, f.Coordinates.Lat, f.Coordinates.Lng)
		}
		byID[f.ID] = i
	}

	stored := make([]entities.Facility, len(facilities))
	copy(stored, facilities)

	return &StaticDirectory{facilities: stored, byID: byID}, nil
}

// All returns a copy of the snapshot so callers may reorder it freely
func (d *StaticDirectory) All(ctx context.Context) ([]entities.Facility, error) {
	out := make([]entities.Facility, len(d.facilities))
	copy(out, d.facilities)
	return out, nil
}

// GetByID retrieves a facility by ID
func (d *StaticDirectory) GetByID(ctx context.Context, id int) (*entities.Facility, error) {
	i, ok := d.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("facility %d not found", id))
	}
	f := d.facilities[i]
	return &f, nil
}

// Len returns the number of facilities
func (d *StaticDirectory) Len() int {
	return len(d.facilities)
}
