package services

import (
	"context"
	"strings"
	"time"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/geo"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

// FacilityService handles directory lookups and mock record creation
type FacilityService struct {
	directory repositories.FacilityDirectory
	now       func() time.Time
}

// NewFacilityService creates a new facility service
func NewFacilityService(directory repositories.FacilityDirectory) *FacilityService {
	return &FacilityService{
		directory: directory,
		now:       time.Now,
	}
}

// GetByID retrieves a facility by ID
func (s *FacilityService) GetByID(ctx context.Context, id int) (*entities.Facility, error) {
	return s.directory.GetByID(ctx, id)
}

// Services returns the distinct service names across the directory
func (s *FacilityService) Services(ctx context.Context) ([]string, error) {
	facilities, err := s.directory.All(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load facility directory", err)
	}
	return DistinctServices(facilities), nil
}

// Draft validates a submitted facility and assigns it an ID. The directory
// is immutable, so the draft is returned to the caller and not stored.
func (s *FacilityService) Draft(ctx context.Context, facility entities.Facility) (*entities.Facility, error) {
	if strings.TrimSpace(facility.Name) == "" {
		return nil, apperrors.NewInvalidArgumentError("name is required")
	}
	if !(facility.Rating >= 0 && facility.Rating <= 5) {
		return nil, apperrors.NewInvalidArgumentError("rating must be between 0 and 5")
	}
	if facility.Coordinates != (entities.Coordinates{}) && !geo.Valid(facility.Coordinates) {
		return nil, apperrors.NewInvalidArgumentError("coordinates are invalid")
	}

	facility.ID = int(s.now().UnixMilli())
	return &facility, nil
}

// DistinctServices returns every service name referenced by facilities, in
// first-seen order of a single left-to-right scan.
func DistinctServices(facilities []entities.Facility) []string {
	seen := make(map[string]struct{})
	services := make([]string, 0)
	for _, f := range facilities {
		for _, s := range f.Services {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			services = append(services, s)
		}
	}
	return services
}
