package repositories

import (
	"context"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

// FacilityDirectory is the read-only collection of known facilities
type FacilityDirectory interface {
	// All returns the directory snapshot in its load order
	All(ctx context.Context) ([]entities.Facility, error)

	// GetByID retrieves a facility by ID, or a NOT_FOUND error
	GetByID(ctx context.Context, id int) (*entities.Facility, error)
}

// FacilitySearchIndex publishes facilities to an external search engine (e.g. Typesense)
type FacilitySearchIndex interface {
	// InitSchema ensures the target collection exists
	InitSchema(ctx context.Context) error

	// Index upserts a facility document
	Index(ctx context.Context, facility *entities.Facility) error
}
