package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	tsclient "github.com/zatekoja/hospital-locator/backend/internal/infrastructure/clients/typesense"
)

// CollectionName is the Typesense collection holding the facility directory
const CollectionName = "hospitals"

// TypesenseAdapter publishes facilities to a Typesense collection
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements FacilitySearchIndex
var _ repositories.FacilitySearchIndex = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// CollectionSchema describes the hospitals collection
func CollectionSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: CollectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "address", Type: "string"},
			{Name: "place_name", Type: "string"},
			{Name: "services", Type: "string[]", Facet: pointer.True()},
			{Name: "location", Type: "geopoint"},
			{Name: "rating", Type: "float", Facet: pointer.True()},
			{Name: "emergency", Type: "bool", Facet: pointer.True()},
			{Name: "relevance", Type: "float"},
		},
		DefaultSortingField: pointer.String("rating"),
	}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(CollectionName).Retrieve(ctx); err == nil {
		return nil
	}

	if _, err := a.client.Client().Collections().Create(ctx, CollectionSchema()); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts a facility document
func (a *TypesenseAdapter) Index(ctx context.Context, facility *entities.Facility) error {
	_, err := a.client.Client().Collection(CollectionName).Documents().Upsert(ctx, FacilityDocument(facility))
	if err != nil {
		return fmt.Errorf("failed to index facility %d: %w", facility.ID, err)
	}
	return nil
}

// FacilityDocument maps a facility onto the collection's document shape.
// Typesense geopoints are [lat, lng].
func FacilityDocument(f *entities.Facility) map[string]interface{} {
	services := f.Services
	if services == nil {
		services = []string{}
	}
	return map[string]interface{}{
		"id":         strconv.Itoa(f.ID),
		"name":       f.Name,
		"address":    f.Address,
		"place_name": f.PlaceName(),
		"services":   services,
		"location":   []float64{f.Coordinates.Lat, f.Coordinates.Lng},
		"rating":     f.Rating,
		"emergency":  f.Emergency,
		"relevance":  f.Relevance,
	}
}

// Drop deletes the collection so the next InitSchema recreates it
func (a *TypesenseAdapter) Drop(ctx context.Context) error {
	if _, err := a.client.Client().Collection(CollectionName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete typesense collection: %w", err)
	}
	return nil
}
