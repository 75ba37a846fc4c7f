package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

// Mocks

type MockFacilityDirectory struct {
	mock.Mock
}

func (m *MockFacilityDirectory) All(ctx context.Context) ([]entities.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Facility), args.Error(1)
}

func (m *MockFacilityDirectory) GetByID(ctx context.Context, id int) (*entities.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Facility), args.Error(1)
}

type MockFacilitySearchIndex struct {
	mock.Mock
}

func (m *MockFacilitySearchIndex) InitSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFacilitySearchIndex) Index(ctx context.Context, facility *entities.Facility) error {
	return m.Called(ctx, facility).Error(0)
}

// Fixtures

func cityGeneral() entities.Facility {
	return entities.Facility{
		ID:          1,
		Name:        "City General Hospital",
		Address:     "123 Main Street, Downtown",
		Postal:      entities.PostalInfo{City: "New York", Region: "NY", PostalCode: "10001", Country: "United States"},
		Distance:    0.8,
		Rating:      4.5,
		Emergency:   true,
		Coordinates: entities.Coordinates{Lat: 40.7128, Lng: -74.006},
		Services:    []string{"Emergency Care", "Cardiology", "Orthopedics", "Pediatrics", "Radiology"},
		Relevance:   0.99,
	}
}

func stMarys() entities.Facility {
	return entities.Facility{
		ID:          2,
		Name:        "St. Mary's Medical Center",
		Address:     "456 Oak Avenue, Midtown",
		Postal:      entities.PostalInfo{City: "New York", Region: "NY", PostalCode: "10002", Country: "United States"},
		Distance:    1.2,
		Rating:      4.3,
		Emergency:   true,
		Coordinates: entities.Coordinates{Lat: 40.7589, Lng: -73.9851},
		Services:    []string{"Emergency Care", "Maternity", "Surgery", "Oncology", "Neurology"},
		Relevance:   0.95,
	}
}

func riverside() entities.Facility {
	return entities.Facility{
		ID:          3,
		Name:        "Riverside Clinic",
		Address:     "789 River Road, Eastside",
		Postal:      entities.PostalInfo{City: "New York", Region: "NY", PostalCode: "10003", Country: "United States"},
		Distance:    2.1,
		Rating:      4.1,
		Coordinates: entities.Coordinates{Lat: 40.7505, Lng: -73.9934},
		Services:    []string{"Family Medicine", "Dermatology", "Physical Therapy", "Lab Services"},
		Relevance:   0.9,
	}
}

func metroEmergency() entities.Facility {
	return entities.Facility{
		ID:          4,
		Name:        "Metro Emergency Center",
		Address:     "321 Broadway, Central",
		Postal:      entities.PostalInfo{City: "New York", Region: "NY", PostalCode: "10007", Country: "United States"},
		Distance:    1.5,
		Rating:      4.7,
		Emergency:   true,
		Coordinates: entities.Coordinates{Lat: 40.7614, Lng: -73.9776},
		Services:    []string{"Emergency Care", "Urgent Care", "X-Ray", "Lab Services"},
		Relevance:   0.88,
	}
}

func twoFacilities() []entities.Facility {
	return []entities.Facility{cityGeneral(), stMarys()}
}

func fourFacilities() []entities.Facility {
	return []entities.Facility{cityGeneral(), stMarys(), riverside(), metroEmergency()}
}

func names(facilities []entities.Facility) []string {
	out := make([]string, len(facilities))
	for i, f := range facilities {
		out[i] = f.Name
	}
	return out
}
