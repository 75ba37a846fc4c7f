package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

func TestDistinctServices_FirstSeenOrder(t *testing.T) {
	got := services.DistinctServices(fourFacilities())
	assert.Equal(t, []string{
		"Emergency Care", "Cardiology", "Orthopedics", "Pediatrics", "Radiology",
		"Maternity", "Surgery", "Oncology", "Neurology",
		"Family Medicine", "Dermatology", "Physical Therapy", "Lab Services",
		"Urgent Care", "X-Ray",
	}, got)
}

func TestDistinctServices_Empty(t *testing.T) {
	got := services.DistinctServices(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFacilityService_GetByID(t *testing.T) {
	dir := new(MockFacilityDirectory)
	f := stMarys()
	dir.On("GetByID", mock.Anything, 2).Return(&f, nil)
	dir.On("GetByID", mock.Anything, 99).Return(nil, apperrors.NewNotFoundError("facility 99 not found"))

	svc := services.NewFacilityService(dir)

	got, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "St. Mary's Medical Center", got.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.True(t, apperrors.IsNotFound(err))
	dir.AssertExpectations(t)
}

func TestFacilityService_Services(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(twoFacilities(), nil)

	got, err := services.NewFacilityService(dir).Services(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 9)
	assert.Equal(t, "Emergency Care", got[0])
}

func TestFacilityService_Draft(t *testing.T) {
	svc := services.NewFacilityService(new(MockFacilityDirectory))

	got, err := svc.Draft(context.Background(), entities.Facility{
		Name:        "New Clinic",
		Rating:      4,
		Coordinates: entities.Coordinates{Lat: 40.7, Lng: -74},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Clinic", got.Name)
	assert.Positive(t, got.ID)
}

func TestFacilityService_DraftValidation(t *testing.T) {
	svc := services.NewFacilityService(new(MockFacilityDirectory))

	tests := []struct {
		name     string
		facility entities.Facility
	}{
		{"missing name", entities.Facility{Name: "  "}},
		{"rating too high", entities.Facility{Name: "x", Rating: 5.5}},
		{"negative rating", entities.Facility{Name: "x", Rating: -1}},
		{"NaN rating", entities.Facility{Name: "x", Rating: math.NaN()}},
		{"bad coordinates", entities.Facility{Name: "x", Coordinates: entities.Coordinates{Lat: 91, Lng: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Draft(context.Background(), tt.facility)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidArgument(err))
		})
	}
}
