package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

func TestMatchFacilities_GeneralRanksCityGeneralFirst(t *testing.T) {
	got := services.MatchFacilities(twoFacilities(), "general")
	require.NotEmpty(t, got)
	assert.Equal(t, "City General Hospital", got[0].Name)
}

func TestMatchFacilities_AddressMatchOrderedByRelevance(t *testing.T) {
	// Listed lowest relevance first to show ordering is by relevance, not input
	input := []entities.Facility{metroEmergency(), riverside(), stMarys(), cityGeneral()}

	got := services.MatchFacilities(input, "new york")
	assert.Equal(t, []string{
		"City General Hospital",
		"St. Mary's Medical Center",
		"Riverside Clinic",
		"Metro Emergency Center",
	}, names(got))
}

func TestMatchFacilities_StreetAndCase(t *testing.T) {
	got := services.MatchFacilities(fourFacilities(), "OAK AVENUE")
	assert.Equal(t, []string{"St. Mary's Medical Center"}, names(got))

	assert.Empty(t, services.MatchFacilities(fourFacilities(), "boston"))
}

func TestGeocodingService_Match(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(twoFacilities(), nil)

	svc := services.NewGeocodingService(dir, nil)
	features, err := svc.Match(context.Background(), "general", services.MatchOptions{})
	require.NoError(t, err)
	require.Len(t, features, 1)

	f := features[0]
	assert.Equal(t, "City General Hospital", f.Text)
	assert.Equal(t, entities.LngLat{-74.006, 40.7128}, f.Center)
	assert.Equal(t, 0.99, f.Relevance)
	assert.Equal(t, 1, f.FacilityID)
}

func TestGeocodingService_MatchLimit(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(fourFacilities(), nil)

	svc := services.NewGeocodingService(dir, nil)
	features, err := svc.Match(context.Background(), "new york", services.MatchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "City General Hospital", features[0].Text)
	assert.Equal(t, "St. Mary's Medical Center", features[1].Text)
}

func TestGeocodingService_MatchTypes(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(twoFacilities(), nil)
	svc := services.NewGeocodingService(dir, nil)

	features, err := svc.Match(context.Background(), "general", services.MatchOptions{Types: []string{"address", "place"}})
	require.NoError(t, err)
	assert.Empty(t, features)
	dir.AssertNotCalled(t, "All", mock.Anything)

	features, err = svc.Match(context.Background(), "general", services.MatchOptions{Types: []string{"POI"}})
	require.NoError(t, err)
	assert.Len(t, features, 1)
}

func TestGeocodingService_EmptyQuery(t *testing.T) {
	svc := services.NewGeocodingService(new(MockFacilityDirectory), nil)

	_, err := svc.Match(context.Background(), "   ", services.MatchOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestGeocodingService_DirectoryError(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(nil, errors.New("boom"))

	svc := services.NewGeocodingService(dir, nil)
	_, err := svc.Match(context.Background(), "general", services.MatchOptions{})
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
}
