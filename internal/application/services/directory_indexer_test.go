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
)

func TestDirectoryIndexer_IndexAll(t *testing.T) {
	dir := new(MockFacilityDirectory)
	dir.On("All", mock.Anything).Return(fourFacilities(), nil)

	index := new(MockFacilitySearchIndex)
	index.On("InitSchema", mock.Anything).Return(nil)
	index.On("Index", mock.Anything, mock.MatchedBy(func(f *entities.Facility) bool { return f.ID == 3 })).
		Return(errors.New("rejected"))
	index.On("Index", mock.Anything, mock.Anything).Return(nil)

	n, err := services.NewDirectoryIndexer(dir, index).IndexAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	index.AssertNumberOfCalls(t, "Index", 4)
}

func TestDirectoryIndexer_SchemaFailure(t *testing.T) {
	dir := new(MockFacilityDirectory)
	index := new(MockFacilitySearchIndex)
	index.On("InitSchema", mock.Anything).Return(errors.New("unreachable"))

	_, err := services.NewDirectoryIndexer(dir, index).IndexAll(context.Background())
	require.Error(t, err)
	dir.AssertNotCalled(t, "All", mock.Anything)
	index.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
}
