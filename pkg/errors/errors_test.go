package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewExternalError("typesense unavailable", cause)

	assert.Equal(t, "EXTERNAL: typesense unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestTypeOf_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewNotFoundError("facility 9 not found"))

	assert.Equal(t, ErrorTypeNotFound, TypeOf(err))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvalidArgument(err))
}

func TestTypeOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, ErrorTypeInternal, TypeOf(fmt.Errorf("boom")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsInvalidArgument(nil))
}

func TestIsInvalidArgument(t *testing.T) {
	assert.True(t, IsInvalidArgument(NewInvalidArgumentError("query is required")))
}
