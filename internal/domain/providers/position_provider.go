package providers

import (
	"context"
	"fmt"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
)

// PositionProvider defines the interface for acquiring the user's current position
type PositionProvider interface {
	// CurrentPosition blocks until a reading is available or ctx is done
	CurrentPosition(ctx context.Context) (*entities.Coordinates, error)
}

// PositionError reports a classified failure from a position source
type PositionError struct {
	Kind entities.LocationErrorKind
}

// NewPositionError creates a new position error of the given kind
func NewPositionError(kind entities.LocationErrorKind) *PositionError {
	return &PositionError{Kind: kind}
}

// Error implements the error interface
func (e *PositionError) Error() string {
	return fmt.Sprintf("position error (%s): %s", e.Kind, e.Kind.Message())
}
