package ports

import (
	"context"
	"errors"

	"github.com/labops/labstock/internal/domains/geo/domain"
)

// Position lookup failures. Each request is one shot: a failure is
// terminal for that request and is never retried.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrPositionUnknown     = errors.New("position lookup failed")
)

// PositionProvider reports the caller's current position.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}
