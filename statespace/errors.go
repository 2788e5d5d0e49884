package statespace

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrUnknownKind is returned when a state space kind has not been registered.
var ErrUnknownKind = errors.New("unknown state space kind")

func newOutOfBoundsError(name string, x State, bounds r2.Rect) error {
	return errors.Errorf("%s state %v out of bounds (x: [%v,%v], y: [%v,%v])",
		name, x, bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi)
}

func newInObstacleError(name string, x State) error {
	return errors.Errorf("%s state %v is in an obstacle", name, x)
}

func newDimensionError(name string, x []float64, dim int) error {
	return errors.Errorf("%s state %v must have %d components, got %d", name, x, dim, len(x))
}

func newNonPositiveError(name string, value float64) error {
	return errors.Errorf("%s must be positive, got %v", name, value)
}

func newEmptyBoundsError(bounds r2.Rect) error {
	return errors.Errorf("bounds (x: [%v,%v], y: [%v,%v]) are empty", bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi)
}
