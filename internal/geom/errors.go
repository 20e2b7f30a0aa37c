package geom

import (
	"errors"
	"fmt"
)

// Domain errors for geometry operations.
var (
	// ErrInvalidUnit indicates an angle unit outside Turns, Radians, Degrees and Gradians.
	ErrInvalidUnit = errors.New("geom: invalid angle unit")

	// ErrSingularMatrix indicates an inverse was requested for a matrix with determinant 0.
	ErrSingularMatrix = errors.New("geom: singular matrix")
)

// InvalidUnitError reports the offending unit. Name is set when the unit came
// from text.
type InvalidUnitError struct {
	Unit Unit
	Name string
}

func (e *InvalidUnitError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q", ErrInvalidUnit, e.Name)
	}
	return fmt.Sprintf("%s %d", ErrInvalidUnit, int(e.Unit))
}

func (e *InvalidUnitError) Unwrap() error {
	return ErrInvalidUnit
}
