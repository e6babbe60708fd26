package raster

import (
	"fmt"

	"github.com/pkg/errors"
)

// Painting outside the grid can only happen if the geometry handed to us is
// wrong, so there's nothing sensible to recover to. Rather than threading an
// error through every column and span, we panic, and the public API (or the
// program) decides how to die.

// CoordinateError reports a cell outside the grid.
type CoordinateError struct {
	X, Y float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinates (%g, %g)", e.X, e.Y)
}

// Panic with a CoordinateError carrying a stack trace.
func fatalCoordinates(x, y float64) {
	panic(errors.WithStack(&CoordinateError{X: x, Y: y}))
}

// Convert a recovered CoordinateError panic back into an error. Anything else
// is a real bug, so it keeps panicking.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		if _, ok := errors.Cause(err).(*CoordinateError); ok {
			return err
		}
	}
	panic(r)
}
