package grid

import "errors"

// Sentinel errors for grid loading and validation.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a cell value outside the legal 0..8 demand range.
	ErrInvalidCell = errors.New("grid: cell value must be in 0..8")
	// ErrMalformedRow indicates a row could not be parsed as comma-separated integers.
	ErrMalformedRow = errors.New("grid: row is not a comma-separated list of integers")
)
