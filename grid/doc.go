// Package grid loads and validates the rectangular island grid.
//
// A Grid is immutable once built: New deep-copies the cell matrix and
// precomputes the ordered Island list, mirroring the deep-copy-on-
// construct discipline used throughout this module's other data types.
package grid
