package kynex

import "errors"

// Errors returned by validation.
var (
	// ErrNonFinite is returned when a value that must be finite is NaN or
	// infinite.
	ErrNonFinite = errors.New("kynex: non-finite value")

	// ErrInvalidMaterial is returned when a material coefficient is out of
	// range.
	ErrInvalidMaterial = errors.New("kynex: invalid material")
)
