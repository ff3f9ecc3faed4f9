// Package errors defines all exported error sentinels for the seqlsh library.
//
// This is the single source of truth for error values. Both the top-level
// seqlsh package and internal packages import from here, ensuring errors.Is
// checks work across package boundaries.
//
// Errors come in three kinds. Specific sentinels wrap their kind, so callers
// may match either the exact failure (errors.Is(err, ErrZeroBands)) or the
// whole class (errors.Is(err, ErrInvalidParameter)).
package errors

import (
	"errors"
	"fmt"
)

// Error kinds
var (
	ErrInvalidParameter = errors.New("seqlsh: invalid parameter")
	ErrLengthMismatch   = errors.New("seqlsh: signature length mismatch")
	ErrInvalidState     = errors.New("seqlsh: invalid state")
)

// Sketch errors
var (
	ErrZeroK         = fmt.Errorf("%w: k must be positive", ErrInvalidParameter)
	ErrZeroNumHashes = fmt.Errorf("%w: num hashes must be positive", ErrInvalidParameter)
	ErrSketchDone    = fmt.Errorf("%w: sketch already finished", ErrInvalidState)
)

// Index errors
var (
	ErrZeroBands          = fmt.Errorf("%w: bands must be positive", ErrInvalidParameter)
	ErrZeroRows           = fmt.Errorf("%w: rows must be positive", ErrInvalidParameter)
	ErrMinCollisionsRange = fmt.Errorf("%w: min collisions must be in [1, bands]", ErrInvalidParameter)
	ErrSignatureLength    = fmt.Errorf("%w: signature length does not match bands*rows", ErrLengthMismatch)
	ErrEstimatorLengths   = fmt.Errorf("%w: signatures have different lengths", ErrLengthMismatch)
)

// Coordinator errors
var (
	ErrZeroWorkers = fmt.Errorf("%w: workers must be positive", ErrInvalidParameter)
)
