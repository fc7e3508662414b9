package driver

import "errors"

var (
	// ErrSize indicates a grid dimension below one.
	ErrSize = errors.New("driver: grid size must be at least 1")
	// ErrFillProbability indicates a fill percentage outside [0, 100].
	ErrFillProbability = errors.New("driver: fill probability must be within [0, 100]")
)
