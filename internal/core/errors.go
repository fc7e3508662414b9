package core

import "errors"

var (
	// ErrOutOfRange indicates a cell coordinate outside [0, N).
	ErrOutOfRange = errors.New("core: cell index out of range")
	// ErrDimension indicates a grid dimension below one or a mismatch between grids.
	ErrDimension = errors.New("core: invalid grid dimension")
	// ErrEmptyGrid indicates textual input without any rows.
	ErrEmptyGrid = errors.New("core: grid must have at least one row")
	// ErrNotSquare indicates textual input whose rows do not form an NxN matrix.
	ErrNotSquare = errors.New("core: grid rows must form a square")
	// ErrBadCell indicates a character other than '#' or '.' in textual input.
	ErrBadCell = errors.New("core: unknown cell character")
	// ErrNilSource indicates a missing random source.
	ErrNilSource = errors.New("core: random source is nil")
)
