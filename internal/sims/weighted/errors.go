package weighted

import "errors"

var (
	// ErrLayerCount indicates a neighbourhood radius below one.
	ErrLayerCount = errors.New("weighted: layer count must be at least 1")
	// ErrLayerWeights indicates a weight table whose length differs from the layer count.
	ErrLayerWeights = errors.New("weighted: layer weights length must equal layer count")
	// ErrIterations indicates a negative iteration count.
	ErrIterations = errors.New("weighted: iterations must not be negative")
)
