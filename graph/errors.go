package graph

import "errors"

// Sentinel errors returned while building a Graph.
var (
	// ErrBadVertexCount indicates a non-positive vertex count was passed to NewBuilder.
	ErrBadVertexCount = errors.New("graph: vertex count must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates an edge with a negative weight was added.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)
