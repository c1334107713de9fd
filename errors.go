package bmssp

import "errors"

// Sentinel errors returned by SSSP.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to SSSP.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex is not in [0, n).
	ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")
)
