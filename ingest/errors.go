package ingest

import "errors"

// Sentinel errors returned by ReadEdgeList.
var (
	// ErrEmptyInput indicates the input held no lines other than blank and
	// '#' comment lines.
	ErrEmptyInput = errors.New("ingest: input is empty")

	// ErrMalformedHeader indicates the first non-blank, non-comment line did
	// not parse as an integer. A count that parses but is not positive is
	// reported as graph.ErrBadVertexCount instead.
	ErrMalformedHeader = errors.New("ingest: malformed vertex count header")

	// ErrMalformedEdge indicates an edge line did not parse as "u v w".
	ErrMalformedEdge = errors.New("ingest: malformed edge line")
)
