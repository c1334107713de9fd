package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bmssp/graph"
)

// ReadEdgeList parses the edge-list text format from r and builds a
// *graph.Graph from it.
//
// Format: the first non-blank line is an integer n, the vertex count.
// Every following non-blank line is "u v w", a directed edge from u to v
// with weight w. Lines starting with '#' are treated as comments and
// skipped, matching the convention of most plain-text graph fixtures.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	n, ok, err := nextHeader(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
		}

		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		w, errW := strconv.ParseFloat(fields[2], 64)
		if errU != nil || errV != nil || errW != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
		}

		if err := b.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	return b.Build(), nil
}

// nextHeader scans past blank/comment lines to find the vertex-count line.
func nextHeader(scanner *bufio.Scanner) (n int, ok bool, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		n, err = strconv.Atoi(line)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}

		return n, true, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, false, fmt.Errorf("ingest: %w", err)
	}

	return 0, false, nil
}
