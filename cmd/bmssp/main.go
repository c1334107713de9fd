// Command bmssp reads a graph from an edge-list file and prints the
// shortest distance from a source vertex to every other vertex.
//
// Usage:
//
//	bmssp [--source N] [--no-log] <graph-file>
//
// The graph file format is described in package ingest: a vertex count on
// the first line, followed by "u v w" edge triples.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/bmssp"
	"github.com/katalvlaran/bmssp/ingest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	fs := flag.NewFlagSet("bmssp", flag.ContinueOnError)
	source := fs.Int("source", 0, "source vertex index")
	noLog := fs.Bool("no-log", false, "disable diagnostic logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bmssp [--source N] [--no-log] <graph-file>")
		return 2
	}

	logger := log.New(os.Stderr, "bmssp: ", log.LstdFlags)
	if *noLog {
		logger = nil
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	g, err := ingest.ReadEdgeList(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var opts []bmssp.Option
	if logger != nil {
		opts = append(opts, bmssp.WithLogger(logger))
	}

	dist, err := bmssp.SSSP(g, *source, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for v, d := range dist {
		fmt.Fprintf(out, "%d,%g\n", v, d)
	}

	return 0
}
