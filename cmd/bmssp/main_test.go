package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGraphFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun_SuccessPrintsDistances(t *testing.T) {
	path := writeGraphFile(t, "3\n0 1 1\n1 2 2\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	code := run([]string{"--no-log", path}, w)
	w.Close()

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	got := string(buf[:n])
	if !strings.Contains(got, "0,0") || !strings.Contains(got, "2,3") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_MissingFileExitsNonZero(t *testing.T) {
	code := run([]string{"--no-log", "/no/such/file"}, os.Stdout)
	if code == 0 {
		t.Fatal("expected a non-zero exit code for a missing file")
	}
}

func TestRun_BadArgsExitsNonZero(t *testing.T) {
	code := run([]string{}, os.Stdout)
	if code == 0 {
		t.Fatal("expected a non-zero exit code with no file argument")
	}
}
