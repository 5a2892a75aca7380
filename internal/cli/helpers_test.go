package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// runCLI executes the CLI and returns the exit code with captured output.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	code = Execute(context.Background(), args, out, errOut)
	return code, out.String(), errOut.String()
}

// tempDB returns a database path in a fresh temp dir. The file does not exist.
func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todo.db")
}

// assertGolden compares output against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func assertGolden(t *testing.T, name, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}
