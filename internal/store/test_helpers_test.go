package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore opens a store in a temp dir with the schema in place.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return s
}
