package testing

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/grantthrive/grantctl/internal/grant"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// WriteDraftFile writes d to draft.yaml in a temporary directory and returns
// its path.
func WriteDraftFile(t *testing.T, d grant.Draft) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.yaml")
	if err := grant.WriteFile(d, path); err != nil {
		t.Fatalf("write draft: %v", err)
	}
	return path
}
