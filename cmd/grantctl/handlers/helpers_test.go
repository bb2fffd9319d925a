package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grantthrive/grantctl/internal/config"
)

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testEnv starts a fake API and returns a context carrying a config that
// points at it.
func testEnv(t *testing.T, handler http.HandlerFunc) (context.Context, *config.Config) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.API.URL = server.URL
	cfg.TokenFile = filepath.Join(t.TempDir(), "token")
	cfg.Timeouts.RetryMaxAttempts = 0
	cfg.Timeouts.RetryInitialDelay = time.Millisecond

	return withConfig(context.Background(), cfg), cfg
}

// stubInteractive replaces isInteractive for the duration of the test.
func stubInteractive(t *testing.T, interactive bool) {
	t.Helper()
	orig := isInteractive
	isInteractive = func() bool { return interactive }
	t.Cleanup(func() { isInteractive = orig })
}

