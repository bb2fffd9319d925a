package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantthrive/grantctl/internal/config"
	"github.com/grantthrive/grantctl/internal/metrics"
)

func TestSetup(t *testing.T) {
	origLoad := loadConfig
	defer func() { loadConfig = origLoad }()

	cfg := config.Default()
	var gotPath string
	loadConfig = func(path string) (*config.Config, error) {
		gotPath = path
		return cfg, nil
	}

	ctx, flush, err := Setup(context.Background(), GlobalOptions{
		ConfigPath: "custom.yaml",
		LogLevel:   "debug",
		LogFormat:  "json",
	})
	require.NoError(t, err)
	defer flush()

	assert.Equal(t, "custom.yaml", gotPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	stored, err := configFrom(ctx)
	require.NoError(t, err)
	assert.Same(t, cfg, stored)

	_, err = logr.FromContext(ctx)
	assert.NoError(t, err)
}

func TestSetupErrors(t *testing.T) {
	origLoad := loadConfig
	defer func() { loadConfig = origLoad }()

	loadConfig = func(string) (*config.Config, error) { return nil, errors.New("bad yaml") }
	_, _, err := Setup(context.Background(), GlobalOptions{})
	assert.EqualError(t, err, "bad yaml")

	loadConfig = func(string) (*config.Config, error) { return config.Default(), nil }
	_, _, err = Setup(context.Background(), GlobalOptions{LogFormat: "xml"})
	assert.Error(t, err)
}

func TestFinish(t *testing.T) {
	assert.NoError(t, Finish(GlobalOptions{}))

	metrics.RecordValidationFailure(1)
	path := filepath.Join(t.TempDir(), "grantctl.prom")
	require.NoError(t, Finish(GlobalOptions{MetricsFile: path}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grantctl_wizard_validation_failures_total")
}
