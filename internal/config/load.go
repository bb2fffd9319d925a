package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIURL                 = "GRANTCTL_API_URL"
	EnvToken                  = "GRANTCTL_TOKEN"
	EnvLogLevel               = "GRANTCTL_LOG_LEVEL"
	EnvLogFormat              = "GRANTCTL_LOG_FORMAT"
	EnvTokenFile              = "GRANTCTL_TOKEN_FILE"
	EnvArchiveBucket          = "GRANTCTL_ARCHIVE_BUCKET"
	EnvArchiveRegion          = "GRANTCTL_ARCHIVE_REGION"
	EnvArchiveEndpoint        = "GRANTCTL_ARCHIVE_ENDPOINT"
	EnvArchivePrefix          = "GRANTCTL_ARCHIVE_PREFIX"
	EnvArchiveAccessKeyID     = "GRANTCTL_ARCHIVE_ACCESS_KEY_ID"
	EnvArchiveSecretAccessKey = "GRANTCTL_ARCHIVE_SECRET_ACCESS_KEY"
)

// Load reads the configuration. An empty path means DefaultPath, which may
// be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg, err := LoadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		cfg = &Config{}
	default:
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and decodes a YAML config file without applying
// environment overrides or defaults.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// applyEnv overrides file values with non-empty environment variables.
func (c *Config) applyEnv() {
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvAPIURL, &c.API.URL},
		{EnvToken, &c.API.Token},
		{EnvLogLevel, &c.Log.Level},
		{EnvLogFormat, &c.Log.Format},
		{EnvTokenFile, &c.TokenFile},
		{EnvArchiveBucket, &c.Archive.Bucket},
		{EnvArchiveRegion, &c.Archive.Region},
		{EnvArchiveEndpoint, &c.Archive.Endpoint},
		{EnvArchivePrefix, &c.Archive.Prefix},
		{EnvArchiveAccessKeyID, &c.Archive.AccessKeyID},
		{EnvArchiveSecretAccessKey, &c.Archive.SecretAccessKey},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.env)); v != "" {
			*o.dst = v
		}
	}
}
