package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Defaults.
const (
	DefaultAPIURL    = "http://localhost:5000/api"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultRegion    = "us-east-1"
	DefaultPrefix    = "drafts/"
	appName          = "grantctl"
)

// Config is the complete grantctl configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Archive ArchiveConfig `mapstructure:"archive"`

	// TokenFile is where the bearer token from `grantctl login` is kept.
	TokenFile string `mapstructure:"token_file" validate:"required"`

	Timeouts *Timeouts `mapstructure:"-" validate:"required"`
}

// APIConfig points the client at a GrantThrive backend.
type APIConfig struct {
	URL       string `mapstructure:"url" validate:"required,http_url"`
	Token     string `mapstructure:"token"`
	UserAgent string `mapstructure:"user_agent"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// ArchiveConfig locates the S3-compatible bucket used by `grantctl archive`.
// An empty Bucket disables archiving.
type ArchiveConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region" validate:"required_with=Bucket"`
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,http_url"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id" validate:"required_with=SecretAccessKey"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
}

// Enabled reports whether an archive bucket is configured.
func (a ArchiveConfig) Enabled() bool { return a.Bucket != "" }

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultTokenFile returns the token file location under the XDG state home.
func DefaultTokenFile() string {
	return filepath.Join(xdg.StateHome, appName, "token")
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = appName
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Archive.Bucket != "" && c.Archive.Region == "" {
		c.Archive.Region = DefaultRegion
	}
	if c.Archive.Prefix == "" {
		c.Archive.Prefix = DefaultPrefix
	}
	if c.TokenFile == "" {
		c.TokenFile = DefaultTokenFile()
	}
	if c.Timeouts == nil {
		c.Timeouts = LoadTimeouts()
	}
}
