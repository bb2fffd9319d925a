// Package handlers implements the business logic of the grantctl commands.
//
// Handlers print human readable output to stdout and log to stderr. Clients
// are created through factory variables that tests replace.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/grantthrive/grantctl/internal/api"
	"github.com/grantthrive/grantctl/internal/archive"
	"github.com/grantthrive/grantctl/internal/auth"
	"github.com/grantthrive/grantctl/internal/config"
	"github.com/grantthrive/grantctl/internal/logging"
	"github.com/grantthrive/grantctl/internal/metrics"
	"github.com/grantthrive/grantctl/internal/util/retry"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	MetricsFile string
}

type configKey struct{}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads the configuration file and environment.
	loadConfig = config.Load

	// newLogger builds the process logger.
	newLogger = logging.New

	// newAPIClient creates the GrantThrive API client.
	newAPIClient = func(cfg *config.Config, log logr.Logger) *api.Client {
		return api.NewClient(cfg.API.URL,
			api.WithRequestTimeout(cfg.Timeouts.Request),
			api.WithTokenStore(auth.NewFileStore(cfg.TokenFile, cfg.API.Token)),
			api.WithUserAgent(cfg.API.UserAgent),
			api.WithRetry(
				retry.WithMaxRetries(cfg.Timeouts.RetryMaxAttempts),
				retry.WithInitialDelay(cfg.Timeouts.RetryInitialDelay),
			),
			api.WithLogger(log),
		)
	}

	// newArchiveClient creates the draft archive client.
	newArchiveClient = func(ctx context.Context, cfg *config.Config) (DraftArchive, error) {
		return archive.NewClient(ctx, cfg.Archive)
	}

	// isInteractive reports whether stdin and stdout are terminals.
	isInteractive = isInteractiveTTY

	// writeMetrics writes the metrics textfile.
	writeMetrics = metrics.WriteTextfile
)

// Setup loads the configuration and builds the logger. Both are stored in the
// returned context. The returned func flushes the logger.
func Setup(ctx context.Context, opts GlobalOptions) (context.Context, func(), error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return ctx, func() {}, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}

	log, flush, err := newLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return ctx, func() {}, err
	}
	log.V(1).Info("Loaded configuration", "apiURL", cfg.API.URL, "tokenFile", cfg.TokenFile)

	ctx = logr.NewContext(ctx, log)
	return withConfig(ctx, cfg), flush, nil
}

// Finish writes the metrics textfile when one was requested.
func Finish(opts GlobalOptions) error {
	if opts.MetricsFile == "" {
		return nil
	}
	if err := writeMetrics(opts.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// configFrom returns the configuration stored by Setup, loading the default
// configuration when there is none.
func configFrom(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg, nil
	}
	return loadConfig("")
}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// client returns the API client and logger for ctx.
func client(ctx context.Context) (*api.Client, *config.Config, error) {
	cfg, err := configFrom(ctx)
	if err != nil {
		return nil, nil, err
	}
	return newAPIClient(cfg, logr.FromContextOrDiscard(ctx)), cfg, nil
}

func isInteractiveTTY() bool {
	return (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
		(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}
