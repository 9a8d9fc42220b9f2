package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"crate/internal/config"
	"crate/internal/domain"
	"crate/internal/services/auth"
	configsvc "crate/internal/services/config"
)

// App contains all application dependencies.
type App struct {
	// Core configuration dependencies (always needed)
	Settings       *config.Settings
	ConfigProvider domain.ConfigProvider
	ConfigWriter   *configsvc.Writer

	// Catalog access
	Authenticator *auth.Controller
	Catalog       domain.Catalog

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	Prompter domain.Prompter
	Out      io.Writer

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel slog.Level
	Verbose  bool
	Settings config.Settings

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithSettings replaces the built-in client settings.
func WithSettings(settings config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithIO sets the streams used for prompts, command output and logs.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(cfg *Config) {
		cfg.Stdin = stdin
		cfg.Stdout = stdout
		cfg.Stderr = stderr
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Verbose:  false,
		Settings: config.Defaults(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
