package app

import (
	"context"

	"crate/internal/adapters/filesystem"
	cratehttp "crate/internal/adapters/http"
	"crate/internal/adapters/terminal"
	"crate/internal/logging"
	"crate/internal/services/auth"
	"crate/internal/services/catalog"
	"crate/internal/services/config"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	settings := cfg.Settings
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// Create logger.
	logger := logging.NewLogger(cfg.Stderr, cfg.LogLevel)

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create the catalog client over a rate limited HTTP adapter. Product
	// lookups go through a short-lived cache; logins never do.
	httpAdapter := cratehttp.NewAdapter(settings.HTTPTimeout, settings.RateLimit, settings.RateBurst, logger)
	catalogClient := catalog.NewClient(httpAdapter, logger)
	cachedCatalog := catalog.NewCachingCatalog(catalogClient, settings.CacheTTL, uint64(settings.CacheCapacity), logger)

	// Create the interactive prompt layer.
	prompter := terminal.NewAdapter(cfg.Stdin, cfg.Stderr, settings.DefaultUsername)

	// Create config services.
	configProvider := config.NewProvider(fs)
	configWriter := config.NewWriter(fs, logger)

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing crate with configuration",
		"logLevel", cfg.LogLevel.String(),
		"verbose", cfg.Verbose,
		"defaultServer", settings.DefaultURL,
		"remoteServer", settings.RemoteURL)

	return &App{
		Settings:       &settings,
		ConfigProvider: configProvider,
		ConfigWriter:   configWriter,
		Authenticator:  auth.NewController(catalogClient, prompter, logger),
		Catalog:        cachedCatalog,
		FileSystem:     fs,
		Prompter:       prompter,
		Out:            cfg.Stdout,
		Logger:         logger,
		Config:         cfg,
	}, nil
}
