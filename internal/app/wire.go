package app

import (
	"context"
	"os"

	"cpgate/internal/adapters/filesystem"
	"cpgate/internal/adapters/keyring"
	"cpgate/internal/adapters/process"
	"cpgate/internal/adapters/terminal"
	settings "cpgate/internal/config"
	"cpgate/internal/logging"
	"cpgate/internal/services/config"
	"cpgate/internal/services/gateway"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	if cfg.Settings == nil {
		cfg.Settings = settings.Default()
	}

	// Create logger.
	format := cfg.LogFormat
	if format == "" {
		format = cfg.Settings.Log.Format
	}
	logger := logging.New(logging.Config{
		Level:  logging.LogLevel(cfg.Level().String()),
		Format: format,
		Output: os.Stderr,
	})

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create password reader and keyring-backed secret store.
	passwordReader := terminal.NewAdapter(os.Stdin, os.Stderr)
	secretStore := keyring.New(keyring.DefaultServiceName)

	// Create config services.
	configProvider := config.NewProvider(fs)
	configPath := cfg.ConfigPath
	if configPath == "" {
		var err error
		if configPath, err = configProvider.GetConfigPath(); err != nil {
			return nil, err
		}
	}
	configRepo := config.NewRepository(fs, configPath, logger)

	// Gateway supervisors are shared by every service created by this app.
	supervisors := gateway.NewRegistry(fs, process.NewSpawner(logger), process.NewInspector(logger), logger)

	services := NewServiceFactory(cfg.Settings, supervisors, secretStore, passwordReader, logger)

	logger.DebugContext(ctx, "Initializing cpgate with configuration",
		"logLevel", cfg.Level().String(),
		"verbose", cfg.Verbose,
		"configPath", configPath,
		"gateway", cfg.Settings.Gateway.Address())

	return &App{
		ConfigRepo:     configRepo,
		ConfigProvider: configProvider,
		Services:       services,
		Supervisors:    supervisors,
		FileSystem:     fs,
		PasswordReader: passwordReader,
		SecretStore:    secretStore,
		Logger:         logger,
		Config:         cfg,
	}, nil
}
