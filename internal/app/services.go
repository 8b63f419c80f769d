package app

import (
	"log/slog"

	"cpgate/internal/adapters/browser"
	"cpgate/internal/adapters/http"
	"cpgate/internal/config"
	"cpgate/internal/domain"
	"cpgate/internal/migrations"
	"cpgate/internal/services/auth"
	"cpgate/internal/services/credentials"
	"cpgate/internal/services/gateway"
	"cpgate/internal/services/monitor"
	"cpgate/internal/services/portal"
	"cpgate/internal/services/session"
)

// ServiceFactory creates gateway and session services from the loaded configuration.
type ServiceFactory struct {
	settings       *config.Config
	supervisors    *gateway.Registry
	secretStore    domain.SecretStore
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewServiceFactory creates a new service factory.
func NewServiceFactory(
	settings *config.Config,
	supervisors *gateway.Registry,
	secretStore domain.SecretStore,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *ServiceFactory {
	return &ServiceFactory{
		settings:       settings,
		supervisors:    supervisors,
		secretStore:    secretStore,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// Settings returns the configuration the factory was built with.
func (f *ServiceFactory) Settings() *config.Config {
	return f.settings
}

// Supervisor returns the shared supervisor for the configured gateway.
func (f *ServiceFactory) Supervisor() *gateway.Supervisor {
	g := f.settings.Gateway
	return f.supervisors.For(gateway.Config{
		Host: g.Host,
		Port: g.Port,
		Launch: gateway.LaunchConfig{
			Executable: g.Executable,
			InstallDir: g.InstallDir,
			Args:       g.Args,
		},
		AutoLaunch:   g.AutoLaunch,
		ProbeTimeout: g.ProbeTimeout,
		StartTimeout: g.StartTimeout,
		PollInterval: g.PollInterval,
		StopTimeout:  g.StopTimeout,
	})
}

// SessionHandle creates a REST session against the configured gateway.
// The gateway serves a self-signed certificate, so verification is off.
func (f *ServiceFactory) SessionHandle(opts ...session.Option) *session.Handle {
	s := f.settings.Session
	adapter := http.NewAdapter(
		f.settings.Gateway.APIBaseURL(),
		s.RequestTimeout,
		true,
		f.logger,
		http.WithRetryCount(s.RetryCount),
		http.WithRateLimit(s.RateLimit, s.RateBurst),
	)

	opts = append([]session.Option{session.WithKeepAliveInterval(s.KeepAliveInterval)}, opts...)
	return session.NewHandle(adapter, f.logger, opts...)
}

// Credentials returns the credential chain for the configured username.
func (f *ServiceFactory) Credentials() *credentials.Chain {
	return credentials.NewChain(f.settings.Auth.Username, f.secretStore, f.passwordReader, f.logger)
}

// AuthenticatorFactory returns a constructor for the configured login method.
func (f *ServiceFactory) AuthenticatorFactory(client domain.SessionClient) portal.AuthenticatorFactory {
	a := f.settings.Auth
	if a.Method == config.AuthMethodSSO {
		return func() domain.Authenticator {
			return auth.NewSSOAuthenticator(client, 0, f.logger)
		}
	}

	cfg := auth.DefaultConfig(f.settings.Gateway.BaseURL())
	cfg.LoginPath = a.LoginPath
	cfg.ChromePath = a.ChromePath
	cfg.SettleDelay = a.SettleDelay
	cfg.Alert = a.Alert
	if a.PollInterval > 0 {
		cfg.PollInterval = a.PollInterval
	}

	launcher := browser.NewLauncher(f.logger)
	return func() domain.Authenticator {
		return auth.NewInteractiveAuthenticator(cfg, launcher, f.logger)
	}
}

// Connection wires a connection over handle.
func (f *ServiceFactory) Connection(handle *session.Handle) *portal.Connection {
	a := f.settings.Auth
	return portal.NewConnection(
		f.Supervisor(),
		handle,
		f.Credentials(),
		f.AuthenticatorFactory(handle),
		portal.Config{
			VerifyDelay: a.VerifyDelay,
			LoginOptions: domain.LoginOptions{
				Headless:         a.Headless,
				TwoFactorTimeout: a.TwoFactorTimeout,
				KeepSessionAlive: a.KeepSessionAlive,
			},
		},
		f.logger,
	)
}

// Monitor creates a gateway monitor. checker may be nil to skip session checks.
func (f *ServiceFactory) Monitor(checker monitor.StatusChecker, opts ...monitor.Option) *monitor.Monitor {
	m := f.settings.Monitor
	if checker != nil && m.CheckSession {
		opts = append([]monitor.Option{monitor.WithSessionCheck(checker)}, opts...)
	}
	return monitor.New(f.Supervisor(), monitor.Config{
		Interval:   m.Interval,
		ErrorPause: m.ErrorPause,
		Settings:   MonitorSettings(f.settings),
	}, f.logger, opts...)
}

// MonitorSettings extracts the hot-reloadable monitor settings.
func MonitorSettings(settings *config.Config) monitor.Settings {
	return monitor.Settings{
		AutoReconnect:  settings.Gateway.AutoReconnect,
		ReconnectDelay: settings.Gateway.ReconnectDelay(),
	}
}

// Migrator creates the legacy secrets importer.
func (f *ServiceFactory) Migrator(fs domain.FileSystemAdapter, repo domain.ConfigRepository) *migrations.Migrator {
	return migrations.NewMigrator(fs, repo, f.secretStore, f.logger)
}
