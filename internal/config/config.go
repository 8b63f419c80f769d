// Package config defines the typed cpgate configuration, its defaults and validation.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cpgate/internal/errors"
)

// Authentication methods.
const (
	AuthMethodBrowser = "browser"
	AuthMethodSSO     = "sso"
)

// gatewayMainClass is the entry point of the Client Portal Gateway distribution.
const gatewayMainClass = "ibgroup.web.core.clientportal.gw.GatewayStart"

// Config represents the complete cpgate configuration.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway" yaml:"gateway"`
	Auth    AuthConfig    `mapstructure:"auth"    yaml:"auth"`
	Session SessionConfig `mapstructure:"session" yaml:"session"`
	Monitor MonitorConfig `mapstructure:"monitor" yaml:"monitor"`
	Log     LogConfig     `mapstructure:"log"     yaml:"log"`
}

// GatewayConfig describes where the gateway listens and how to launch it.
type GatewayConfig struct {
	Host                  string        `mapstructure:"host"                    yaml:"host"`
	Port                  int           `mapstructure:"port"                    yaml:"port"`
	Executable            string        `mapstructure:"executable"              yaml:"executable"`
	InstallDir            string        `mapstructure:"install_dir"             yaml:"install_dir"`
	Args                  []string      `mapstructure:"args"                    yaml:"args"`
	AutoLaunch            bool          `mapstructure:"auto_launch"             yaml:"auto_launch"`
	AutoReconnect         bool          `mapstructure:"auto_reconnect"          yaml:"auto_reconnect"`
	ReconnectDelaySeconds int           `mapstructure:"reconnect_delay_seconds" yaml:"reconnect_delay_seconds"`
	StartTimeout          time.Duration `mapstructure:"start_timeout"           yaml:"start_timeout"`
	ProbeTimeout          time.Duration `mapstructure:"probe_timeout"           yaml:"probe_timeout"`
	PollInterval          time.Duration `mapstructure:"poll_interval"           yaml:"poll_interval"`
	StopTimeout           time.Duration `mapstructure:"stop_timeout"            yaml:"stop_timeout"`
}

// AuthConfig controls how a session is established.
type AuthConfig struct {
	Method           string        `mapstructure:"method"             yaml:"method"`
	Username         string        `mapstructure:"username"           yaml:"username"`
	Headless         bool          `mapstructure:"headless"           yaml:"headless"`
	TwoFactorTimeout time.Duration `mapstructure:"two_factor_timeout" yaml:"two_factor_timeout"`
	KeepSessionAlive bool          `mapstructure:"keep_session_alive" yaml:"keep_session_alive"`
	SettleDelay      time.Duration `mapstructure:"settle_delay"       yaml:"settle_delay"`
	VerifyDelay      time.Duration `mapstructure:"verify_delay"       yaml:"verify_delay"`
	PollInterval     time.Duration `mapstructure:"poll_interval"      yaml:"poll_interval"`
	Alert            bool          `mapstructure:"alert"              yaml:"alert"`
	LoginPath        string        `mapstructure:"login_path"         yaml:"login_path"`
	ChromePath       string        `mapstructure:"chrome_path"        yaml:"chrome_path"`
}

// SessionConfig tunes the REST session.
type SessionConfig struct {
	KeepAliveInterval time.Duration `mapstructure:"keep_alive_interval" yaml:"keep_alive_interval"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"     yaml:"request_timeout"`
	RetryCount        int           `mapstructure:"retry_count"         yaml:"retry_count"`
	RateLimit         float64       `mapstructure:"rate_limit"          yaml:"rate_limit"`
	RateBurst         int           `mapstructure:"rate_burst"          yaml:"rate_burst"`
}

// MonitorConfig tunes the background health loop.
type MonitorConfig struct {
	Interval     time.Duration `mapstructure:"interval"      yaml:"interval"`
	ErrorPause   time.Duration `mapstructure:"error_pause"   yaml:"error_pause"`
	CheckSession bool          `mapstructure:"check_session" yaml:"check_session"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Address returns host:port.
func (g GatewayConfig) Address() string {
	return net.JoinHostPort(g.Host, strconv.Itoa(g.Port))
}

// BaseURL returns the gateway's web root.
func (g GatewayConfig) BaseURL() string {
	return "https://" + g.Address()
}

// APIBaseURL returns the REST API root.
func (g GatewayConfig) APIBaseURL() string {
	return g.BaseURL() + "/v1/api"
}

// ReconnectDelay returns the pause before a reconnect attempt.
func (g GatewayConfig) ReconnectDelay() time.Duration {
	return time.Duration(g.ReconnectDelaySeconds) * time.Second
}

// DefaultGatewayArgs returns the JVM arguments used to start the gateway from its installation directory.
func DefaultGatewayArgs() []string {
	classpath := strings.Join([]string{
		"root",
		filepath.Join("dist", "ibgroup.web.core.iblink.router.clientportal.gw.jar"),
		filepath.Join("build", "lib", "runtime", "*"),
	}, string(os.PathListSeparator))

	return []string{
		"-server",
		"-Dvertx.disableDnsResolver=true",
		"-Djava.net.preferIPv4Stack=true",
		"-Dvertx.logger-delegate-factory-class-name=io.vertx.core.logging.SLF4JLogDelegateFactory",
		"-Dnologback.statusListenerClass=ch.qos.logback.core.status.OnConsoleStatusListener",
		"-Dnolog4j.debug=true",
		"-Dnolog4j2.debug=true",
		"-classpath", classpath,
		gatewayMainClass,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host:                  "localhost",
			Port:                  5000, //nolint:mnd // gateway default port
			Executable:            "java",
			Args:                  DefaultGatewayArgs(),
			AutoLaunch:            true,
			AutoReconnect:         true,
			ReconnectDelaySeconds: 5, //nolint:mnd // seconds
			StartTimeout:          30 * time.Second,
			ProbeTimeout:          time.Second,
			PollInterval:          time.Second,
			StopTimeout:           5 * time.Second,
		},
		Auth: AuthConfig{
			Method:           AuthMethodBrowser,
			Headless:         true,
			TwoFactorTimeout: 2 * time.Minute,
			KeepSessionAlive: true,
			SettleDelay:      5 * time.Second,
			VerifyDelay:      2 * time.Second,
			PollInterval:     time.Second,
			Alert:            true,
			LoginPath:        "/sso/Login",
		},
		Session: SessionConfig{
			KeepAliveInterval: time.Minute,
			RequestTimeout:    30 * time.Second,
			RetryCount:        1,
			RateLimit:         10, //nolint:mnd // requests per second
			RateBurst:         20, //nolint:mnd // burst size
		},
		Monitor: MonitorConfig{
			Interval:     30 * time.Second,
			ErrorPause:   10 * time.Second,
			CheckSession: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "tint",
		},
	}
}

// SetDefaults registers every default value on v so that environment
// variables can override keys that are absent from the file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("gateway.host", d.Gateway.Host)
	v.SetDefault("gateway.port", d.Gateway.Port)
	v.SetDefault("gateway.executable", d.Gateway.Executable)
	v.SetDefault("gateway.install_dir", d.Gateway.InstallDir)
	v.SetDefault("gateway.args", d.Gateway.Args)
	v.SetDefault("gateway.auto_launch", d.Gateway.AutoLaunch)
	v.SetDefault("gateway.auto_reconnect", d.Gateway.AutoReconnect)
	v.SetDefault("gateway.reconnect_delay_seconds", d.Gateway.ReconnectDelaySeconds)
	v.SetDefault("gateway.start_timeout", d.Gateway.StartTimeout)
	v.SetDefault("gateway.probe_timeout", d.Gateway.ProbeTimeout)
	v.SetDefault("gateway.poll_interval", d.Gateway.PollInterval)
	v.SetDefault("gateway.stop_timeout", d.Gateway.StopTimeout)

	v.SetDefault("auth.method", d.Auth.Method)
	v.SetDefault("auth.username", d.Auth.Username)
	v.SetDefault("auth.headless", d.Auth.Headless)
	v.SetDefault("auth.two_factor_timeout", d.Auth.TwoFactorTimeout)
	v.SetDefault("auth.keep_session_alive", d.Auth.KeepSessionAlive)
	v.SetDefault("auth.settle_delay", d.Auth.SettleDelay)
	v.SetDefault("auth.verify_delay", d.Auth.VerifyDelay)
	v.SetDefault("auth.poll_interval", d.Auth.PollInterval)
	v.SetDefault("auth.alert", d.Auth.Alert)
	v.SetDefault("auth.login_path", d.Auth.LoginPath)
	v.SetDefault("auth.chrome_path", d.Auth.ChromePath)

	v.SetDefault("session.keep_alive_interval", d.Session.KeepAliveInterval)
	v.SetDefault("session.request_timeout", d.Session.RequestTimeout)
	v.SetDefault("session.retry_count", d.Session.RetryCount)
	v.SetDefault("session.rate_limit", d.Session.RateLimit)
	v.SetDefault("session.rate_burst", d.Session.RateBurst)

	v.SetDefault("monitor.interval", d.Monitor.Interval)
	v.SetDefault("monitor.error_pause", d.Monitor.ErrorPause)
	v.SetDefault("monitor.check_session", d.Monitor.CheckSession)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load decodes the configuration held by v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigurationError("", "", "failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks structural constraints. Existence of the executable and
// installation directory is checked only when a launch is attempted.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Gateway.Host) == "" {
		errs = append(errs, errors.NewValidationError("gateway.host", c.Gateway.Host, "required", "host must not be empty"))
	}
	if c.Gateway.Port < 1 || c.Gateway.Port > 65535 {
		errs = append(errs, errors.NewValidationError("gateway.port", strconv.Itoa(c.Gateway.Port), "range",
			"port must be between 1 and 65535"))
	}
	if c.Gateway.ReconnectDelaySeconds < 0 {
		errs = append(errs, errors.NewValidationError("gateway.reconnect_delay_seconds",
			strconv.Itoa(c.Gateway.ReconnectDelaySeconds), "non_negative", "reconnect delay must not be negative"))
	}

	for field, d := range map[string]time.Duration{
		"gateway.start_timeout":       c.Gateway.StartTimeout,
		"gateway.probe_timeout":       c.Gateway.ProbeTimeout,
		"gateway.poll_interval":       c.Gateway.PollInterval,
		"auth.two_factor_timeout":     c.Auth.TwoFactorTimeout,
		"auth.poll_interval":          c.Auth.PollInterval,
		"session.keep_alive_interval": c.Session.KeepAliveInterval,
		"session.request_timeout":     c.Session.RequestTimeout,
		"monitor.interval":            c.Monitor.Interval,
	} {
		if d <= 0 {
			errs = append(errs, errors.NewValidationError(field, d.String(), "positive", "duration must be positive"))
		}
	}

	if !slices.Contains([]string{AuthMethodBrowser, AuthMethodSSO}, c.Auth.Method) {
		errs = append(errs, errors.NewValidationError("auth.method", c.Auth.Method, "supported_values",
			fmt.Sprintf("auth method must be one of: %s, %s", AuthMethodBrowser, AuthMethodSSO)))
	}
	if !strings.HasPrefix(c.Auth.LoginPath, "/") {
		errs = append(errs, errors.NewValidationError("auth.login_path", c.Auth.LoginPath, "absolute_path",
			"login path must start with '/'"))
	}

	if !slices.Contains([]string{"tint", "text", "json"}, c.Log.Format) {
		errs = append(errs, errors.NewValidationError("log.format", c.Log.Format, "supported_values",
			"log format must be one of: tint, text, json"))
	}

	return errors.Join(errs...)
}
