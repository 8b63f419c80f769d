package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpgate/internal/app"
	"cpgate/internal/config"
	cperrors "cpgate/internal/errors"
	"cpgate/internal/logging"
)

// envPrefix prefixes environment overrides, e.g. CPGATE_GATEWAY_PORT.
const envPrefix = "CPGATE"

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile   string
	verbose   bool
	logFormat string

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, stderrors.New("application not initialized")
	}
	return a, nil
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "cpgate",
	Short: "Run and keep alive an IBKR Client Portal Gateway session",
	Long: `cpgate launches the local IBKR Client Portal Gateway, logs in through the
gateway's web page, keeps the brokerage session alive and restarts the gateway
when it goes away.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status. Invalid input
// exits with 2, everything else with 1.
func exitCode(err error) int {
	if stderrors.Is(err, cperrors.ErrInvalidInput) {
		return 2
	}
	return 1
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cpgate/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "", "log format: tint, text or json (default from config)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "cpgate"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	// A missing config file is fine; defaults and environment apply.
	if err := viper.ReadInConfig(); err != nil && !isMissingConfig(err) {
		fmt.Fprintf(os.Stderr, "Failed to read configuration: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize the application with dependency injection
	opts := []app.Option{
		app.WithSettings(settings),
		app.WithLogLevel(logging.ParseLevel(settings.Log.Level)),
		app.WithConfigPath(cfgFile),
	}
	if logFormat != "" {
		opts = append(opts, app.WithLogFormat(logFormat))
	}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, os.ErrNotExist)
}
