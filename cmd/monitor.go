package cmd

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpgate/internal/app"
	"cpgate/internal/commands"
	"cpgate/internal/config"
	"cpgate/internal/services/monitor"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flags
var monitorConnect bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Keep the gateway and session healthy until interrupted",
	Long: `Periodically check the gateway and restart it when it stops listening. The
session is tickled to stay alive. With --connect the session is established
first. Reconnect settings are reloaded when the config file changes. On exit a
gateway started by this process is stopped.`,
	RunE: runMonitor,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().BoolVar(&monitorConnect, "connect", false, "Log in before monitoring")
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	handle := a.Services.SessionHandle()
	defer handle.Close()
	conn := a.Services.Connection(handle)
	defer conn.Close()

	mon := a.Services.Monitor(handle, monitor.WithSessionExpiredHandler(func(context.Context) {
		conn.MarkExpired()
	}))
	watchSettings(mon, a.Logger)

	return commands.NewMonitorCommand(a.Services.Supervisor(), mon, conn, a.Logger).
		Execute(ctx, commands.MonitorRequest{Connect: monitorConnect})
}

// watchSettings applies reconnect settings from the config file while the
// monitor runs. Invalid edits are logged and ignored.
func watchSettings(mon *monitor.Monitor, logger *slog.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		settings, err := config.Load(viper.GetViper())
		if err != nil {
			logger.Warn("Ignoring invalid configuration change", "file", e.Name, "error", err)
			return
		}
		next := app.MonitorSettings(settings)
		mon.UpdateSettings(next)
		logger.Info("Reloaded monitor settings",
			"file", e.Name,
			"autoReconnect", next.AutoReconnect,
			"reconnectDelay", next.ReconnectDelay)
	})
	viper.WatchConfig()
}
