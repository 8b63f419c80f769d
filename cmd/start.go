package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flags
var startForeground bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gateway if it is not already listening",
	Long: `Probe the configured gateway address and launch the gateway when nothing is
listening. With --foreground the command waits for Ctrl-C and then stops the
gateway it started; a gateway started by anyone else is left running.`,
	RunE: runStart,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().BoolVar(&startForeground, "foreground", false, "Wait for a signal, then stop the gateway started here")
}

func runStart(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	supervisor := app.Services.Supervisor()
	result, err := commands.NewStartCommand(supervisor, app.Logger).Execute(ctx, commands.StartRequest{})
	if err != nil {
		return fmt.Errorf("failed to start gateway: %w", err)
	}

	if result.AlreadyRunning {
		fmt.Fprintf(cmd.OutOrStdout(), "Gateway already running on %s\n", result.Address)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Gateway started on %s\n", result.Address)
	}

	if !startForeground {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl-C to stop.")
	<-ctx.Done()
	supervisor.StopRunning(context.WithoutCancel(ctx))
	return nil
}

// signalContext is cancelled on Ctrl-C or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
