package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cpgate/internal/commands"
	"cpgate/internal/services/session"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gateway and session status",
	Long:  `Report whether the gateway is listening, which process owns its port and whether the brokerage session is authenticated.`,
	RunE:  runStatus,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	handle := app.Services.SessionHandle(session.WithoutKeepAlive())
	defer handle.Close()

	result, err := commands.NewStatusCommand(app.Services.Supervisor(), handle, app.Logger).
		Execute(cmd.Context(), commands.StatusRequest{})
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	printStatus(cmd.OutOrStdout(), result)
	return nil
}

func printStatus(w io.Writer, result *commands.StatusResult) {
	ok := color.New(color.FgGreen).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	gw := result.Gateway
	switch {
	case gw.Listening && gw.ListenerPID > 0:
		fmt.Fprintf(w, "Gateway: %s\n", ok(gw.Summary()))
	case gw.Listening:
		fmt.Fprintf(w, "Gateway: %s\n", warn(gw.Summary()))
	default:
		fmt.Fprintf(w, "Gateway: %s (%s)\n", bad(gw.Summary()), gw.Address)
	}
	if gw.Managed {
		fmt.Fprintf(w, "  started by this process: pid %d\n", gw.PID)
	}

	if !gw.Listening {
		return
	}

	switch auth := result.Auth; {
	case result.AuthErr != nil:
		fmt.Fprintf(w, "Session: %s: %v\n", bad("unavailable"), result.AuthErr)
	case auth == nil:
		fmt.Fprintf(w, "Session: %s\n", warn("unknown"))
	case auth.Ready():
		fmt.Fprintf(w, "Session: %s\n", ok("authenticated"))
	case auth.Authenticated:
		fmt.Fprintf(w, "Session: %s\n", warn("authenticated, brokerage not connected"))
	default:
		fmt.Fprintf(w, "Session: %s\n", bad("not authenticated"))
	}
	if auth := result.Auth; auth != nil {
		if auth.Competing {
			fmt.Fprintf(w, "  %s\n", warn("another session is competing for this login"))
		}
		if auth.Message != "" {
			fmt.Fprintf(w, "  message: %s\n", auth.Message)
		}
	}
}
