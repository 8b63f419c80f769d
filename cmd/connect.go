package cmd

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
	cperrors "cpgate/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flags
var connectKeep bool

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Start the gateway if needed and log in",
	Long: `Make sure the gateway is running and the brokerage session is authenticated,
logging in through the gateway's web page when it is not. The login waits for
two-factor approval on your device. With --keep the session is kept alive until
Ctrl-C.`,
	RunE: runConnect,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().BoolVar(&connectKeep, "keep", false, "Keep the session alive until interrupted")
}

func runConnect(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	handle := app.Services.SessionHandle()
	defer handle.Close()
	conn := app.Services.Connection(handle)
	defer conn.Close()

	result, err := commands.NewConnectCommand(conn, app.Logger).Execute(ctx, commands.ConnectRequest{})
	if err != nil {
		printLoginDiagnostics(cmd.ErrOrStderr(), err, verbose)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Connected to account %s\n", result.AccountID)

	if !connectKeep {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Keeping the session alive. Press Ctrl-C to exit.")
	<-ctx.Done()
	return nil
}

// printLoginDiagnostics explains a failed interactive login. The page markup
// captured at the failure is shown only with withMarkup.
func printLoginDiagnostics(w io.Writer, err error, withMarkup bool) {
	if !cperrors.IsLogin(err) {
		return
	}
	var loginErr *cperrors.LoginError
	if !stderrors.As(err, &loginErr) {
		return
	}

	fmt.Fprintf(w, "Login failed while %s (%s).\n", loginErr.Stage, loginErr.Kind)
	switch loginErr.Kind {
	case cperrors.LoginKindTwoFactorTimeout:
		fmt.Fprintln(w, "Approve the login on your device within the two-factor timeout.")
	case cperrors.LoginKindRejected:
		fmt.Fprintln(w, "Check the stored username and password with 'cpgate credentials set'.")
	case cperrors.LoginKindElementNotFound:
		fmt.Fprintln(w, "The login page did not look as expected. Run with -v to see its markup.")
	}
	if withMarkup && loginErr.Markup != "" {
		fmt.Fprintf(w, "Page markup:\n%s\n", loginErr.Markup)
	}
}
