package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
	"cpgate/internal/services/session"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List brokerage accounts",
	Long:  `Connect, then list the accounts visible to the session with a summary of the selected one.`,
	RunE:  runAccounts,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	handle := app.Services.SessionHandle(session.WithoutKeepAlive())
	defer handle.Close()
	conn := app.Services.Connection(handle)
	defer conn.Close()

	result, err := commands.NewAccountsCommand(conn, app.Logger).Execute(ctx, commands.AccountsRequest{})
	if err != nil {
		return err
	}

	if len(result.Accounts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No accounts available.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tACCOUNT\tTITLE\tCURRENCY\tTYPE")
	for _, a := range result.Accounts {
		marker := ""
		if a.AccountID == result.Selected {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", marker, a.AccountID, a.AccountTitle, a.Currency, a.Type)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s := result.Summary; s != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSelected %s (%s, %s)\n", s.AccountID, s.Type, s.TradingType)
		if s.Clearing != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  clearing status: %s\n", s.Clearing)
		}
	}
	return nil
}
