package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
	"cpgate/internal/services/session"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flags
var (
	positionsSecType string
	positionsExclude []string
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List positions of the selected account",
	Long:  `Connect, then list the positions held in the selected account.`,
	RunE:  runPositions,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(positionsCmd)

	positionsCmd.Flags().StringVar(&positionsSecType, "sec-type", "", "Only show STK, OPT or FUT positions")
	positionsCmd.Flags().StringSliceVar(&positionsExclude, "exclude", nil, "Regex of symbols to leave out (repeatable)")
}

func runPositions(cmd *cobra.Command, _ []string) error {
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

	result, err := commands.NewPositionsCommand(conn, app.Logger).
		Execute(ctx, commands.PositionsRequest{
			SecType: positionsSecType,
			Exclude: positionsExclude,
		})
	if err != nil {
		return err
	}

	if len(result.Positions) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No positions in account %s.\n", result.AccountID)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SYMBOL\tTYPE\tQTY\tPRICE\tVALUE\tAVG COST\tUNREALIZED\tCCY\t")
	for _, p := range result.Positions {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t\n",
			p.Symbol, p.SecType, p.Quantity, p.MarketPrice, p.MarketValue, p.AverageCost, p.UnrealizedPnL, p.Currency)
	}
	return tw.Flush()
}
