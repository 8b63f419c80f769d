package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
	"cpgate/internal/services/credentials"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage the gateway password in the system keyring",
	Long: fmt.Sprintf(`Store or remove the password for auth.username in the system keyring.
The password can also be supplied through the %s environment variable.`, credentials.PasswordEnv),
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var credentialsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompt for the password and store it in the keyring",
	Args:  cobra.NoArgs,
	RunE:  runCredentials(commands.CredentialsSet),
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var credentialsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored password from the keyring",
	Args:  cobra.NoArgs,
	RunE:  runCredentials(commands.CredentialsDelete),
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	credentialsCmd.AddCommand(credentialsSetCmd, credentialsDeleteCmd)
	rootCmd.AddCommand(credentialsCmd)
}

func runCredentials(action string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		chain := app.Services.Credentials()
		err = commands.NewCredentialsCommand(chain, app.PasswordReader, app.Logger).
			Execute(cmd.Context(), commands.CredentialsRequest{Action: action})
		if err != nil {
			return err
		}

		switch action {
		case commands.CredentialsSet:
			fmt.Fprintf(cmd.OutOrStdout(), "Password for %s stored in keyring.\n", chain.Username())
		case commands.CredentialsDelete:
			fmt.Fprintf(cmd.OutOrStdout(), "Password for %s removed from keyring.\n", chain.Username())
		}
		return nil
	}
}
