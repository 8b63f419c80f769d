package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpgate/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flags
var (
	initUsername   string
	initInstallDir string
	initForce      bool
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cpgate configuration file",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var importSecretsCmd = &cobra.Command{
	Use:   "import-secrets <secrets.json>",
	Short: "Import username and password from a legacy secrets file",
	Long: `Read IBKRCredentials from a legacy secrets.json file, set auth.username in the
configuration file and store the password in the system keyring. The secrets
file is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportSecrets,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	configInitCmd.Flags().StringVar(&initUsername, "username", "", "IBKR username")
	configInitCmd.Flags().StringVar(&initInstallDir, "install-dir", "", "Client Portal Gateway installation directory")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd, importSecretsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	result, err := commands.NewConfigInitCommand(app.ConfigRepo, app.Logger).
		Execute(cmd.Context(), commands.ConfigInitRequest{
			Username:   initUsername,
			InstallDir: initInstallDir,
			Force:      initForce,
		})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", result.Path)
	return nil
}

func runImportSecrets(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	migrator := app.Services.Migrator(app.FileSystem, app.ConfigRepo)
	result, err := commands.NewImportSecretsCommand(migrator, app.Logger).
		Execute(cmd.Context(), commands.ImportSecretsRequest{Path: args[0]})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported username %s into %s\n", result.Username, result.ConfigPath)
	if result.PasswordStored {
		fmt.Fprintln(cmd.OutOrStdout(), "Password stored in keyring.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s still contains the plaintext password; delete it when done.\n", args[0])
	return nil
}
