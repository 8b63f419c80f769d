package commands

import (
	"context"
	"fmt"
	"log/slog"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// Credential actions.
const (
	CredentialsSet    = "set"
	CredentialsDelete = "delete"
)

// PasswordKeeper stores the password of the configured user.
type PasswordKeeper interface {
	Username() string
	Save(password string) error
	Forget() error
}

// CredentialsCommand stores or removes the gateway password in the keyring.
type CredentialsCommand struct {
	keeper         PasswordKeeper
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewCredentialsCommand creates a new credentials command.
func NewCredentialsCommand(
	keeper PasswordKeeper,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *CredentialsCommand {
	return &CredentialsCommand{
		keeper:         keeper,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// CredentialsRequest contains the parameters for the credentials command.
type CredentialsRequest struct {
	Action string
	// Password is prompted for when empty.
	Password string
}

// Execute runs the credentials command.
func (c *CredentialsCommand) Execute(ctx context.Context, req CredentialsRequest) error {
	username := c.keeper.Username()
	if username == "" {
		return errors.NewConfigurationError("auth.username", "", "set auth.username before managing credentials", nil)
	}

	switch req.Action {
	case CredentialsSet:
		password, err := c.password(ctx, req.Password, username)
		if err != nil {
			return err
		}
		if err := c.keeper.Save(password); err != nil {
			return err
		}
		c.logger.InfoContext(ctx, "Stored password in keyring", "username", username)
	case CredentialsDelete:
		if err := c.keeper.Forget(); err != nil {
			return err
		}
		c.logger.InfoContext(ctx, "Removed password from keyring", "username", username)
	default:
		return errors.NewValidationError("action", req.Action, "supported_values",
			fmt.Sprintf("action must be %q or %q", CredentialsSet, CredentialsDelete))
	}

	return nil
}

func (c *CredentialsCommand) password(ctx context.Context, given, username string) (string, error) {
	if given != "" {
		return given, nil
	}
	if !c.passwordReader.IsInteractive() {
		return "", errors.NewValidationError("password", "", "required",
			"no password given and stdin is not a terminal")
	}

	password, err := c.passwordReader.ReadPassword(ctx, fmt.Sprintf("Password for %s: ", username))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.NewValidationError("password", "", "required", "password must not be empty")
	}
	return password, nil
}
