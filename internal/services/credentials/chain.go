// Package credentials resolves the gateway login credentials at the moment
// an interactive login is needed.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// PasswordEnv names the environment variable checked first for the password.
const PasswordEnv = "CPGATE_PASSWORD" //nolint:gosec // variable name, not a secret

// Chain looks up the password for the configured username in the
// environment, then the secret store, then by prompting on the terminal.
type Chain struct {
	username string
	store    domain.SecretStore
	reader   domain.PasswordReader
	lookup   func(string) (string, bool)
	logger   *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithEnvLookup replaces os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(c *Chain) {
		c.lookup = lookup
	}
}

// NewChain creates a credential chain. store and reader may be nil to skip
// those sources.
func NewChain(
	username string,
	store domain.SecretStore,
	reader domain.PasswordReader,
	logger *slog.Logger,
	opts ...Option,
) *Chain {
	c := &Chain{
		username: username,
		store:    store,
		reader:   reader,
		lookup:   os.LookupEnv,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns the first complete credential pair found.
func (c *Chain) Credentials(ctx context.Context) (domain.Credentials, error) {
	if c.username == "" {
		return domain.Credentials{}, errors.NewConfigurationError("auth.username", "",
			"a username is required for login", nil)
	}

	if password, ok := c.lookup(PasswordEnv); ok && password != "" {
		c.logger.DebugContext(ctx, "Using password from environment", "user", c.username)
		return domain.NewCredentials(c.username, password), nil
	}

	if c.store != nil {
		password, err := c.store.Get(c.username)
		switch {
		case err == nil && password != "":
			c.logger.DebugContext(ctx, "Using password from keyring", "user", c.username)
			return domain.NewCredentials(c.username, password), nil
		case err != nil && !errors.IsNotFound(err):
			c.logger.WarnContext(ctx, "Keyring lookup failed", "user", c.username, "error", err)
		}
	}

	if c.reader != nil && c.reader.IsInteractive() {
		password, err := c.reader.ReadPassword(ctx, fmt.Sprintf("Password for %s: ", c.username))
		if err != nil {
			return domain.Credentials{}, fmt.Errorf("failed to read password: %w", err)
		}
		if password != "" {
			return domain.NewCredentials(c.username, password), nil
		}
	}

	return domain.Credentials{}, errors.NewConfigurationError("password", "",
		fmt.Sprintf("no password for %s: set %s, store one with 'cpgate credentials set' or run interactively",
			c.username, PasswordEnv), errors.ErrNotFound)
}

// Save stores password for the configured username in the secret store.
func (c *Chain) Save(password string) error {
	if c.store == nil {
		return errors.NewConfigurationError("keyring", "", "no secret store available", nil)
	}
	if c.username == "" {
		return errors.NewConfigurationError("auth.username", "", "a username is required", nil)
	}
	if err := c.store.Set(c.username, password); err != nil {
		return fmt.Errorf("failed to store password for %s: %w", c.username, err)
	}
	return nil
}

// Forget removes the stored password for the configured username.
func (c *Chain) Forget() error {
	if c.store == nil {
		return errors.NewConfigurationError("keyring", "", "no secret store available", nil)
	}
	if err := c.store.Remove(c.username); err != nil {
		return fmt.Errorf("failed to remove password for %s: %w", c.username, err)
	}
	return nil
}

// Username returns the configured username.
func (c *Chain) Username() string {
	return c.username
}
