package migrations

import (
	"context"
	"fmt"
	"log/slog"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// Result describes what an import changed.
type Result struct {
	Username       string
	PasswordStored bool
	ConfigPath     string
}

// Migrator moves legacy credentials into the configuration file and the
// secret store.
type Migrator struct {
	fs     domain.FileSystemAdapter
	repo   domain.ConfigRepository
	store  domain.SecretStore
	logger *slog.Logger
}

// NewMigrator creates a new legacy secrets importer. store may be nil, in
// which case the password is not imported.
func NewMigrator(
	fs domain.FileSystemAdapter,
	repo domain.ConfigRepository,
	store domain.SecretStore,
	logger *slog.Logger,
) *Migrator {
	return &Migrator{
		fs:     fs,
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// ImportSecrets reads the legacy secrets file at path, sets auth.username in
// the configuration and stores the password in the secret store.
func (m *Migrator) ImportSecrets(ctx context.Context, path string) (Result, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read secrets file: %w", err)
	}

	secrets, err := parseLegacySecrets(data)
	if err != nil {
		return Result{}, err
	}

	creds := secrets.IBKRCredentials
	if creds.Username == "" {
		return Result{}, errors.NewValidationError("IBKRCredentials.Username", "", "required",
			fmt.Sprintf("%s has no username", path))
	}

	m.logger.DebugContext(ctx, "Importing legacy secrets", "path", path, "user", creds.Username)

	if err := m.repo.SetValue(ctx, "auth.username", creds.Username); err != nil {
		return Result{}, fmt.Errorf("failed to update configuration: %w", err)
	}

	result := Result{
		Username:   creds.Username,
		ConfigPath: m.repo.Path(),
	}

	if creds.Password != "" && m.store != nil {
		if err := m.store.Set(creds.Username, creds.Password); err != nil {
			return result, fmt.Errorf("failed to store password in keyring: %w", err)
		}
		result.PasswordStored = true
	}

	m.logger.InfoContext(ctx, "Imported legacy secrets",
		"user", creds.Username,
		"passwordStored", result.PasswordStored,
		"config", result.ConfigPath)
	if creds.Password != "" {
		m.logger.WarnContext(ctx, "The legacy secrets file still holds a plaintext password", "path", path)
	}
	return result, nil
}
