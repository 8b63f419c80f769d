package commands

import (
	"context"
	"fmt"
	"log/slog"

	"cpgate/internal/migrations"
)

// SecretsImporter imports a legacy secrets file.
type SecretsImporter interface {
	ImportSecrets(ctx context.Context, path string) (migrations.Result, error)
}

// ImportSecretsCommand moves credentials from a legacy secrets file into the
// configuration and the keyring.
type ImportSecretsCommand struct {
	importer SecretsImporter
	logger   *slog.Logger
}

// NewImportSecretsCommand creates a new import-secrets command.
func NewImportSecretsCommand(importer SecretsImporter, logger *slog.Logger) *ImportSecretsCommand {
	return &ImportSecretsCommand{
		importer: importer,
		logger:   logger,
	}
}

// ImportSecretsRequest contains the parameters for the import-secrets command.
type ImportSecretsRequest struct {
	Path string
}

// Execute runs the import-secrets command.
func (c *ImportSecretsCommand) Execute(ctx context.Context, req ImportSecretsRequest) (*migrations.Result, error) {
	c.logger.DebugContext(ctx, "Importing legacy secrets", "path", req.Path)

	result, err := c.importer.ImportSecrets(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", req.Path, err)
	}

	return &result, nil
}
