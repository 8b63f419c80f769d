package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cpgate/internal/domain"
	cperrors "cpgate/internal/errors"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
)

// Repository handles configuration persistence.
type Repository struct {
	fs         domain.FileSystemAdapter
	configPath string
	logger     *slog.Logger
}

// NewRepository creates a new configuration repository.
func NewRepository(
	fs domain.FileSystemAdapter,
	configPath string,
	logger *slog.Logger,
) *Repository {
	return &Repository{
		fs:         fs,
		configPath: configPath,
		logger:     logger,
	}
}

// Path returns the configuration file path.
func (r *Repository) Path() string {
	return r.configPath
}

// Exists reports whether the configuration file exists.
func (r *Repository) Exists() bool {
	_, err := r.fs.Stat(r.configPath)
	return err == nil
}

// Write marshals document as YAML and saves it. An existing file is only
// replaced when overwrite is set.
func (r *Repository) Write(ctx context.Context, document any, overwrite bool) error {
	if !overwrite && r.Exists() {
		return cperrors.NewConfigurationError("path", r.configPath,
			fmt.Sprintf("configuration file %s already exists", r.configPath), os.ErrExist)
	}

	data, err := yaml.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return r.save(ctx, data)
}

// SetValue sets a dotted key such as auth.username.
func (r *Repository) SetValue(ctx context.Context, key string, value any) error {
	parts := strings.Split(key, ".")
	for _, part := range parts {
		if part == "" {
			return cperrors.NewValidationError("key", key, "format", "key must not contain empty segments")
		}
	}

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	node := doc
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = value

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := r.save(ctx, data); err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "Configuration value set", "key", key, "path", r.configPath)
	return nil
}

func (r *Repository) load(ctx context.Context) (map[string]any, error) {
	data, err := r.fs.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Configuration file does not exist", "path", r.configPath)
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func (r *Repository) save(ctx context.Context, data []byte) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.configPath), dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := r.fs.WriteFile(r.configPath, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	r.logger.DebugContext(ctx, "Configuration saved", "path", r.configPath)
	return nil
}
