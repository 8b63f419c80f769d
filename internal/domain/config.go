package domain

import "context"

// ConfigRepository persists the cpgate configuration file.
type ConfigRepository interface {
	Path() string
	Exists() bool
	// Write stores document as the whole configuration file.
	Write(ctx context.Context, document any, overwrite bool) error
	// SetValue sets one dotted key in the configuration file, creating the
	// file when needed and keeping all other keys.
	SetValue(ctx context.Context, key string, value any) error
}

// ConfigProvider provides configuration paths.
type ConfigProvider interface {
	GetConfigDir() (string, error)
	GetConfigPath() (string, error)
}
