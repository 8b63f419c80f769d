package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PasswordReader handles secure password input from users.
type PasswordReader interface {
	ReadPassword(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}

// SecretStore persists secrets outside the configuration file.
type SecretStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Credentials is an immutable username/password pair used for interactive login.
// It is never persisted by the session core.
type Credentials struct {
	username string
	password string
}

// NewCredentials creates a credential pair.
func NewCredentials(username, password string) Credentials {
	return Credentials{username: username, password: password}
}

// Username returns the login name.
func (c Credentials) Username() string { return c.username }

// Password returns the secret.
func (c Credentials) Password() string { return c.password }

// IsComplete reports whether both parts are set.
func (c Credentials) IsComplete() bool {
	return c.username != "" && c.password != ""
}

func (c Credentials) String() string {
	return fmt.Sprintf("%s:****", c.username)
}

// LogValue keeps the password out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// CredentialProvider resolves credentials when a login is actually needed.
type CredentialProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// LoginOptions tunes a single interactive login.
type LoginOptions struct {
	Headless         bool
	TwoFactorTimeout time.Duration
	KeepSessionAlive bool
}

// DefaultLoginOptions returns headless login with a two minute approval window
// and the browser session retained afterwards.
func DefaultLoginOptions() LoginOptions {
	return LoginOptions{
		Headless:         true,
		TwoFactorTimeout: 2 * time.Minute, //nolint:mnd // approval window on the user's device
		KeepSessionAlive: true,
	}
}

// Authenticator performs the gateway login. Login reports success as a
// boolean; failure details are logged by the implementation.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials, opts LoginOptions) bool
	IsSessionAlive() bool
	ResetSession()
	Close() error
}

// SessionState describes where a connection is in its lifecycle.
type SessionState int

const (
	SessionUnauthenticated SessionState = iota
	SessionLoggingIn
	SessionAwaitingTwoFactor
	SessionAuthenticated
	SessionExpired
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionLoggingIn:
		return "logging_in"
	case SessionAwaitingTwoFactor:
		return "awaiting_two_factor"
	case SessionAuthenticated:
		return "authenticated"
	case SessionExpired:
		return "expired"
	case SessionFailed:
		return "failed"
	default:
		return fmt.Sprintf("session_state(%d)", int(s))
	}
}
