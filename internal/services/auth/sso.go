package auth

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"cpgate/internal/domain"
)

const defaultSSOPollInterval = 3 * time.Second

// SSOAuthenticator logs in through the gateway's SSO init endpoint instead
// of a browser. The user still approves the login on their device.
type SSOAuthenticator struct {
	client       domain.SessionClient
	pollInterval time.Duration
	logger       *slog.Logger
	alive        atomic.Bool
}

// NewSSOAuthenticator creates an SSO authenticator. A non-positive poll
// interval defaults to three seconds.
func NewSSOAuthenticator(client domain.SessionClient, pollInterval time.Duration, logger *slog.Logger) *SSOAuthenticator {
	if pollInterval <= 0 {
		pollInterval = defaultSSOPollInterval
	}
	return &SSOAuthenticator{
		client:       client,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Login initiates the SSO login and waits until the gateway reports an
// authenticated, connected session or the approval window closes.
func (a *SSOAuthenticator) Login(ctx context.Context, creds domain.Credentials, opts domain.LoginOptions) bool {
	a.alive.Store(false)

	if !creds.IsComplete() {
		a.logger.ErrorContext(ctx, "SSO login needs a username and password")
		return false
	}
	if opts.TwoFactorTimeout <= 0 {
		opts.TwoFactorTimeout = domain.DefaultLoginOptions().TwoFactorTimeout
	}

	a.logger.DebugContext(ctx, "Initiating SSO login", "user", creds.Username())

	resp, err := a.client.InitiateSSOLogin(ctx, creds.Username(), creds.Password())
	if err != nil {
		a.logger.ErrorContext(ctx, "SSO login request failed", "error", err)
		return false
	}
	a.logger.InfoContext(ctx, "Login initiated, check your mobile device for the two-factor notification",
		"message", resp.Message,
		"timeout", opts.TwoFactorTimeout)

	if a.waitForAuthentication(ctx, opts.TwoFactorTimeout) {
		a.alive.Store(true)
		return true
	}
	return false
}

func (a *SSOAuthenticator) waitForAuthentication(ctx context.Context, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		status, err := a.client.GetAuthStatus(ctx)
		switch {
		case err != nil:
			a.logger.DebugContext(ctx, "Auth status check failed", "error", err)
		case status.Ready():
			a.logger.InfoContext(ctx, "SSO login approved")
			return true
		}

		select {
		case <-ctx.Done():
			a.logger.WarnContext(ctx, "SSO login cancelled", "error", ctx.Err())
			return false
		case <-deadline.C:
			a.logger.WarnContext(ctx, "Two-factor approval timed out", "timeout", timeout)
			return false
		case <-ticker.C:
		}
	}
}

// IsSessionAlive reports whether the last login succeeded and was not reset.
func (a *SSOAuthenticator) IsSessionAlive() bool {
	return a.alive.Load()
}

// ResetSession forgets the last login.
func (a *SSOAuthenticator) ResetSession() {
	a.alive.Store(false)
}

// Close is a no-op; the SSO path holds no resources.
func (a *SSOAuthenticator) Close() error {
	a.alive.Store(false)
	return nil
}
