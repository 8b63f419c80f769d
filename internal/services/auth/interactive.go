// Package auth logs a client into the gateway, either by driving its login
// page in a browser or through the SSO init endpoint.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cpgate/internal/domain"
	cperrors "cpgate/internal/errors"
)

const (
	defaultLoginPath     = "/sso/Login"
	defaultPollInterval  = time.Second
	defaultSettleDelay   = 5 * time.Second
	defaultPageLoadDelay = 2 * time.Second
	defaultElementWait   = 15 * time.Second
	defaultElementPoll   = 250 * time.Millisecond
	aliveProbeTimeout    = 5 * time.Second

	windowWidth  = 1920
	windowHeight = 1080
)

// Config configures an InteractiveAuthenticator. Zero durations take defaults.
type Config struct {
	// GatewayURL is the root of the gateway, e.g. https://localhost:5000.
	GatewayURL string
	LoginPath  string
	ChromePath string

	PollInterval  time.Duration
	SettleDelay   time.Duration
	PageLoadDelay time.Duration
	ElementWait   time.Duration
	ElementPoll   time.Duration

	// Alert rings the terminal bell when approval is needed.
	Alert       bool
	AlertWriter io.Writer
}

func (c Config) withDefaults() Config {
	if c.LoginPath == "" {
		c.LoginPath = defaultLoginPath
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.SettleDelay < 0 {
		c.SettleDelay = 0
	}
	if c.PageLoadDelay < 0 {
		c.PageLoadDelay = 0
	}
	if c.ElementWait <= 0 {
		c.ElementWait = defaultElementWait
	}
	if c.ElementPoll <= 0 {
		c.ElementPoll = defaultElementPoll
	}
	if c.AlertWriter == nil {
		c.AlertWriter = os.Stderr
	}
	return c
}

// DefaultConfig returns the production timings for the given gateway.
func DefaultConfig(gatewayURL string) Config {
	return Config{
		GatewayURL:    gatewayURL,
		LoginPath:     defaultLoginPath,
		PollInterval:  defaultPollInterval,
		SettleDelay:   defaultSettleDelay,
		PageLoadDelay: defaultPageLoadDelay,
		ElementWait:   defaultElementWait,
		ElementPoll:   defaultElementPoll,
		Alert:         true,
	}
}

// InteractiveAuthenticator fills in the gateway login form in a browser and
// waits for the user to approve the login on their second factor device.
type InteractiveAuthenticator struct {
	cfg      Config
	launcher domain.BrowserLauncher
	logger   *slog.Logger

	username *FieldLocator
	password *FieldLocator
	submit   *FieldLocator

	// loginMu serializes Login calls; engineMu guards the engine only so
	// that probes do not wait for a login in progress.
	loginMu  sync.Mutex
	engineMu sync.Mutex
	engine   domain.BrowserEngine

	state   atomic.Int32
	lastErr atomic.Pointer[cperrors.LoginError]
}

// NewInteractiveAuthenticator creates an authenticator that launches
// browsers through launcher.
func NewInteractiveAuthenticator(
	cfg Config,
	launcher domain.BrowserLauncher,
	logger *slog.Logger,
) *InteractiveAuthenticator {
	return &InteractiveAuthenticator{
		cfg:      cfg.withDefaults(),
		launcher: launcher,
		logger:   logger,
		username: UsernameLocator(),
		password: PasswordLocator(),
		submit:   SubmitLocator(),
	}
}

// State returns the current login step.
func (a *InteractiveAuthenticator) State() State {
	return State(a.state.Load())
}

// LastError returns the failure of the most recent login, if any.
func (a *InteractiveAuthenticator) LastError() *cperrors.LoginError {
	return a.lastErr.Load()
}

func (a *InteractiveAuthenticator) setState(ctx context.Context, s State) {
	a.state.Store(int32(s))
	a.logger.DebugContext(ctx, "Login state changed", "state", s.String())
}

// Login performs one interactive login. It returns true only when the
// browser left the login page for the portal within the approval window.
func (a *InteractiveAuthenticator) Login(ctx context.Context, creds domain.Credentials, opts domain.LoginOptions) bool {
	a.loginMu.Lock()
	defer a.loginMu.Unlock()

	_ = a.closeEngine()
	a.lastErr.Store(nil)
	a.setState(ctx, StateInit)

	if opts.TwoFactorTimeout <= 0 {
		opts.TwoFactorTimeout = domain.DefaultLoginOptions().TwoFactorTimeout
	}

	logger := a.logger.With("gateway", a.cfg.GatewayURL, "user", creds.Username())
	logger.InfoContext(ctx, "Starting interactive login", "headless", opts.Headless)

	if !creds.IsComplete() {
		return a.fail(ctx, logger, nil, cperrors.LoginKindRejected, "init",
			errors.New("username and password are required"))
	}

	engine, err := a.launcher.Launch(ctx, domain.BrowserOptions{
		Headless:         opts.Headless,
		IgnoreCertErrors: true,
		WindowWidth:      windowWidth,
		WindowHeight:     windowHeight,
		ExecPath:         a.cfg.ChromePath,
	})
	if err != nil {
		return a.fail(ctx, logger, nil, cperrors.LoginKindBrowser, "launch", err)
	}
	a.engineMu.Lock()
	a.engine = engine
	a.engineMu.Unlock()

	a.setState(ctx, StateNavigateToLogin)
	if err := engine.Navigate(ctx, a.cfg.GatewayURL); err != nil {
		return a.fail(ctx, logger, engine, cperrors.LoginKindBrowser, "navigate", err)
	}
	if !sleep(ctx, a.cfg.PageLoadDelay) {
		return a.fail(ctx, logger, engine, cperrors.LoginKindBrowser, "navigate", ctx.Err())
	}

	location, _ := engine.Location(ctx)
	title, _ := engine.Title(ctx)
	logger.DebugContext(ctx, "Login page loaded", "location", location, "title", title)

	a.setState(ctx, StateFillCredentials)
	if err := a.fillCredentials(ctx, logger, engine, creds); err != nil {
		return a.fail(ctx, logger, engine, kindOf(err), "fill_credentials", err)
	}

	a.setState(ctx, StateSubmitForm)
	submit, err := a.submit.Locate(ctx, engine)
	if err != nil {
		return a.fail(ctx, logger, engine, cperrors.LoginKindElementNotFound, "submit_form", err)
	}
	logger.DebugContext(ctx, "Submitting login form", "strategy", submit.Name)
	if err := engine.Click(ctx, submit.Selector); err != nil {
		return a.fail(ctx, logger, engine, cperrors.LoginKindBrowser, "submit_form", err)
	}

	a.setState(ctx, StateAwaitingTwoFactor)
	a.alert(ctx, logger, opts.TwoFactorTimeout)

	if err := a.awaitApproval(ctx, engine, opts.TwoFactorTimeout); err != nil {
		if errors.Is(err, cperrors.ErrTwoFactorTimeout) {
			logger.WarnContext(ctx, "Two-factor approval timed out", "timeout", opts.TwoFactorTimeout)
			a.lastErr.Store(cperrors.NewLoginError(cperrors.LoginKindTwoFactorTimeout, "awaiting_two_factor", "", err))
			a.setState(ctx, StateTimedOut)
			return false
		}
		return a.fail(ctx, logger, engine, kindOf(err), "awaiting_two_factor", err)
	}

	a.setState(ctx, StateAuthenticated)
	logger.InfoContext(ctx, "Login approved", "keepSessionAlive", opts.KeepSessionAlive)

	// The gateway needs a moment to mark the session authenticated.
	sleep(ctx, a.cfg.SettleDelay)

	if !opts.KeepSessionAlive {
		if err := a.closeEngine(); err != nil {
			logger.DebugContext(ctx, "Failed to close browser", "error", err)
		}
	}
	return true
}

func (a *InteractiveAuthenticator) fillCredentials(
	ctx context.Context,
	logger *slog.Logger,
	engine domain.BrowserEngine,
	creds domain.Credentials,
) error {
	user, err := a.username.Await(ctx, engine, a.cfg.ElementWait, a.cfg.ElementPoll)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "Found username field", "strategy", user.Name)
	if err := engine.SendKeys(ctx, user.Selector, creds.Username()); err != nil {
		return fmt.Errorf("failed to enter username: %w", err)
	}

	pass, err := a.password.Locate(ctx, engine)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "Found password field", "strategy", pass.Name)
	if err := engine.SendKeys(ctx, pass.Selector, creds.Password()); err != nil {
		return fmt.Errorf("failed to enter password: %w", err)
	}
	return nil
}

// awaitApproval polls until the browser reaches the portal, the page shows
// an error or the timeout elapses.
func (a *InteractiveAuthenticator) awaitApproval(
	ctx context.Context,
	engine domain.BrowserEngine,
	timeout time.Duration,
) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()

	for {
		location, err := engine.Location(ctx)
		if err == nil && a.onPortal(location) {
			return nil
		}

		if text, err := engine.Text(ctx, errorSelector); err == nil && strings.TrimSpace(text) != "" {
			return fmt.Errorf("%w: %s", cperrors.ErrLoginFailed, strings.TrimSpace(text))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("%w: no approval within %s", cperrors.ErrTwoFactorTimeout, timeout)
		case <-ticker.C:
		}
	}
}

// onPortal reports whether location is a gateway page other than the login page.
func (a *InteractiveAuthenticator) onPortal(location string) bool {
	if strings.Contains(location, a.cfg.LoginPath) {
		return false
	}
	current, err := url.Parse(location)
	if err != nil {
		return false
	}
	gateway, err := url.Parse(a.cfg.GatewayURL)
	if err != nil {
		return false
	}
	return current.Scheme == gateway.Scheme && current.Host == gateway.Host
}

func (a *InteractiveAuthenticator) alert(ctx context.Context, logger *slog.Logger, timeout time.Duration) {
	logger.InfoContext(ctx, "Two-factor approval required, approve the login on your mobile device",
		"timeout", timeout)
	if !a.cfg.Alert {
		return
	}
	if _, err := fmt.Fprint(a.cfg.AlertWriter, "\a\a"); err != nil {
		logger.DebugContext(ctx, "Failed to ring alert", "error", err)
	}
}

// fail records and logs a failed login. The engine, if any, stays open for
// inspection until ResetSession or Close.
func (a *InteractiveAuthenticator) fail(
	ctx context.Context,
	logger *slog.Logger,
	engine domain.BrowserEngine,
	kind cperrors.LoginKind,
	stage string,
	err error,
) bool {
	var markup string
	if engine != nil {
		// The caller's context may already be done.
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), aliveProbeTimeout)
		markup, _ = engine.Markup(probeCtx)
		cancel()
	}

	loginErr := cperrors.NewLoginError(kind, stage, markup, err)
	a.lastErr.Store(loginErr)
	a.setState(ctx, StateFailed)

	logger.ErrorContext(ctx, "Interactive login failed",
		"stage", stage,
		"kind", string(kind),
		"error", err,
		"markup", loginErr.Markup)
	return false
}

func kindOf(err error) cperrors.LoginKind {
	switch {
	case errors.Is(err, cperrors.ErrTwoFactorTimeout):
		return cperrors.LoginKindTwoFactorTimeout
	case errors.Is(err, cperrors.ErrLoginElementNotFound):
		return cperrors.LoginKindElementNotFound
	case errors.Is(err, cperrors.ErrLoginFailed):
		return cperrors.LoginKindRejected
	default:
		return cperrors.LoginKindBrowser
	}
}

// IsSessionAlive reports whether a retained browser still holds an
// authenticated portal session.
func (a *InteractiveAuthenticator) IsSessionAlive() bool {
	if a.State() != StateAuthenticated {
		return false
	}

	a.engineMu.Lock()
	engine := a.engine
	a.engineMu.Unlock()
	if engine == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), aliveProbeTimeout)
	defer cancel()
	_, err := engine.Location(ctx)
	return err == nil
}

// ResetSession closes the browser so the next Login starts from scratch
// and requires a fresh approval.
func (a *InteractiveAuthenticator) ResetSession() {
	if err := a.closeEngine(); err != nil {
		a.logger.Debug("Failed to close browser", "error", err)
	}
	a.state.Store(int32(StateInit))
	a.logger.Info("Browser session reset, next login requires two-factor approval")
}

// Close releases the browser.
func (a *InteractiveAuthenticator) Close() error {
	return a.closeEngine()
}

func (a *InteractiveAuthenticator) closeEngine() error {
	a.engineMu.Lock()
	engine := a.engine
	a.engine = nil
	a.engineMu.Unlock()

	if engine == nil {
		return nil
	}
	return engine.Close()
}

// sleep waits for d or until ctx is done, reporting whether d elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
