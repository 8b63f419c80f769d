// Package portal ties the gateway supervisor, the session handle and an
// authenticator into one connection that client code can use.
package portal

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

const defaultVerifyDelay = 2 * time.Second

// AuthenticatorFactory creates the authenticator used for one login.
type AuthenticatorFactory func() domain.Authenticator

// Config tunes a Connection.
type Config struct {
	// VerifyDelay is how long to wait after a login before checking the
	// gateway's view of the session.
	VerifyDelay  time.Duration
	LoginOptions domain.LoginOptions
}

// DefaultConfig returns a two second verification delay and default login options.
func DefaultConfig() Config {
	return Config{
		VerifyDelay:  defaultVerifyDelay,
		LoginOptions: domain.DefaultLoginOptions(),
	}
}

// Connection is an authenticated session against one gateway.
type Connection struct {
	supervisor  domain.GatewaySupervisor
	client      domain.SessionClient
	credentials domain.CredentialProvider
	newAuth     AuthenticatorFactory
	cfg         Config
	logger      *slog.Logger

	// connectMu serializes Connect; mu guards the fields below.
	connectMu sync.Mutex
	mu        sync.Mutex
	auth      domain.Authenticator
	connected bool
	accountID string
	state     domain.SessionState
	loginErr  error
}

// loginFailureReporter is implemented by authenticators that classify why
// their last login failed.
type loginFailureReporter interface {
	LastError() *errors.LoginError
}

// NewConnection creates a disconnected connection. supervisor may be nil
// when the gateway is managed elsewhere.
func NewConnection(
	supervisor domain.GatewaySupervisor,
	client domain.SessionClient,
	credentials domain.CredentialProvider,
	newAuth AuthenticatorFactory,
	cfg Config,
	logger *slog.Logger,
) *Connection {
	if cfg.VerifyDelay < 0 {
		cfg.VerifyDelay = 0
	}
	return &Connection{
		supervisor:  supervisor,
		client:      client,
		credentials: credentials,
		newAuth:     newAuth,
		cfg:         cfg,
		logger:      logger,
		state:       domain.SessionUnauthenticated,
	}
}

// Connect makes sure the gateway runs and holds an authenticated session.
// An existing session is reused without touching credentials or the
// authenticator. Failures are logged and reported as false.
func (c *Connection) Connect(ctx context.Context) bool {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	logger := c.logger.With("attempt", uuid.NewString())
	c.setLoginError(nil)

	if c.supervisor != nil && !c.supervisor.EnsureRunning(ctx) {
		logger.ErrorContext(ctx, "Gateway is not running", "address", c.supervisor.Address())
		c.setDisconnected(domain.SessionUnauthenticated)
		return false
	}

	status, err := c.client.GetAuthStatus(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to check auth status", "error", err)
	} else if status.Ready() {
		logger.InfoContext(ctx, "Gateway session already authenticated")
		c.establish(ctx, logger)
		return true
	}

	logger.InfoContext(ctx, "Gateway session not authenticated, starting login")

	creds, err := c.credentials.Credentials(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "No credentials for login", "error", err)
		c.setDisconnected(domain.SessionFailed)
		return false
	}

	auth := c.replaceAuthenticator()
	c.setState(domain.SessionLoggingIn)

	if !auth.Login(ctx, creds, c.cfg.LoginOptions) {
		attrs := []any{"user", creds.Username()}
		if reporter, ok := auth.(loginFailureReporter); ok {
			if loginErr := reporter.LastError(); loginErr != nil {
				attrs = append(attrs, "error", loginErr)
				c.setLoginError(loginErr)
			}
		}
		logger.ErrorContext(ctx, "Login failed", attrs...)
		c.disposeAuthenticator()
		c.setDisconnected(domain.SessionFailed)
		return false
	}

	logger.DebugContext(ctx, "Verifying session", "delay", c.cfg.VerifyDelay)
	if !sleep(ctx, c.cfg.VerifyDelay) {
		logger.WarnContext(ctx, "Connect cancelled during verification", "error", ctx.Err())
		c.setDisconnected(domain.SessionFailed)
		return false
	}

	status, err = c.client.GetAuthStatus(ctx)
	if err != nil || !status.Ready() {
		attrs := []any{"error", errors.ErrAuthVerification}
		if err != nil {
			attrs = append(attrs, "cause", err)
		}
		if status != nil {
			attrs = append(attrs,
				"authenticated", status.Authenticated,
				"connected", status.Connected,
				"message", status.Message)
		}
		logger.ErrorContext(ctx, "Authentication could not be verified", attrs...)
		c.setDisconnected(domain.SessionFailed)
		return false
	}

	c.establish(ctx, logger)
	logger.InfoContext(ctx, "Connected", "account", c.AccountID())
	return true
}

func (c *Connection) establish(ctx context.Context, logger *slog.Logger) {
	var accountID string
	accounts, err := c.client.Accounts(ctx)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "Failed to list accounts", "error", err)
	case len(accounts) == 0:
		logger.WarnContext(ctx, "No accounts available for this session")
	default:
		accountID = accounts[0].AccountID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	c.accountID = accountID
	c.state = domain.SessionAuthenticated
}

func (c *Connection) replaceAuthenticator() domain.Authenticator {
	c.disposeAuthenticator()

	auth := c.newAuth()
	c.mu.Lock()
	c.auth = auth
	c.mu.Unlock()
	return auth
}

func (c *Connection) disposeAuthenticator() {
	c.mu.Lock()
	auth := c.auth
	c.auth = nil
	c.mu.Unlock()

	if auth == nil {
		return
	}
	if err := auth.Close(); err != nil {
		c.logger.Debug("Failed to close authenticator", "error", err)
	}
}

func (c *Connection) setState(state domain.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *Connection) setDisconnected(state domain.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	c.state = state
}

func (c *Connection) setLoginError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loginErr = err
}

// LastLoginError returns why the most recent Connect failed to log in, or
// nil when the authenticator did not report a classified failure.
func (c *Connection) LastLoginError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginErr
}

// requestFailed logs a failed read. A rejected session is recorded as expired.
func (c *Connection) requestFailed(ctx context.Context, msg string, err error, attrs ...any) {
	c.logger.WarnContext(ctx, msg, append(attrs, "error", err)...)
	if errors.IsUnauthorized(err) {
		c.logger.WarnContext(ctx, "Gateway rejected the session", "error", errors.ErrSessionExpired)
		c.MarkExpired()
	}
}

// MarkExpired records that the gateway no longer reports the session as
// authenticated.
func (c *Connection) MarkExpired() {
	c.setDisconnected(domain.SessionExpired)
}

// IsConnected reports whether the last Connect succeeded.
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// AccountID returns the primary account, empty until connected.
func (c *Connection) AccountID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accountID
}

// State returns the session lifecycle state.
func (c *Connection) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) ready() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accountID, c.connected && c.accountID != ""
}

// GetAccountInfo returns the selected account, or nil when disconnected or
// the request fails.
func (c *Connection) GetAccountInfo(ctx context.Context) *domain.AccountInfo {
	accountID, ok := c.ready()
	if !ok {
		return nil
	}

	summary, err := c.client.AccountSummary(ctx)
	if err != nil {
		c.requestFailed(ctx, "Failed to get account info", err, "account", accountID)
		return nil
	}
	return toAccountInfo(summary, accountID)
}

// GetPositions returns the positions of the primary account, or an empty
// slice when disconnected or the request fails.
func (c *Connection) GetPositions(ctx context.Context) []domain.PositionInfo {
	accountID, ok := c.ready()
	if !ok {
		return []domain.PositionInfo{}
	}

	positions, err := c.client.Positions(ctx, accountID)
	if err != nil {
		c.requestFailed(ctx, "Failed to get positions", err, "account", accountID)
		return []domain.PositionInfo{}
	}

	result := make([]domain.PositionInfo, 0, len(positions))
	for _, p := range positions {
		result = append(result, toPositionInfo(p, accountID))
	}
	return result
}

// Accounts lists all accounts of the session, or nil when disconnected or
// the request fails.
func (c *Connection) Accounts(ctx context.Context) []domain.Account {
	if !c.IsConnected() {
		return nil
	}

	accounts, err := c.client.Accounts(ctx)
	if err != nil {
		c.requestFailed(ctx, "Failed to list accounts", err)
		return nil
	}
	return accounts
}

// IsSessionAlive reports whether the authenticator still holds a browser session.
func (c *Connection) IsSessionAlive() bool {
	c.mu.Lock()
	auth := c.auth
	c.mu.Unlock()
	return auth != nil && auth.IsSessionAlive()
}

// ResetSession drops the browser session so the next login needs a fresh approval.
func (c *Connection) ResetSession() {
	c.mu.Lock()
	auth := c.auth
	c.mu.Unlock()
	if auth != nil {
		auth.ResetSession()
	}
	c.setDisconnected(domain.SessionUnauthenticated)
}

// Disconnect marks the connection disconnected. The gateway session and
// any browser are left alone.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	if c.state == domain.SessionAuthenticated {
		c.state = domain.SessionUnauthenticated
	}
}

// Close disconnects and releases the authenticator.
func (c *Connection) Close() error {
	c.mu.Lock()
	auth := c.auth
	c.auth = nil
	c.connected = false
	c.mu.Unlock()

	if auth == nil {
		return nil
	}
	return auth.Close()
}

// SecType derives the security type of a position.
func SecType(p domain.Position) string {
	switch {
	case p.PutOrCall != "":
		return domain.SecTypeOption
	case p.Expiry != "":
		return domain.SecTypeFuture
	default:
		return domain.SecTypeStock
	}
}

func toPositionInfo(p domain.Position, accountID string) domain.PositionInfo {
	account := p.AcctID
	if account == "" {
		account = accountID
	}
	return domain.PositionInfo{
		AccountID:     account,
		ConID:         p.Conid,
		Symbol:        p.Ticker,
		Description:   p.ContractDesc,
		SecType:       SecType(p),
		Quantity:      p.Position,
		MarketPrice:   p.MktPrice,
		MarketValue:   p.MktValue,
		AverageCost:   p.AvgCost,
		RealizedPnL:   p.RealizedPnl,
		UnrealizedPnL: p.UnrealizedPnl,
		Currency:      p.Currency,
		Expiry:        p.Expiry,
		Right:         p.PutOrCall,
		Strike:        p.Strike,
		Multiplier:    p.Multiplier,
	}
}

func toAccountInfo(s *domain.AccountSummary, accountID string) *domain.AccountInfo {
	if s.AccountID != "" {
		accountID = s.AccountID
	}
	values := map[string]string{
		"accountVan":    s.AccountVan,
		"accountStatus": strconv.FormatInt(s.AccountStatus, 10),
		"faclient":      strconv.FormatBool(s.Faclient),
		"covestor":      strconv.FormatBool(s.Covestor),
	}
	if s.Desc != "" {
		values["desc"] = s.Desc
	}
	return &domain.AccountInfo{
		AccountID:   accountID,
		Title:       s.AccountTitle,
		Alias:       s.AccountAlias,
		Currency:    s.Currency,
		Type:        s.Type,
		TradingType: s.TradingType,
		Clearing:    s.ClearingStatus,
		Values:      values,
	}
}

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
