// Package session talks to the gateway REST API on behalf of one authenticated session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

const (
	authStatusPath    = "/iserver/auth/status"
	ticklePath        = "/tickle"
	ssoInitPath       = "/iserver/auth/ssodh/init"
	accountsPath      = "/portfolio/accounts"
	positionsPathTmpl = "/portfolio/%s/positions/0"
	accountPath       = "/iserver/account"

	// NotAuthenticatedMessage is reported when the gateway rejects a status request.
	NotAuthenticatedMessage = "Not authenticated"

	// DefaultKeepAliveInterval is the tickle period.
	DefaultKeepAliveInterval = time.Minute

	maxErrorBody = 512
)

// Handle is a REST session against one gateway. It keeps the session warm
// with a periodic tickle until Close is called.
type Handle struct {
	http      domain.HTTPAdapter
	keepAlive *KeepAlive
	logger    *slog.Logger
}

// Option configures a Handle.
type Option func(*handleOptions)

type handleOptions struct {
	keepAliveInterval time.Duration
	keepAlive         bool
}

// WithKeepAliveInterval overrides the tickle period.
func WithKeepAliveInterval(interval time.Duration) Option {
	return func(o *handleOptions) {
		o.keepAliveInterval = interval
	}
}

// WithoutKeepAlive disables the periodic tickle.
func WithoutKeepAlive() Option {
	return func(o *handleOptions) {
		o.keepAlive = false
	}
}

// NewHandle creates a handle. Unless disabled, the first keep-alive tick
// fires one interval after construction.
func NewHandle(httpAdapter domain.HTTPAdapter, logger *slog.Logger, opts ...Option) *Handle {
	options := handleOptions{
		keepAliveInterval: DefaultKeepAliveInterval,
		keepAlive:         true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	h := &Handle{
		http:   httpAdapter,
		logger: logger,
	}

	if options.keepAlive {
		h.keepAlive = NewKeepAlive(options.keepAliveInterval, h.Tickle, logger)
		h.keepAlive.Start(context.Background())
	}

	return h
}

// GetAuthStatus asks the gateway for the session state. A non-2xx answer is
// reported as an unauthenticated status; only transport and decoding
// failures produce an error.
func (h *Handle) GetAuthStatus(ctx context.Context) (*domain.AuthStatus, error) {
	resp, err := h.http.Post(ctx, authStatusPath, nil)
	if err != nil {
		return nil, errors.NewTransportError(http.MethodPost, authStatusPath, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		h.logger.DebugContext(ctx, "Auth status rejected", "status", resp.StatusCode)
		return &domain.AuthStatus{Message: NotAuthenticatedMessage}, nil
	}

	var status domain.AuthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode auth status: %w", err)
	}

	h.logger.DebugContext(ctx, "Auth status",
		"authenticated", status.Authenticated,
		"connected", status.Connected,
		"competing", status.Competing)
	return &status, nil
}

// Tickle pings the gateway to keep the session alive.
func (h *Handle) Tickle(ctx context.Context) error {
	resp, err := h.http.Post(ctx, ticklePath, nil)
	if err != nil {
		return errors.NewTransportError(http.MethodPost, ticklePath, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return httpError(resp, http.MethodPost, ticklePath)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// InitiateSSOLogin starts a headless login; approval happens on the user's device.
func (h *Handle) InitiateSSOLogin(ctx context.Context, username, password string) (*domain.SSOInitResponse, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var result domain.SSOInitResponse
	if err := h.postJSON(ctx, ssoInitPath, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Accounts lists the brokerage accounts of the session.
func (h *Handle) Accounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := h.getJSON(ctx, accountsPath, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Positions returns the first page of positions for an account.
func (h *Handle) Positions(ctx context.Context, accountID string) ([]domain.Position, error) {
	path := fmt.Sprintf(positionsPathTmpl, url.PathEscape(accountID))

	var positions []domain.Position
	if err := h.getJSON(ctx, path, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// AccountSummary returns the selected account of the session.
func (h *Handle) AccountSummary(ctx context.Context) (*domain.AccountSummary, error) {
	var summary domain.AccountSummary
	if err := h.getJSON(ctx, accountPath, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// KeepAlive returns the keep-alive task, or nil when disabled.
func (h *Handle) KeepAlive() *KeepAlive {
	return h.keepAlive
}

// Close stops the keep-alive and releases idle connections. It does not
// touch the browser session or the gateway process.
func (h *Handle) Close() {
	if h.keepAlive != nil {
		h.keepAlive.Stop()
	}
	h.http.CloseIdleConnections()
}

func (h *Handle) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.http.Get(ctx, path)
	if err != nil {
		return errors.NewTransportError(http.MethodGet, path, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return httpError(resp, http.MethodGet, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (h *Handle) postJSON(ctx context.Context, path string, payload, out any) error {
	resp, err := h.http.Post(ctx, path, payload)
	if err != nil {
		return errors.NewTransportError(http.MethodPost, path, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return httpError(resp, http.MethodPost, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func httpError(resp *http.Response, method, path string) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return errors.NewHTTPErrorWithCause(resp.StatusCode, method, path, string(body), err)
	}
	return errors.NewHTTPError(resp.StatusCode, method, path, string(body))
}
