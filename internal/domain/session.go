package domain

import "context"

// AuthStatus is the gateway's view of the brokerage session.
type AuthStatus struct {
	Authenticated bool   `json:"authenticated"`
	Competing     bool   `json:"competing"`
	Connected     bool   `json:"connected"`
	Message       string `json:"message"`
}

// Ready reports whether the session can serve requests.
func (s *AuthStatus) Ready() bool {
	return s != nil && s.Authenticated && s.Connected
}

// SSOInitResponse is returned when a headless SSO login is initiated.
type SSOInitResponse struct {
	Authenticated bool   `json:"authenticated"`
	Connected     bool   `json:"connected"`
	Competing     bool   `json:"competing"`
	Message       string `json:"message"`
}

// SessionClient talks to the gateway's REST API.
type SessionClient interface {
	GetAuthStatus(ctx context.Context) (*AuthStatus, error)
	Tickle(ctx context.Context) error
	Accounts(ctx context.Context) ([]Account, error)
	Positions(ctx context.Context, accountID string) ([]Position, error)
	AccountSummary(ctx context.Context) (*AccountSummary, error)
	InitiateSSOLogin(ctx context.Context, username, password string) (*SSOInitResponse, error)
}
