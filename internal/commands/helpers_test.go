package commands

import (
	"context"
	"sync"

	"cpgate/internal/domain"
)

// fakeConnection is a Connector that succeeds once connectResult is true.
type fakeConnection struct {
	mu            sync.Mutex
	connectResult bool
	connected     bool
	connectCalls  int
	accountID     string
	accounts      []domain.Account
	info          *domain.AccountInfo
	positions     []domain.PositionInfo
	loginErr      error
}

func (f *fakeConnection) Connect(context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connectCalls++
	f.connected = f.connectResult
	return f.connected
}

func (f *fakeConnection) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeConnection) AccountID() string {
	if !f.IsConnected() {
		return ""
	}
	return f.accountID
}

func (f *fakeConnection) State() domain.SessionState {
	if f.IsConnected() {
		return domain.SessionAuthenticated
	}
	return domain.SessionFailed
}

func (f *fakeConnection) LastLoginError() error {
	if f.IsConnected() {
		return nil
	}
	return f.loginErr
}

func (f *fakeConnection) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connectCalls
}

func (f *fakeConnection) Accounts(context.Context) []domain.Account {
	return f.accounts
}

func (f *fakeConnection) GetAccountInfo(context.Context) *domain.AccountInfo {
	return f.info
}

func (f *fakeConnection) GetPositions(context.Context) []domain.PositionInfo {
	return f.positions
}

// fakeKeeper records saved passwords.
type fakeKeeper struct {
	username string
	saved    string
	forgot   bool
	err      error
}

func (k *fakeKeeper) Username() string { return k.username }

func (k *fakeKeeper) Save(password string) error {
	if k.err != nil {
		return k.err
	}
	k.saved = password
	return nil
}

func (k *fakeKeeper) Forget() error {
	if k.err != nil {
		return k.err
	}
	k.forgot = true
	return nil
}
