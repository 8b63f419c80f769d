package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cpgate/internal/domain"
	"cpgate/internal/mocks"
	"cpgate/internal/services/auth"
	"cpgate/internal/testutil"
)

func TestSSOAuthenticator_Approved(t *testing.T) {
	client := mocks.NewMockSessionClient(t)
	client.EXPECT().InitiateSSOLogin(mock.Anything, "trader", "secret").
		Return(&domain.SSOInitResponse{Connected: true}, nil).Once()
	client.EXPECT().GetAuthStatus(mock.Anything).
		Return(&domain.AuthStatus{Connected: true}, nil).Twice()
	client.EXPECT().GetAuthStatus(mock.Anything).
		Return(&domain.AuthStatus{Authenticated: true, Connected: true}, nil).Once()

	a := auth.NewSSOAuthenticator(client, 5*time.Millisecond, testutil.Logger())

	ok := a.Login(context.Background(), domain.NewCredentials("trader", "secret"), domain.DefaultLoginOptions())

	assert.True(t, ok)
	assert.True(t, a.IsSessionAlive())

	a.ResetSession()
	assert.False(t, a.IsSessionAlive())
}

func TestSSOAuthenticator_TimesOut(t *testing.T) {
	client := mocks.NewMockSessionClient(t)
	client.EXPECT().InitiateSSOLogin(mock.Anything, "trader", "secret").
		Return(&domain.SSOInitResponse{}, nil).Once()
	client.EXPECT().GetAuthStatus(mock.Anything).
		Return(&domain.AuthStatus{Message: "Not authenticated"}, nil)

	a := auth.NewSSOAuthenticator(client, 5*time.Millisecond, testutil.Logger())
	opts := domain.DefaultLoginOptions()
	opts.TwoFactorTimeout = 40 * time.Millisecond

	assert.False(t, a.Login(context.Background(), domain.NewCredentials("trader", "secret"), opts))
	assert.False(t, a.IsSessionAlive())
}

func TestSSOAuthenticator_InitFails(t *testing.T) {
	client := mocks.NewMockSessionClient(t)
	client.EXPECT().InitiateSSOLogin(mock.Anything, "trader", "secret").
		Return(nil, errors.New("connection refused")).Once()

	a := auth.NewSSOAuthenticator(client, 5*time.Millisecond, testutil.Logger())

	assert.False(t, a.Login(context.Background(), domain.NewCredentials("trader", "secret"), domain.DefaultLoginOptions()))
}

func TestSSOAuthenticator_IncompleteCredentials(t *testing.T) {
	client := mocks.NewMockSessionClient(t)
	a := auth.NewSSOAuthenticator(client, 5*time.Millisecond, testutil.Logger())

	assert.False(t, a.Login(context.Background(), domain.NewCredentials("", "secret"), domain.DefaultLoginOptions()))
	assert.NoError(t, a.Close())
}
