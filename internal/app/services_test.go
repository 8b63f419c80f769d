package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/adapters/filesystem"
	"cpgate/internal/adapters/process"
	"cpgate/internal/app"
	"cpgate/internal/config"
	"cpgate/internal/mocks"
	"cpgate/internal/services/auth"
	"cpgate/internal/services/gateway"
	"cpgate/internal/services/session"
	"cpgate/internal/testutil"
)

func newFactory(t *testing.T, mutate func(*config.Config)) *app.ServiceFactory {
	t.Helper()
	settings := config.Default()
	if mutate != nil {
		mutate(settings)
	}
	logger := testutil.Logger()
	registry := gateway.NewRegistry(filesystem.New(), process.NewSpawner(logger), process.NewInspector(logger), logger)
	return app.NewServiceFactory(settings, registry, mocks.NewMockSecretStore(t), mocks.NewMockPasswordReader(t), logger)
}

func TestServiceFactory_SupervisorIsShared(t *testing.T) {
	f := newFactory(t, func(c *config.Config) { c.Gateway.Port = 5055 })

	first := f.Supervisor()
	second := f.Supervisor()

	assert.Same(t, first, second)
	assert.Equal(t, "localhost:5055", first.Address())
}

func TestServiceFactory_AuthenticatorFactory(t *testing.T) {
	browser := newFactory(t, nil)
	sso := newFactory(t, func(c *config.Config) { c.Auth.Method = config.AuthMethodSSO })
	client := mocks.NewMockSessionClient(t)

	_, isInteractive := browser.AuthenticatorFactory(client)().(*auth.InteractiveAuthenticator)
	assert.True(t, isInteractive)

	_, isSSO := sso.AuthenticatorFactory(client)().(*auth.SSOAuthenticator)
	assert.True(t, isSSO)
}

func TestServiceFactory_ConnectionWithoutGateway(t *testing.T) {
	f := newFactory(t, func(c *config.Config) {
		c.Gateway.Port = 1
		c.Gateway.AutoLaunch = false
		c.Gateway.ProbeTimeout = 50 * time.Millisecond
	})
	handle := f.SessionHandle(session.WithoutKeepAlive())
	defer handle.Close()

	conn := f.Connection(handle)

	require.False(t, conn.Connect(context.Background()))
	assert.False(t, conn.IsConnected())
}

func TestMonitorSettings(t *testing.T) {
	settings := config.Default()
	settings.Gateway.ReconnectDelaySeconds = 7
	settings.Gateway.AutoReconnect = false

	got := app.MonitorSettings(settings)

	assert.False(t, got.AutoReconnect)
	assert.Equal(t, 7*time.Second, got.ReconnectDelay)
}
