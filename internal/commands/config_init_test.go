package commands

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cpgate/internal/config"
	"cpgate/internal/errors"
	"cpgate/internal/mocks"
	"cpgate/internal/testutil"
)

func TestConfigInitCommand_Execute(t *testing.T) {
	repo := mocks.NewMockConfigRepository(t)
	repo.EXPECT().Path().Return("/home/u/.config/cpgate/config.yaml")
	repo.EXPECT().Write(mock.Anything, mock.MatchedBy(func(doc any) bool {
		cfg, ok := doc.(*config.Config)
		return ok &&
			cfg.Auth.Username == "trader" &&
			cfg.Gateway.InstallDir == "/opt/clientportal" &&
			cfg.Gateway.Port == 5000
	}), false).Return(nil)

	result, err := NewConfigInitCommand(repo, testutil.Logger()).Execute(context.Background(), ConfigInitRequest{
		Username:   "trader",
		InstallDir: "/opt/clientportal",
	})

	require.NoError(t, err)
	assert.Equal(t, "/home/u/.config/cpgate/config.yaml", result.Path)
}

func TestConfigInitCommand_Execute_Exists(t *testing.T) {
	repo := mocks.NewMockConfigRepository(t)
	repo.EXPECT().Write(mock.Anything, mock.Anything, false).
		Return(errors.NewConfigurationError("", "", "configuration file already exists", os.ErrExist))

	result, err := NewConfigInitCommand(repo, testutil.Logger()).Execute(context.Background(), ConfigInitRequest{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Contains(t, err.Error(), "failed to write configuration")
}
