package migrations_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cperrors "cpgate/internal/errors"
	"cpgate/internal/migrations"
	"cpgate/internal/mocks"
	"cpgate/internal/testutil"
)

const secretsPath = "/home/trader/AutoRevOption/secrets.json"

func TestMigrator_ImportSecrets(t *testing.T) {
	ctx := context.Background()
	fs := mocks.NewMockFileSystemAdapter(t)
	repo := mocks.NewMockConfigRepository(t)
	store := mocks.NewMockSecretStore(t)

	// Legacy files were written with PascalCase keys.
	fs.EXPECT().ReadFile(secretsPath).Return([]byte(`{
  "IBKRCredentials": {"Username": "trader", "Password": "secret"},
  "TradingLimits": {"MaxDailyRisk": 500}
}`), nil)
	repo.EXPECT().SetValue(mock.Anything, "auth.username", "trader").Return(nil)
	repo.EXPECT().Path().Return("/home/trader/.config/cpgate/config.yaml")
	store.EXPECT().Set("trader", "secret").Return(nil)

	result, err := migrations.NewMigrator(fs, repo, store, testutil.Logger()).ImportSecrets(ctx, secretsPath)

	require.NoError(t, err)
	assert.Equal(t, migrations.Result{
		Username:       "trader",
		PasswordStored: true,
		ConfigPath:     "/home/trader/.config/cpgate/config.yaml",
	}, result)
}

func TestMigrator_ImportSecrets_UsernameOnly(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	repo := mocks.NewMockConfigRepository(t)
	store := mocks.NewMockSecretStore(t)

	fs.EXPECT().ReadFile(secretsPath).Return([]byte(`{"ibkrCredentials":{"username":"trader"}}`), nil)
	repo.EXPECT().SetValue(mock.Anything, "auth.username", "trader").Return(nil)
	repo.EXPECT().Path().Return("config.yaml")

	result, err := migrations.NewMigrator(fs, repo, store, testutil.Logger()).ImportSecrets(context.Background(), secretsPath)

	require.NoError(t, err)
	assert.False(t, result.PasswordStored)
}

func TestMigrator_ImportSecrets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		readErr error
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing file",
			readErr: os.ErrNotExist,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name: "invalid json",
			data: []byte(`{not json`),
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "invalid secrets file")
			},
		},
		{
			name: "no username",
			data: []byte(`{"IBKRCredentials":{"Password":"secret"}}`),
			check: func(t *testing.T, err error) {
				assert.True(t, cperrors.IsValidation(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystemAdapter(t)
			fs.EXPECT().ReadFile(secretsPath).Return(tt.data, tt.readErr)

			_, err := migrations.NewMigrator(fs, mocks.NewMockConfigRepository(t), nil, testutil.Logger()).
				ImportSecrets(context.Background(), secretsPath)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMigrator_ImportSecrets_KeyringFailure(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	repo := mocks.NewMockConfigRepository(t)
	store := mocks.NewMockSecretStore(t)

	fs.EXPECT().ReadFile(secretsPath).Return([]byte(`{"IBKRCredentials":{"Username":"trader","Password":"secret"}}`), nil)
	repo.EXPECT().SetValue(mock.Anything, "auth.username", "trader").Return(nil)
	repo.EXPECT().Path().Return("config.yaml")
	store.EXPECT().Set("trader", "secret").Return(errors.New("keyring locked"))

	result, err := migrations.NewMigrator(fs, repo, store, testutil.Logger()).ImportSecrets(context.Background(), secretsPath)

	require.Error(t, err)
	assert.Equal(t, "trader", result.Username)
	assert.False(t, result.PasswordStored)
}
