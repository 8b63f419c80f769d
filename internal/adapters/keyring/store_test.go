package keyring

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cperrors "cpgate/internal/errors"
)

func TestStore_SetGetRemove(t *testing.T) {
	store := NewWithKeyring(keyring.NewArrayKeyring(nil))

	require.NoError(t, store.Set("trader", "s3cret"))

	password, err := store.Get("trader")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)

	require.NoError(t, store.Set("trader", "rotated"))
	password, err = store.Get("trader")
	require.NoError(t, err)
	assert.Equal(t, "rotated", password)

	require.NoError(t, store.Remove("trader"))
	_, err = store.Get("trader")
	assert.ErrorIs(t, err, cperrors.ErrNotFound)
}

func TestStore_MissingEntries(t *testing.T) {
	store := NewWithKeyring(keyring.NewArrayKeyring([]keyring.Item{{Key: "other", Data: []byte("x")}}))

	_, err := store.Get("trader")
	require.Error(t, err)
	assert.True(t, cperrors.IsNotFound(err))

	err = store.Remove("trader")
	assert.ErrorIs(t, err, cperrors.ErrNotFound)
}

func TestStore_OpenFailureIsSticky(t *testing.T) {
	calls := 0
	store := &Store{
		open: func() (keyring.Keyring, error) {
			calls++
			return nil, errors.New("no backend available")
		},
	}

	_, err := store.Get("trader")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open keyring")

	err = store.Set("trader", "x")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
