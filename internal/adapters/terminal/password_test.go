package terminal

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/errors"
)

func TestAdapter_ReadPassword_NonInteractive(t *testing.T) {
	var stderr bytes.Buffer
	adapter := NewAdapter(strings.NewReader("secret\n"), &stderr)

	assert.False(t, adapter.IsInteractive())

	_, err := adapter.ReadPassword(context.Background(), "Password: ")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "non-interactive")
	assert.Empty(t, stderr.String(), "prompt must not be printed when input is not a terminal")
}

func TestAdapter_ReadPassword_CancelledContext(t *testing.T) {
	adapter := NewAdapter(strings.NewReader(""), &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ReadPassword(ctx, "Password: ")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAdapter_RegularFileIsNotInteractive(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	adapter := NewAdapter(f, &bytes.Buffer{})

	assert.False(t, adapter.IsInteractive())
}
