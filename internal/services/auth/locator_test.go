package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/domain"
	cperrors "cpgate/internal/errors"
	"cpgate/internal/services/auth"
)

func TestFieldLocator_FirstMatchWins(t *testing.T) {
	page := newLoginPage()
	page.present["css=input[type='text']"] = true

	strategy, err := auth.UsernameLocator().Locate(context.Background(), page)

	require.NoError(t, err)
	assert.Equal(t, domain.Selector{Kind: domain.ByID, Value: "user_name"}, strategy.Selector)
	assert.Equal(t, []string{"id=user_name"}, page.lookupLog())
}

func TestFieldLocator_FallsBackInOrder(t *testing.T) {
	page := newLoginPage()
	page.present = map[string]bool{
		"name=username":           true,
		"css=input[name*='user']": true,
	}
	page.broken["id=username"] = true

	strategy, err := auth.UsernameLocator().Locate(context.Background(), page)

	require.NoError(t, err)
	assert.Equal(t, "by name username", strategy.Name)
	assert.Equal(t, []string{"id=user_name", "id=username", "name=username"}, page.lookupLog())
}

func TestFieldLocator_NotFound(t *testing.T) {
	page := newLoginPage()
	page.present = map[string]bool{}

	_, err := auth.PasswordLocator().Locate(context.Background(), page)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cperrors.ErrLoginElementNotFound))
	assert.Len(t, page.lookupLog(), 3)
}

func TestFieldLocator_AwaitSeesLateElement(t *testing.T) {
	page := newLoginPage()
	page.present = map[string]bool{}
	time.AfterFunc(30*time.Millisecond, func() {
		page.mu.Lock()
		page.present["id=username"] = true
		page.mu.Unlock()
	})

	strategy, err := auth.UsernameLocator().Await(context.Background(), page, time.Second, 5*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, domain.Selector{Kind: domain.ByID, Value: "username"}, strategy.Selector)
}

func TestFieldLocator_AwaitTimesOut(t *testing.T) {
	page := newLoginPage()
	page.present = map[string]bool{}

	start := time.Now()
	_, err := auth.UsernameLocator().Await(context.Background(), page, 50*time.Millisecond, 5*time.Millisecond)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cperrors.ErrLoginElementNotFound))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSubmitLocator_Strategies(t *testing.T) {
	strategies := auth.SubmitLocator().Strategies()

	require.Len(t, strategies, 4)
	assert.Equal(t, domain.Selector{Kind: domain.ByID, Value: "submitForm"}, strategies[0].Selector)
	assert.Equal(t, domain.ByXPath, strategies[3].Selector.Kind)
	assert.Equal(t, "//button[contains(text(), 'Log') or contains(text(), 'log')]", strategies[3].Selector.Value)
}
