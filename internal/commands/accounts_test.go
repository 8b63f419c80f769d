package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/domain"
	"cpgate/internal/testutil"
)

func TestAccountsCommand_Execute(t *testing.T) {
	conn := &fakeConnection{
		connectResult: true,
		accountID:     "U123",
		accounts: []domain.Account{
			{AccountID: "U123", Currency: "USD"},
			{AccountID: "U456", Currency: "EUR"},
		},
		info: &domain.AccountInfo{AccountID: "U123", Currency: "USD"},
	}

	result, err := NewAccountsCommand(conn, testutil.Logger()).Execute(context.Background(), AccountsRequest{})

	require.NoError(t, err)
	assert.Len(t, result.Accounts, 2)
	assert.Equal(t, "U123", result.Selected)
	require.NotNil(t, result.Summary)
	assert.Equal(t, "USD", result.Summary.Currency)
}

func TestAccountsCommand_Execute_NotConnected(t *testing.T) {
	conn := &fakeConnection{}

	result, err := NewAccountsCommand(conn, testutil.Logger()).Execute(context.Background(), AccountsRequest{})

	require.ErrorIs(t, err, ErrNotConnected)
	assert.Nil(t, result)
}

func TestPositionsCommand_Execute(t *testing.T) {
	conn := &fakeConnection{
		connectResult: true,
		accountID:     "U123",
		positions: []domain.PositionInfo{
			{Symbol: "AAPL", SecType: domain.SecTypeStock, Quantity: 10},
			{Symbol: "ES", SecType: domain.SecTypeFuture, Quantity: 1},
			{Symbol: "MSFT", SecType: domain.SecTypeStock, Quantity: 5},
		},
	}
	cmd := NewPositionsCommand(conn, testutil.Logger())

	all, err := cmd.Execute(context.Background(), PositionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "U123", all.AccountID)
	assert.Len(t, all.Positions, 3)

	stocks, err := cmd.Execute(context.Background(), PositionsRequest{SecType: "stk"})
	require.NoError(t, err)
	require.Len(t, stocks.Positions, 2)
	assert.Equal(t, "AAPL", stocks.Positions[0].Symbol)
	assert.Equal(t, "MSFT", stocks.Positions[1].Symbol)
	assert.Equal(t, 1, conn.calls())
}

func TestPositionsCommand_Execute_Exclude(t *testing.T) {
	conn := &fakeConnection{
		connectResult: true,
		accountID:     "U123",
		positions: []domain.PositionInfo{
			{Symbol: "AAPL", SecType: domain.SecTypeStock},
			{Symbol: "SPY", SecType: domain.SecTypeStock},
			{Symbol: "ES", SecType: domain.SecTypeFuture},
		},
	}

	result, err := NewPositionsCommand(conn, testutil.Logger()).
		Execute(context.Background(), PositionsRequest{Exclude: []string{"^SPY$", "^ES$"}})

	require.NoError(t, err)
	require.Len(t, result.Positions, 1)
	assert.Equal(t, "AAPL", result.Positions[0].Symbol)
}

func TestPositionsCommand_Execute_InvalidExclude(t *testing.T) {
	conn := &fakeConnection{connectResult: true}

	result, err := NewPositionsCommand(conn, testutil.Logger()).
		Execute(context.Background(), PositionsRequest{Exclude: []string{"("}})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, conn.calls())
}

func TestPositionsCommand_Execute_NotConnected(t *testing.T) {
	result, err := NewPositionsCommand(&fakeConnection{}, testutil.Logger()).
		Execute(context.Background(), PositionsRequest{})

	require.ErrorIs(t, err, ErrNotConnected)
	assert.Nil(t, result)
}
