package credentials_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cperrors "cpgate/internal/errors"
	"cpgate/internal/mocks"
	"cpgate/internal/services/credentials"
	"cpgate/internal/testutil"
)

type ChainTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *mocks.MockSecretStore
	reader *mocks.MockPasswordReader
	env    map[string]string
}

func (s *ChainTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = mocks.NewMockSecretStore(s.T())
	s.reader = mocks.NewMockPasswordReader(s.T())
	s.env = map[string]string{}
}

func (s *ChainTestSuite) chain(username string) *credentials.Chain {
	return credentials.NewChain(username, s.store, s.reader, testutil.Logger(),
		credentials.WithEnvLookup(func(key string) (string, bool) {
			v, ok := s.env[key]
			return v, ok
		}))
}

func (s *ChainTestSuite) TestEnvironmentWins() {
	s.env[credentials.PasswordEnv] = "from-env"

	creds, err := s.chain("trader").Credentials(s.ctx)

	s.Require().NoError(err)
	s.Equal("trader", creds.Username())
	s.Equal("from-env", creds.Password())
}

func (s *ChainTestSuite) TestKeyring() {
	s.store.EXPECT().Get("trader").Return("from-keyring", nil).Once()

	creds, err := s.chain("trader").Credentials(s.ctx)

	s.Require().NoError(err)
	s.Equal("from-keyring", creds.Password())
}

func (s *ChainTestSuite) TestPromptWhenKeyringEmpty() {
	s.store.EXPECT().Get("trader").Return("", fmt.Errorf("trader: %w", cperrors.ErrNotFound)).Once()
	s.reader.EXPECT().IsInteractive().Return(true).Once()
	s.reader.EXPECT().ReadPassword(mock.Anything, "Password for trader: ").Return("typed", nil).Once()

	creds, err := s.chain("trader").Credentials(s.ctx)

	s.Require().NoError(err)
	s.Equal("typed", creds.Password())
}

func (s *ChainTestSuite) TestKeyringFailureFallsThrough() {
	s.store.EXPECT().Get("trader").Return("", errors.New("dbus unavailable")).Once()
	s.reader.EXPECT().IsInteractive().Return(true).Once()
	s.reader.EXPECT().ReadPassword(mock.Anything, mock.Anything).Return("typed", nil).Once()

	creds, err := s.chain("trader").Credentials(s.ctx)

	s.Require().NoError(err)
	s.Equal("typed", creds.Password())
}

func (s *ChainTestSuite) TestNonInteractiveWithoutPassword() {
	s.store.EXPECT().Get("trader").Return("", cperrors.ErrNotFound).Once()
	s.reader.EXPECT().IsInteractive().Return(false).Once()

	_, err := s.chain("trader").Credentials(s.ctx)

	s.Require().Error(err)
	s.True(cperrors.IsConfiguration(err))
	s.True(cperrors.IsNotFound(err))
}

func (s *ChainTestSuite) TestPromptError() {
	s.store.EXPECT().Get("trader").Return("", cperrors.ErrNotFound).Once()
	s.reader.EXPECT().IsInteractive().Return(true).Once()
	s.reader.EXPECT().ReadPassword(mock.Anything, mock.Anything).Return("", context.Canceled).Once()

	_, err := s.chain("trader").Credentials(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, context.Canceled)
}

func (s *ChainTestSuite) TestUsernameRequired() {
	s.env[credentials.PasswordEnv] = "from-env"

	_, err := s.chain("").Credentials(s.ctx)

	s.Require().Error(err)
	s.True(cperrors.IsConfiguration(err))
}

func (s *ChainTestSuite) TestSaveAndForget() {
	s.store.EXPECT().Set("trader", "secret").Return(nil).Once()
	s.store.EXPECT().Remove("trader").Return(nil).Once()

	c := s.chain("trader")

	s.Require().NoError(c.Save("secret"))
	s.Require().NoError(c.Forget())
}

func TestChainTestSuite(t *testing.T) {
	suite.Run(t, new(ChainTestSuite))
}

func TestChain_NilSources(t *testing.T) {
	c := credentials.NewChain("trader", nil, nil, testutil.Logger(),
		credentials.WithEnvLookup(func(string) (string, bool) { return "", false }))

	_, err := c.Credentials(context.Background())
	if !cperrors.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if err := c.Save("x"); !cperrors.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
