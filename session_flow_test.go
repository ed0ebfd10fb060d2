package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"atm-simulator/internal/errors"
	"atm-simulator/internal/repository"
	"atm-simulator/internal/service"
)

// SessionFlowTestSuite runs the full account lifecycle against a real SQLite
// file: create, deposit, overdraft rejection, withdraw, PIN change, re-login.
type SessionFlowTestSuite struct {
	suite.Suite
	service *service.Service
	session *service.Session
}

func (s *SessionFlowTestSuite) SetupSuite() {
	db, err := repository.Open(filepath.Join(s.T().TempDir(), "atm_flow.db"))
	require.NoError(s.T(), err)
	s.T().Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = service.NewService(repository.NewAccountRepository(db, logger), logger)
}

// ------------------------------------------------------------------
// Steps below are helpers (non-test methods). They are executed in the
// order invoked by TestFlow, so each step builds on the previous one.
// ------------------------------------------------------------------

func (s *SessionFlowTestSuite) stepCreateAccount() {
	account, err := s.service.CreateAccount("1001", "4321", decimal.Zero)
	require.NoError(s.T(), err)
	assert.True(s.T(), account.Balance().IsZero())
}

func (s *SessionFlowTestSuite) stepDuplicateAccountRejected() {
	_, err := s.service.CreateAccount("1001", "0000", decimal.NewFromInt(50))
	assert.ErrorIs(s.T(), err, errors.ErrDuplicateAccount)
}

func (s *SessionFlowTestSuite) stepLogin() {
	session, err := s.service.Login("1001", "4321")
	require.NoError(s.T(), err)
	s.session = session
}

func (s *SessionFlowTestSuite) stepDeposit() {
	balance, err := s.session.Deposit(decimal.NewFromInt(500))
	require.NoError(s.T(), err)
	assert.True(s.T(), balance.Equal(decimal.NewFromInt(500)))
}

func (s *SessionFlowTestSuite) stepOverdraftRejected() {
	_, err := s.session.Withdraw(decimal.NewFromInt(700))
	assert.ErrorIs(s.T(), err, errors.ErrInsufficientFunds)

	balance, err := s.session.Balance()
	require.NoError(s.T(), err)
	assert.True(s.T(), balance.Equal(decimal.NewFromInt(500)), "failed withdrawal must not change the balance")
}

func (s *SessionFlowTestSuite) stepWithdraw() {
	balance, err := s.session.Withdraw(decimal.NewFromInt(200))
	require.NoError(s.T(), err)
	assert.True(s.T(), balance.Equal(decimal.NewFromInt(300)))
}

func (s *SessionFlowTestSuite) stepChangePIN() {
	require.NoError(s.T(), s.session.ChangePIN("4321", "9999"))
	s.session.Logout()
}

func (s *SessionFlowTestSuite) stepOldPINRejected() {
	_, err := s.service.Login("1001", "4321")
	assert.ErrorIs(s.T(), err, errors.ErrAuthenticationFailed)
}

func (s *SessionFlowTestSuite) stepNewPINAccepted() {
	session, err := s.service.Login("1001", "9999")
	require.NoError(s.T(), err)

	balance, err := session.Balance()
	require.NoError(s.T(), err)
	assert.True(s.T(), balance.Equal(decimal.NewFromInt(300)))
	session.Logout()
}

func (s *SessionFlowTestSuite) TestFlow() {
	s.stepCreateAccount()
	s.stepDuplicateAccountRejected()
	s.stepLogin()
	s.stepDeposit()
	s.stepOverdraftRejected()
	s.stepWithdraw()
	s.stepChangePIN()
	s.stepOldPINRejected()
	s.stepNewPINAccepted()
}

func TestSessionFlowTestSuite(t *testing.T) {
	suite.Run(t, new(SessionFlowTestSuite))
}
