package service

import (
	"github.com/shopspring/decimal"

	"atm-simulator/internal/domain"
	"atm-simulator/internal/errors"
)

// Session is the period between a successful login and logout. Operations
// mutate the in-memory account and persist it back to the store on success;
// on any entity-level failure nothing is persisted and the error passes
// through unchanged.
type Session struct {
	account *domain.Account
	service *Service
	closed  bool
}

// AccountNumber identifies the authenticated account.
func (s *Session) AccountNumber() string {
	return s.account.Number
}

func (s *Session) Balance() (decimal.Decimal, error) {
	if s.closed {
		return decimal.Zero, errors.ErrSessionClosed
	}
	return s.account.BalanceInquiry(), nil
}

func (s *Session) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if s.closed {
		return decimal.Zero, errors.ErrSessionClosed
	}

	newBalance, err := s.account.Deposit(amount)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.service.accounts.SaveAccount(s.account); err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

func (s *Session) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if s.closed {
		return decimal.Zero, errors.ErrSessionClosed
	}

	newBalance, err := s.account.Withdraw(amount)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.service.accounts.SaveAccount(s.account); err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

func (s *Session) ChangePIN(oldPIN, newPIN string) error {
	if s.closed {
		return errors.ErrSessionClosed
	}

	if err := s.account.ChangePIN(oldPIN, newPIN); err != nil {
		return err
	}

	return s.service.accounts.SaveAccount(s.account)
}

func (s *Session) History() ([]domain.Entry, error) {
	if s.closed {
		return nil, errors.ErrSessionClosed
	}
	return s.account.History(), nil
}

// Logout discards the session. It has no persistence implication.
func (s *Session) Logout() {
	if !s.closed {
		s.service.logger.Info("Logout", "account_number", s.account.Number)
	}
	s.closed = true
}
