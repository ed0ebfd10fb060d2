package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"atm-simulator/internal/domain"
	"atm-simulator/internal/errors"
	"atm-simulator/internal/repository"
)

type Service struct {
	accounts *repository.AccountRepository
	logger   *slog.Logger
}

func NewService(accounts *repository.AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		logger:   logger,
	}
}

func (s *Service) CreateAccount(number, pin string, initialDeposit decimal.Decimal) (*domain.Account, error) {
	s.logger.Info("Creating account", "account_number", number, "initial_deposit", initialDeposit)

	account, err := domain.NewAccount(number, pin, initialDeposit)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.CreateAccount(account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login authenticates an account number and PIN and binds a session to the
// account. A missing account and a wrong PIN both surface as the same
// authentication failure; the caller cannot tell whether the account exists.
func (s *Service) Login(number, pin string) (*Session, error) {
	account, err := s.accounts.GetAccount(number)
	if err != nil {
		s.logger.Warn("Login failed", "account_number", number)
		return nil, errors.ErrAuthenticationFailed
	}

	if !account.Authenticate(pin) {
		s.logger.Warn("Login failed", "account_number", number)
		return nil, errors.ErrAuthenticationFailed
	}

	s.logger.Info("Login successful", "account_number", number)
	return &Session{
		account: account,
		service: s,
	}, nil
}
