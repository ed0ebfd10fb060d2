package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"atm-simulator/internal/domain"
	"atm-simulator/internal/errors"
)

type AccountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AccountRepository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (account_number, pin_hash, balance, kind, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		account.Number,
		account.PINHash(),
		account.Balance().String(),
		account.Kind,
		now,
		now,
	)

	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok {
			if sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				r.logger.Warn("Duplicate account creation attempt", "account_number", account.Number)
				return errors.ErrDuplicateAccount
			}
		}
		r.logger.Error("Failed to create account", "account_number", account.Number, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create account").WithDetails(err.Error())
	}

	account.CreatedAt = now
	account.UpdatedAt = now
	r.logger.Info("Account created successfully", "account_number", account.Number)
	return nil
}

func (r *AccountRepository) GetAccount(number string) (*domain.Account, error) {
	query := `
		SELECT account_number, pin_hash, balance, kind, created_at, updated_at
		FROM accounts WHERE account_number = ?
	`

	var (
		accountNumber string
		pinHash       string
		balanceStr    string
		kind          string
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := r.db.QueryRow(query, number).Scan(
		&accountNumber,
		&pinHash,
		&balanceStr,
		&kind,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_number", number)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", "account_number", number, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get account").WithDetails(err.Error())
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		r.logger.Error("Failed to parse balance", "account_number", number, "balance_str", balanceStr, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to parse balance").WithDetails(err.Error())
	}

	return domain.Rehydrate(accountNumber, pinHash, balance, kind, createdAt, updatedAt), nil
}

// SaveAccount overwrites the stored row for an existing account. Each call
// commits before returning; there is no batching.
func (r *AccountRepository) SaveAccount(account *domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = ?, pin_hash = ?, updated_at = ?
		WHERE account_number = ?
	`

	now := time.Now()
	result, err := r.db.Exec(query, account.Balance().String(), account.PINHash(), now, account.Number)
	if err != nil {
		r.logger.Error("Failed to save account", "account_number", account.Number, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to save account").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No account found to save", "account_number", account.Number)
		return errors.ErrAccountNotFound
	}

	account.UpdatedAt = now
	r.logger.Info("Account saved", "account_number", account.Number, "balance", account.Balance())
	return nil
}
