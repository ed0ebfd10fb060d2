package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"

	"atm-simulator/internal/errors"
)

const (
	KindStandard = "standard"
	KindSavings  = "savings"
)

// minPINLength is the minimum number of digits a PIN must have.
const minPINLength = 4

// Account is the in-session working copy of one stored row. Balance and PIN
// hash are unexported; they change only through the validated mutators below.
type Account struct {
	Number    string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time

	pinHash string
	balance decimal.Decimal
	history []Entry
}

// HashPIN returns the SHA-256 hex digest of a plain-text PIN.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// ValidatePIN enforces the PIN rule: at least 4 characters, digits only.
func ValidatePIN(pin string) error {
	if len(pin) < minPINLength {
		return errors.ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.ErrInvalidPIN
		}
	}
	return nil
}

// NewAccount creates a fresh account with a hashed PIN. The initial balance
// must not be negative.
func NewAccount(number, pin string, balance decimal.Decimal) (*Account, error) {
	if number == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "account number is required")
	}
	if err := ValidatePIN(pin); err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}
	return &Account{
		Number:  number,
		Kind:    KindSavings,
		pinHash: HashPIN(pin),
		balance: balance,
	}, nil
}

// Rehydrate rebuilds an account from a stored row. The PIN is already hashed.
func Rehydrate(number, pinHash string, balance decimal.Decimal, kind string, createdAt, updatedAt time.Time) *Account {
	return &Account{
		Number:    number,
		Kind:      kind,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		pinHash:   pinHash,
		balance:   balance,
	}
}

// Authenticate compares a plain-text PIN against the stored digest.
func (a *Account) Authenticate(pin string) bool {
	return a.pinHash == HashPIN(pin)
}

// Balance returns the current balance without touching the session history.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// PINHash exposes the stored digest for persistence. There is no setter; the
// hash changes only through ChangePIN.
func (a *Account) PINHash() string {
	return a.pinHash
}

// BalanceInquiry returns the balance and records an inquiry entry in the
// session history.
func (a *Account) BalanceInquiry() decimal.Decimal {
	a.record(EntryInquiry, decimal.Zero)
	return a.balance
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errors.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(EntryDeposit, amount)
	return a.balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// The balance never goes negative.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errors.ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return decimal.Zero, errors.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.record(EntryWithdrawal, amount)
	return a.balance, nil
}

// ChangePIN replaces the stored digest after the old PIN has been verified
// and the new PIN passes the PIN rule.
func (a *Account) ChangePIN(oldPIN, newPIN string) error {
	if !a.Authenticate(oldPIN) {
		return errors.ErrAuthenticationFailed
	}
	if err := ValidatePIN(newPIN); err != nil {
		return err
	}
	a.pinHash = HashPIN(newPIN)
	return nil
}
