package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryInquiry    EntryType = "INQUIRY"
	EntryDeposit    EntryType = "DEPOSIT"
	EntryWithdrawal EntryType = "WITHDRAW"
)

// Entry is one in-session transaction record. History lives in memory only
// and is discarded on logout.
type Entry struct {
	ID           uuid.UUID       `json:"id"`
	Type         EntryType       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	At           time.Time       `json:"at"`
}

func (a *Account) record(t EntryType, amount decimal.Decimal) {
	a.history = append(a.history, Entry{
		ID:           uuid.New(),
		Type:         t,
		Amount:       amount,
		BalanceAfter: a.balance,
		At:           time.Now(),
	})
}

// History returns a copy of the session transaction records.
func (a *Account) History() []Entry {
	out := make([]Entry, len(a.history))
	copy(out, a.history)
	return out
}
