package repository

import (
	"time"

	"atm-simulator/internal/domain"
)

type SeedAccount struct {
	Number string
	PIN    string
}

// DefaultSeedAccounts are the demo accounts installed when seeding is enabled.
var DefaultSeedAccounts = []SeedAccount{
	{Number: "1001", PIN: "1234"},
	{Number: "1002", PIN: "5678"},
	{Number: "1003", PIN: "0000"},
}

// Seed inserts the given accounts with a zero balance, skipping any account
// number that already exists.
func (r *AccountRepository) Seed(accounts []SeedAccount) error {
	query := `
		INSERT OR IGNORE INTO accounts (account_number, pin_hash, balance, kind, created_at, updated_at)
		VALUES (?, ?, '0', ?, ?, ?)
	`

	now := time.Now()
	for _, seed := range accounts {
		_, err := r.db.Exec(query, seed.Number, domain.HashPIN(seed.PIN), domain.KindSavings, now, now)
		if err != nil {
			r.logger.Error("Failed to seed account", "account_number", seed.Number, "error", err)
			return err
		}
	}

	r.logger.Info("Seed accounts installed", "count", len(accounts))
	return nil
}
