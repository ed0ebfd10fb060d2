package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime settings, loaded from ATM_* environment variables.
type Config struct {
	DBPath       string `envconfig:"DB_PATH" default:"atm_accounts.db"`
	SeedAccounts bool   `envconfig:"SEED_ACCOUNTS" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("atm", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
