package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"atm-simulator/internal/config"
	"atm-simulator/internal/console"
	"atm-simulator/internal/repository"
	"atm-simulator/internal/service"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:          "atm",
		Short:        "Console ATM backed by a local SQLite database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dbPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database file (overrides ATM_DB_PATH)")
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func run(dbPath string) error {
	// Logs go to stderr so they do not interleave with the menu on stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	db, err := repository.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", "db_path", cfg.DBPath, "error", err)
		return err
	}
	defer db.Close()

	logger.Info("Database ready", "db_path", cfg.DBPath)

	accounts := repository.NewAccountRepository(db, logger)
	if cfg.SeedAccounts {
		if err := accounts.Seed(repository.DefaultSeedAccounts); err != nil {
			return err
		}
	}

	svc := service.NewService(accounts, logger)
	return console.New(svc, os.Stdin, os.Stdout).Run()
}
