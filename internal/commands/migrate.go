package commands

import (
	"fmt"

	"portal_pedidos/internal/infrastructure/config"
	"portal_pedidos/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("migrations only apply to the %s storage driver (STORAGE_DRIVER=%s)", config.StoragePostgres, cfg.Storage.Driver)
	}
	db, err := database.ConnectPostgres(cmd.Context(), cfg.Database, log)
	if err != nil {
		return err
	}
	db.Close()
	return nil
}
