package database

import (
	"context"

	"portal_pedidos/internal/adapter/persistence/postgres"
	"portal_pedidos/internal/infrastructure/config"

	"go.uber.org/zap"
)

// ConnectPostgres opens the pool and applies the embedded migrations.
func ConnectPostgres(ctx context.Context, conf *config.Database, log *zap.Logger) (*postgres.DB, error) {
	db, err := postgres.NewDB(ctx, conf.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("[database][postgres] connected and migrated")
	return db, nil
}
