package postgres

import (
	"context"
	"fmt"

	"github.com/BloggingApp/story-service/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnString(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, ConnString(cfg))
}

const createKVStoreTable = `CREATE TABLE IF NOT EXISTS kv_store(
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, createKVStoreTable)
	return err
}
