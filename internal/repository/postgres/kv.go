package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type kvRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) repository.Storage {
	return &kvRepo{
		db: db,
	}
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.QueryRow(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrKeyNotFound
		}
		return "", err
	}

	return value, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value string) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO kv_store(key, value) VALUES($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key,
		value,
	)
	return err
}

func (r *kvRepo) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, "DELETE FROM kv_store WHERE key = ANY($1)", keys)
	return err
}
