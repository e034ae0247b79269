package kv

import (
	"context"
	"errors"

	"eatery-api/internal/infra"
	"eatery-api/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps the collections in a single kv_entries table.
// CompareAndSwap maps to a conditional UPDATE so concurrent writers cannot
// silently clobber each other.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg config.DBConfig) (*PostgresStore, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to create connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to ping database", err)
	}

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to ensure kv_entries table", err)
	}

	return &PostgresStore{pool: pool}, pool.Close, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to read key "+key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to write key "+key, err)
	}
	return nil
}

func (s *PostgresStore) CompareAndSwap(ctx context.Context, key string, expected, next []byte) error {
	if expected == nil {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO kv_entries (key, value, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO NOTHING`,
			key, next)
		if err != nil {
			return infra.WrapRepoErr(infra.KindStoreFailure, "failed to insert key "+key, err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(infra.KindConflict, "key already written: "+key, nil)
		}
		return nil
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE kv_entries SET value = $2, updated_at = now()
		WHERE key = $1 AND value = $3`,
		key, next, expected)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to swap key "+key, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "stored value changed under key: "+key, nil)
	}
	return nil
}
