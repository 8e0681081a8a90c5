package userstore

import (
	"context"
	"encoding/json"

	"stash-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_records (
    user_id    TEXT PRIMARY KEY,
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore ensures the single-table schema and returns the store.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return nil, errs.Wrap(err, "failed to ensure user_records schema")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Load(ctx context.Context, userID string) (*Record, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM user_records WHERE user_id = $1`, userID,
	).Scan(&raw)
	if errs.Is(err, pgx.ErrNoRows) {
		return NewRecord(), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load user record")
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		// A corrupt document falls back to defaults rather than wedging
		// the user; the next save overwrites it.
		return NewRecord(), nil
	}
	return &rec, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, record *Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errs.Wrap(err, "failed to marshal user record")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO user_records (user_id, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		userID, raw,
	)
	return errs.Wrap(err, "failed to save user record")
}
