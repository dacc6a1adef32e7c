package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const Schema = `
CREATE TABLE IF NOT EXISTS public.collection
(
    key        VARCHAR PRIMARY KEY,
    data       JSONB       NOT NULL DEFAULT '[]',
    updated_at TIMESTAMPTZ NOT NULL
);
`

var _ Store = (*PsqlStore)(nil)

type PsqlStore struct {
	db *pgxpool.Pool
	// injectable for tests
	now func() time.Time
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db:  db,
		now: time.Now,
	}
}

// Migrate creates the collection table if it does not exist yet.
func (s *PsqlStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create collection table: %w", err)
	}
	return nil
}

func (s *PsqlStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		ctx,
		`SELECT data FROM collection WHERE key = $1;`,
		key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PsqlStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO collection (key, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`,
		key, data, s.now(),
	)
	return err
}
