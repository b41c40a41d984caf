package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type PgxPoolIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresStore struct {
	pool PgxPoolIface
}

func NewPostgresStore(ctx context.Context, pool PgxPoolIface) (*PostgresStore, error) {
	query := `
create table if not exists kv_store (
  key        text primary key,
  value      jsonb not null,
  updated_at timestamptz not null default now()
);
`
	if _, err := pool.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("pool.Exec: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.pool.QueryRow(ctx, `select value::text from kv_store where key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}
		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	query := `
insert into kv_store (key, value, updated_at)
values (@key, @value::jsonb, now())
on conflict (key) do update set
  value      = excluded.value,
  updated_at = now();
`
	args := pgx.NamedArgs{
		"key":   key,
		"value": string(value),
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

// Close ничего не делает: пулом владеет вызывающий код.
func (s *PostgresStore) Close() error {
	return nil
}
