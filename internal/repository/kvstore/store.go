// Package kvstore provides the local key-value stores the employee collection
// is persisted to. Get returns dto.ErrNotFound for a missing key.
package kvstore

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
