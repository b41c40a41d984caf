package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

type fakePool struct {
	rows  map[string][]byte
	execs []string
	err   error
}

func (p *fakePool) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := p.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if p.err != nil {
		return pgconn.CommandTag{}, p.err
	}
	p.execs = append(p.execs, sql)
	if len(args) == 1 {
		if named, ok := args[0].(pgx.NamedArgs); ok {
			p.rows[named["key"].(string)] = []byte(named["value"].(string))
		}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	pool := &fakePool{rows: map[string][]byte{}}

	s, err := NewPostgresStore(ctx, pool)
	require.NoError(t, err)
	require.Len(t, pool.execs, 1)

	_, err = s.Get(ctx, "employees")
	require.ErrorIs(t, err, dto.ErrNotFound)

	require.NoError(t, s.Put(ctx, "employees", []byte(`[{"id":"x"}]`)))

	got, err := s.Get(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(got))
}

func TestPostgresStore_SchemaError(t *testing.T) {
	pool := &fakePool{rows: map[string][]byte{}, err: errors.New("connection refused")}

	_, err := NewPostgresStore(context.Background(), pool)

	require.Error(t, err)
}
