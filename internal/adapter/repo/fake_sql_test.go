package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type call struct {
	query string
	args  []any
}

// fakeSQL replays scripted results keyed by query and records every call.
type fakeSQL struct {
	rows  map[string][][]any
	row   map[string]fakeRow
	tags  map[string]pgconn.CommandTag
	errs  map[string]error
	calls []call
}

func newFakeSQL() *fakeSQL {
	return &fakeSQL{
		rows: map[string][][]any{},
		row:  map[string]fakeRow{},
		tags: map[string]pgconn.CommandTag{},
		errs: map[string]error{},
	}
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return f.tags[query], nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{query: query, args: args})
	if r, ok := f.row[query]; ok {
		return r
	}
	return fakeRow{err: pgx.ErrNoRows}
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return &fakeRows{rows: f.rows[query]}, nil
}

func (f *fakeSQL) lastCall() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	return assign(r.rows[r.idx-1], dest)
}

func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}
func (r *fakeRows) RawValues() [][]byte { return nil }
func (r *fakeRows) Conn() *pgx.Conn     { return nil }

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("unexpected scan args: got %d want %d", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return nil
}
