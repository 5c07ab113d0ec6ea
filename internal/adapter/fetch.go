package adapter

import (
	"context"
	"fmt"
)

// callError tags an error with the kind reported to the caller.
type callError struct {
	kind ErrorKind
	err  error
}

func (e *callError) Error() string { return e.err.Error() }
func (e *callError) Unwrap() error { return e.err }

type resultSet struct {
	columns []string
	rows    [][]any
}

func (r resultSet) requireColumns(n int) error {
	if len(r.columns) < n {
		return &callError{
			kind: KindExecution,
			err:  fmt.Errorf("unexpected result shape: got %d column(s), need at least %d", len(r.columns), n),
		}
	}
	return nil
}

// fetch opens a connection, runs query, reads every row and releases the
// connection before returning, whatever the outcome.
//
// Errors from opening or acquiring the connection are KindConnection;
// everything after that is KindExecution. A failure part-way through the
// rows discards what was read.
func (a *Adapter) fetch(ctx context.Context, query string) (resultSet, error) {
	db, err := a.open(ctx)
	if err != nil {
		return resultSet{}, &callError{kind: KindConnection, err: err}
	}
	defer func() { _ = db.Close() }()

	conn, err := db.Conn(ctx)
	if err != nil {
		return resultSet{}, &callError{kind: KindConnection, err: err}
	}
	defer func() { _ = conn.Close() }()

	a.log.Debug("executing statement", "dialect", a.dialect.Name(), "statement", query)

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return resultSet{}, &callError{kind: KindExecution, err: err}
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return resultSet{}, &callError{kind: KindExecution, err: err}
	}

	var out [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return resultSet{}, &callError{kind: KindExecution, err: err}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return resultSet{}, &callError{kind: KindExecution, err: err}
	}

	return resultSet{columns: columns, rows: out}, nil
}
