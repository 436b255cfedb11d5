package database

import (
	"context"
	"database/sql"
	"errors"
)

// ErrMalformedBatch is returned when the number of queries handed to
// RunBatch does not match the number of parameter groups. It indicates a
// programming error in the caller, never user input, and is checked
// before any transaction is opened.
var ErrMalformedBatch = errors.New("number of queries does not match number of parameter groups")

// RunBatch executes an ordered list of mutating statements as a single
// all-or-nothing unit. queries[i] is executed with params[i] on one
// connection inside one transaction. The transaction commits only when
// every statement succeeds; on the first failure the whole batch is
// rolled back and that error is returned, so no partial effect is ever
// visible to other callers.
func RunBatch(ctx context.Context, db *sql.DB, queries []string, params [][]any) error {
	if len(queries) != len(params) {
		return ErrMalformedBatch
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for i, q := range queries {
		if _, err := tx.ExecContext(ctx, q, params[i]...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// RunBatchReturningID behaves like RunBatch but additionally returns the
// auto-generated ID of the first statement, which is expected to be an
// INSERT. Later statements in the batch can reference that ID through
// their parameters instead of re-querying MAX(id) inside the
// transaction.
func RunBatchReturningID(ctx context.Context, db *sql.DB, queries []string, params [][]any) (uint64, error) {
	if len(queries) != len(params) {
		return 0, ErrMalformedBatch
	}
	if len(queries) == 0 {
		return 0, ErrMalformedBatch
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	res, err := tx.ExecContext(ctx, queries[0], params[0]...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i := 1; i < len(queries); i++ {
		args := make([]any, 0, len(params[i]))
		for _, a := range params[i] {
			if a == FirstInsertID {
				args = append(args, id)
				continue
			}
			args = append(args, a)
		}
		if _, err := tx.ExecContext(ctx, queries[i], args...); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

type idPlaceholder string

// FirstInsertID is a placeholder parameter value. When passed to
// RunBatchReturningID it is substituted with the ID generated by the
// batch's first INSERT before the statement executes.
const FirstInsertID idPlaceholder = "first_insert_id"
