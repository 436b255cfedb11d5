package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBatchRejectsMismatchedParams(t *testing.T) {
	queries := []string{"INSERT INTO a (x) VALUES (?)", "INSERT INTO b (y) VALUES (?)"}
	params := [][]any{{1}}

	// The mismatch must be detected before any transaction is opened,
	// so a nil handle never gets touched.
	err := RunBatch(context.Background(), nil, queries, params)
	require.ErrorIs(t, err, ErrMalformedBatch)
}

func TestRunBatchReturningIDRejectsMismatchedParams(t *testing.T) {
	queries := []string{"INSERT INTO a (x) VALUES (?)"}
	params := [][]any{{1}, {2}}

	_, err := RunBatchReturningID(context.Background(), nil, queries, params)
	require.ErrorIs(t, err, ErrMalformedBatch)
}
