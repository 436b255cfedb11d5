package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matt444/GameStore--backend/internal/database"
	"github.com/Matt444/GameStore--backend/internal/model"
)

const testDate = "2024-06-01 12:00:00"

func TestPlanOrderBoxGame(t *testing.T) {
	stock := map[uint64]model.StockModel{
		1: {IsDigital: false, Quantity: 5},
	}
	queries, params, err := planOrder(7, testDate, []OrderItem{{GameID: 1, Quantity: 2}}, stock, nil)
	require.NoError(t, err)

	// one header insert plus one line insert per purchased unit
	require.Len(t, queries, 3)
	require.Len(t, params, 3)
	assert.Contains(t, queries[0], "INSERT INTO users_transactions")
	assert.Equal(t, []any{uint64(7), testDate}, params[0])
	for i := 1; i < 3; i++ {
		assert.Contains(t, queries[i], "INSERT INTO games_transactions")
		assert.Contains(t, queries[i], "NULL")
		assert.Equal(t, []any{database.FirstInsertID, uint64(1)}, params[i])
	}
}

// Physical stock is a display-only column: a committed purchase writes
// order lines but never decrements games.quantity. This pins down the
// current behavior rather than endorsing it.
func TestPlanOrderDoesNotDecrementBoxStock(t *testing.T) {
	stock := map[uint64]model.StockModel{
		1: {IsDigital: false, Quantity: 3},
	}
	queries, _, err := planOrder(7, testDate, []OrderItem{{GameID: 1, Quantity: 3}}, stock, nil)
	require.NoError(t, err)
	for _, q := range queries {
		assert.False(t, strings.Contains(q, "UPDATE games "), "unexpected stock mutation: %s", q)
	}
}

func TestPlanOrderDigitalGameBindsKeysInFetchOrder(t *testing.T) {
	stock := map[uint64]model.StockModel{
		2: {IsDigital: true},
	}
	keys := map[uint64][]uint64{2: {10, 11, 12}}
	queries, params, err := planOrder(7, testDate, []OrderItem{{GameID: 2, Quantity: 2}}, stock, keys)
	require.NoError(t, err)

	// header + per unit one line insert and one guarded key update
	require.Len(t, queries, 5)

	assert.Contains(t, queries[1], "INSERT INTO games_transactions")
	assert.Equal(t, []any{database.FirstInsertID, uint64(2), uint64(10)}, params[1])
	assert.Contains(t, queries[2], "UPDATE games_keys SET used = 1")
	assert.Equal(t, []any{uint64(10)}, params[2])

	assert.Equal(t, []any{database.FirstInsertID, uint64(2), uint64(11)}, params[3])
	assert.Equal(t, []any{uint64(11)}, params[4])
}

func TestPlanOrderRepeatedGameGetsDistinctKeys(t *testing.T) {
	stock := map[uint64]model.StockModel{
		2: {IsDigital: true},
	}
	keys := map[uint64][]uint64{2: {10, 11}}
	items := []OrderItem{{GameID: 2, Quantity: 1}, {GameID: 2, Quantity: 1}}
	_, params, err := planOrder(7, testDate, items, stock, keys)
	require.NoError(t, err)

	assert.Equal(t, uint64(10), params[1][2])
	assert.Equal(t, uint64(11), params[3][2])
}

func TestPlanOrderInsufficientBoxStock(t *testing.T) {
	stock := map[uint64]model.StockModel{
		1: {IsDigital: false, Quantity: 1},
	}
	queries, params, err := planOrder(7, testDate, []OrderItem{{GameID: 1, Quantity: 2}}, stock, nil)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, queries)
	assert.Nil(t, params)
}

func TestPlanOrderInsufficientKeys(t *testing.T) {
	stock := map[uint64]model.StockModel{
		2: {IsDigital: true},
	}
	keys := map[uint64][]uint64{2: {10}}
	items := []OrderItem{{GameID: 2, Quantity: 1}, {GameID: 2, Quantity: 1}}
	queries, _, err := planOrder(7, testDate, items, stock, keys)
	require.ErrorIs(t, err, ErrInsufficientKeys)
	assert.Nil(t, queries)
}

func TestPlanOrderUnknownGame(t *testing.T) {
	queries, _, err := planOrder(7, testDate, []OrderItem{{GameID: 99, Quantity: 1}}, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Nil(t, queries)
}

func TestPlanOrderMixedCart(t *testing.T) {
	stock := map[uint64]model.StockModel{
		1: {IsDigital: false, Quantity: 2},
		2: {IsDigital: true},
	}
	keys := map[uint64][]uint64{2: {10}}
	items := []OrderItem{{GameID: 1, Quantity: 2}, {GameID: 2, Quantity: 1}}
	queries, _, err := planOrder(7, testDate, items, stock, keys)
	require.NoError(t, err)
	// header + two box lines + one digital line + one key update
	assert.Len(t, queries, 5)
}
