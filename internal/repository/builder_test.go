package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBuilder(t *testing.T) {
	var b setBuilder
	assert.True(t, b.empty())

	b.add("name", "Doom")
	b.add("price", 9.99)

	clause, args := b.clause()
	assert.False(t, b.empty())
	assert.Equal(t, "name=?, price=?", clause)
	assert.Equal(t, []any{"Doom", 9.99}, args)
}

func TestCondBuilderEmptyIsAlwaysTrue(t *testing.T) {
	var b condBuilder
	clause, args := b.clause()
	assert.Equal(t, "1=1", clause)
	assert.Nil(t, args)
}

func TestCondBuilderJoinsWithAnd(t *testing.T) {
	var b condBuilder
	b.add("g.name LIKE ?", "%doom%")
	b.addIn("g.platform_id", idsToAny([]uint64{1, 2}))
	b.addIn("g.age_category", nil) // empty set adds no condition

	clause, args := b.clause()
	assert.Equal(t, "g.name LIKE ? AND g.platform_id IN (?,?)", clause)
	assert.Equal(t, []any{"%doom%", uint64(1), uint64(2)}, args)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?,?,?", placeholders(3))
}

func TestParseIDList(t *testing.T) {
	require.Equal(t, []uint64{1, 5, 9}, parseIDList("1,5,9"))
	require.Equal(t, []uint64{3}, parseIDList(" 3 "))
	require.Empty(t, parseIDList(""))
	// malformed fragments are skipped, not fatal
	require.Equal(t, []uint64{2, 4}, parseIDList("2,x,4,"))
}
