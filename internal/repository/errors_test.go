package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, isDuplicateEntry(errors.New("Error 1062: Duplicate entry 'bob' for key 'uq_users_name'")))
	assert.False(t, isDuplicateEntry(errors.New("Error 1452: Cannot add or update a child row")))
	assert.False(t, isDuplicateEntry(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(errors.New("Error 1452: Cannot add or update a child row")))
	assert.True(t, isForeignKeyViolation(errors.New("Error 1451: Cannot delete or update a parent row")))
	assert.False(t, isForeignKeyViolation(errors.New("Error 1062: Duplicate entry")))
	assert.False(t, isForeignKeyViolation(nil))
}
