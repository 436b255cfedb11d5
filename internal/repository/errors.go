// Package repository implements data access for the store over MySQL.
// This file defines the error taxonomy shared by all repositories.
// Storage-specific MySQL error codes are translated into these sentinel
// values at the repository boundary so that handlers never inspect
// driver errors directly. Handlers map the sentinels onto HTTP status
// codes: validation failures become 400, ErrNotFound 404, ErrDuplicate
// 409, ErrForbidden 403 and ErrOrderFailed 500.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced game, user, key, category
// or platform does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientStock is returned by order validation when a box game
// has fewer copies in stock than requested. The whole order is
// rejected; no partial order is created.
var ErrInsufficientStock = errors.New("not enough box games")

// ErrInsufficientKeys is returned by order validation when a digital
// game has fewer unused license keys than requested. The whole order is
// rejected; no partial order is created.
var ErrInsufficientKeys = errors.New("not enough keys")

// ErrOrderFailed is returned when an order batch fails at commit time,
// including uniqueness violations raised when two concurrent orders
// race for the same license key. The losing transaction is rolled back
// entirely.
var ErrOrderFailed = errors.New("order failed")

// ErrDuplicate is returned when an insert collides with a unique
// constraint on user-facing data, such as an existing username or
// category name.
var ErrDuplicate = errors.New("already exists")

// ErrForbidden is returned when the caller attempts an operation the
// data model forbids, such as deleting a license key that has already
// been sold.
var ErrForbidden = errors.New("forbidden")

// isDuplicateEntry reports whether err is a MySQL duplicate-key error
// (code 1062). The driver formats errors as "Error 1062: ...", so the
// code is matched on the message the same way the rest of the codebase
// avoids importing driver types outside the database package.
func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "1062")
}

// isForeignKeyViolation reports whether err is a MySQL foreign-key
// error (codes 1451/1452), raised for example when an order line
// references a game deleted between validation and commit.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1451") || strings.Contains(msg, "1452")
}
