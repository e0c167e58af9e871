// Package repository implements the persistence layer over database/sql.
// This file defines sentinel errors reused across repositories so the
// handler layer can translate failures into the API error taxonomy
// without inspecting driver-specific details.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (email, product code, referral code). Handlers translate
// this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate value")

// isDuplicateErr detects a MySQL unique-constraint violation (error 1062).
func isDuplicateErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
