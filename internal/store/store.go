// Package store implements the persistence core: entity CRUD, the
// current-context and completion-timestamp rules, and the dashboard rollup.
package store

import (
	"errors"
	"fmt"

	"github.com/manusware/context-manager/internal/crypto"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced id does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing required field, detected before any write.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Store wraps the database handle and encapsulates all mutation rules.
type Store struct {
	db     *gorm.DB
	tokens *crypto.TokenCipher
}

// New creates a Store. tokens may be nil, in which case git access tokens
// are stored unencrypted (development only).
func New(db *gorm.DB, tokens *crypto.TokenCipher) *Store {
	return &Store{db: db, tokens: tokens}
}

// asStoreErr maps gorm's not-found sentinel to the store's own.
func asStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
