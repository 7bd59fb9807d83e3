// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/secretsanta/internal/models"
)

// ErrLockTimeout is returned when the store lock could not be acquired in time.
var ErrLockTimeout = errors.New("timed out waiting for store lock")

// GroupStore loads and saves the whole set of groups as one document.
//
// Callers read once, mutate, and write the full snapshot back. There is no
// field-level merge: the last snapshot saved wins, so concurrent writers of
// different groups can overwrite each other unless their cycles are serialized.
type GroupStore interface {
	// Load returns every group. A missing or unreadable document yields an
	// empty Store. Only failure to acquire the lock is reported as an error.
	Load(ctx context.Context) (models.Store, error)

	// Save replaces the document with groups.
	Save(ctx context.Context, groups models.Store) error

	// Close releases any resources held by the store.
	Close() error
}
