// Package store defines the snapshot persistence boundary. The record store
// serializes its whole state to one document; backends only move bytes.
package store

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when no snapshot has ever been saved.
var ErrNoSnapshot = errors.New("no snapshot")

type Store interface {
	// Load returns the last saved snapshot document, or ErrNoSnapshot.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the snapshot document as one unit.
	Save(ctx context.Context, snapshot []byte) error
}
