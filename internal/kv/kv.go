// Package kv defines the narrow key-value contract the transaction
// store persists through. The engine only ever uses a single fixed
// key holding the serialized collection.
package kv

import "context"

// Store is the persistence adapter contract.
type Store interface {
	// Read returns the value for key. ok is false when the key is
	// absent; absence is not an error.
	Read(ctx context.Context, key string) (value string, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error

	// Delete removes key if present. Used only for corrupt-data
	// recovery.
	Delete(ctx context.Context, key string) error
}
