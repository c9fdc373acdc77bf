// Package storage provides the durable key-value store behind the
// persistence gateway. The store is opaque to the rest of the system:
// string values in, string values out.
package storage

import "context"

// Store is an asynchronous get/set service. A missing key is reported via
// the bool, never as an error.
type Store interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	Close() error
}
