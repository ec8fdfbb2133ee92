// Package kv defines the persistent key-value substrate shared by the
// session store, the repeater registry and the audit log. Every collection
// is persisted as a whole blob under its key; there is no partial-record
// update at this boundary.
package kv

import "context"

// Repository is the storage port injected into the services. A missing
// key is reported as a nil value, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
