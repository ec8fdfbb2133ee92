package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/py2dev/repeatermap/internal/common"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

// Storage keys of the persisted collections. Layout parity with the
// original store: each key holds one whole-collection JSON blob.
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keyRepeaters   = "repeaters"
	keyLogs        = "logs"
)

// loadList reads the collection stored under key. An absent key yields a
// nil slice; an undecodable blob is reported as common.ErrCorruptData.
func loadList[T any](ctx context.Context, store kv.Repository, key string) ([]T, error) {
	b, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s collection: %w: %w", key, common.ErrCorruptData, err)
	}
	return list, nil
}

// saveJSON serializes v and writes it under key, replacing the previous blob.
func saveJSON(ctx context.Context, store kv.Repository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", key, err)
	}
	if err := store.Set(ctx, key, b); err != nil {
		return fmt.Errorf("failed to persist %s collection: %w", key, err)
	}
	return nil
}
