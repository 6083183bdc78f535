// Package metadata provides the durable key-value slots the client stores
// persist their snapshots into.
package metadata

import (
	"context"
)

// Repository is a flat key-value store. Get returns (nil, nil) for a key
// that has never been set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
