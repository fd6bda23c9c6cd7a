// Package metadata is the local key/value table the client keeps in its
// SQLite database. The session store is built on top of it.
package metadata

import (
	"context"
)

// Repository reads and writes raw values by key. Get returns (nil, nil)
// for a missing key; GetMany leaves missing keys out of the map.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
