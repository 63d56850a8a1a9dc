// Package localdata is a small key-value repository over the client's local
// sqlite database. It backs both the session store and remembered credentials.
package localdata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
