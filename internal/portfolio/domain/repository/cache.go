package repository

import "context"

// ListCache is a best-effort read-through cache for list responses. Misses
// and failures must degrade to the underlying read; writers invalidate a
// whole collection at once.
type ListCache interface {
	Get(ctx context.Context, collection, signature string) ([]byte, bool)
	Set(ctx context.Context, collection, signature string, payload []byte)
	Invalidate(ctx context.Context, collection string)
}
