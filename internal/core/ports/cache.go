package ports

import "context"

// ClientCache is a best-effort read cache for client lookups by id.
// Implementations must never fail a request: a broken cache behaves like a
// miss on Get and a no-op on Set/Invalidate.
type ClientCache interface {
	Get(ctx context.Context, id int64) (*ClientResult, bool)
	Set(ctx context.Context, result *ClientResult)
	Invalidate(ctx context.Context, id int64)
}
