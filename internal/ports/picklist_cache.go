package ports

import "context"

// Optional cache in front of PicklistSource. Implementations are
// best-effort: a cache failure is a miss, never a fetch failure.
type PicklistCache interface {
	// Get returns the cached values and whether the key was present.
	Get(ctx context.Context, key string) ([]string, bool)
	Put(ctx context.Context, key string, values []string)
}
