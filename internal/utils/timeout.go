package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout = 5 * time.Second

	// DefaultLookupTimeout bounds read-only lookups against external
	// collaborators (catalog, coupon service). A lookup that overruns it is
	// treated as failed, never left pending.
	DefaultLookupTimeout = 3 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithLookupTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultLookupTimeout)
}
