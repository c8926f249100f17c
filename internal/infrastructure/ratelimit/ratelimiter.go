package ratelimit

import "context"

// RateLimiter guards mutating entry points against burst abuse. Allow is
// idempotent and side-effect-free beyond its own counter state; it never
// queues or retries, the caller decides what to do with a denial.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
