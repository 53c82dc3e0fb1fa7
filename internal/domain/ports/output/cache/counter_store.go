package cache

import "context"

// CounterStore tracks how many public posts bear each tag. Counters are
// populated on first read and live without expiry; increments and decrements
// are atomic.
//
//go:generate mockery --name CounterStore --dir . --output ../../../../../mocks/cache --outpkg mocks --filename CounterStore.go
type CounterStore interface {
	Get(ctx context.Context, tag string) (int64, error)
	Increment(ctx context.Context, tag string) error
	Decrement(ctx context.Context, tag string) error
}
