package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pinstack-tag-service/internal/custom_errors"
	ports "pinstack-tag-service/internal/domain/ports/output"
)

const (
	counterKeyPrefix  = "tag_count:"
	counterMaxRetries = 3
)

// PublicCountSource answers how many public, non-deprecated posts currently
// bear a tag. The tag repository satisfies it.
type PublicCountSource interface {
	CountPublicPosts(ctx context.Context, tag string) (int64, error)
}

// CounterStore keeps per-tag public post counters in Redis. Counters have no
// expiry; a missing counter is populated from the source with SET NX so that
// concurrent populators cannot clobber increments that land in between.
type CounterStore struct {
	client *Client
	source PublicCountSource
	log    ports.Logger
}

func NewCounterStore(client *Client, source PublicCountSource, log ports.Logger) *CounterStore {
	return &CounterStore{
		client: client,
		source: source,
		log:    log,
	}
}

func (c *CounterStore) Get(ctx context.Context, tag string) (int64, error) {
	if tag == "" {
		return 0, fmt.Errorf("tag name cannot be empty")
	}

	value, err := c.client.GetInt(ctx, c.key(tag))
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		c.log.Error("Failed to get tag counter",
			slog.String("tag", tag),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to get tag counter: %w", err)
	}

	return c.populate(ctx, tag)
}

func (c *CounterStore) Increment(ctx context.Context, tag string) error {
	return c.adjust(ctx, tag, 1)
}

func (c *CounterStore) Decrement(ctx context.Context, tag string) error {
	return c.adjust(ctx, tag, -1)
}

// adjust applies a delta to an existing counter, populating it first when
// absent. The populate result already reflects the committed write that
// triggered the adjustment, so a successful populate ends the operation.
func (c *CounterStore) adjust(ctx context.Context, tag string, delta int64) error {
	if tag == "" {
		return fmt.Errorf("tag name cannot be empty")
	}

	var lastErr error
	for attempt := 1; attempt <= counterMaxRetries; attempt++ {
		_, err := c.client.GetInt(ctx, c.key(tag))
		if err != nil {
			if errors.Is(err, custom_errors.ErrCacheMiss) {
				_, perr := c.populate(ctx, tag)
				if perr == nil {
					return nil
				}
				lastErr = perr
				continue
			}
			lastErr = err
			continue
		}

		value, err := c.client.IncrBy(ctx, c.key(tag), delta)
		if err != nil {
			lastErr = err
			continue
		}
		if value < 0 {
			c.log.Warn("Tag counter underflow, resetting to zero",
				slog.String("tag", tag),
				slog.Int64("value", value))
			if err := c.client.SetInt(ctx, c.key(tag), 0, 0); err != nil {
				lastErr = err
				continue
			}
		}
		return nil
	}

	c.log.Error("Failed to adjust tag counter",
		slog.String("tag", tag),
		slog.Int64("delta", delta),
		slog.Int("attempts", counterMaxRetries),
		slog.String("error", lastErr.Error()))
	return fmt.Errorf("%w: %v", custom_errors.ErrCounterUpdateFailed, lastErr)
}

// populate computes the counter from the database and stores it only if the
// key is still absent. Whoever lost the race reads the winner's value back.
func (c *CounterStore) populate(ctx context.Context, tag string) (int64, error) {
	count, err := c.source.CountPublicPosts(ctx, tag)
	if err != nil {
		c.log.Error("Failed to count public posts for tag",
			slog.String("tag", tag),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to count public posts: %w", err)
	}

	stored, err := c.client.SetIntNX(ctx, c.key(tag), count, 0)
	if err != nil {
		c.log.Error("Failed to populate tag counter",
			slog.String("tag", tag),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to populate tag counter: %w", err)
	}
	if !stored {
		return c.client.GetInt(ctx, c.key(tag))
	}

	c.log.Debug("Tag counter populated",
		slog.String("tag", tag),
		slog.Int64("count", count))
	return count, nil
}

func (c *CounterStore) key(tag string) string {
	return counterKeyPrefix + tag
}
