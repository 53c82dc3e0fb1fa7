package tag_service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
	tag_repository "pinstack-tag-service/internal/domain/ports/output/tag"

	"golang.org/x/sync/singleflight"
)

const snapshotTTL = 60 * time.Second

// TagSnapshot is a process-local copy of the whole tag table, refreshed at
// most once per TTL. Prefix lookup reads it instead of hitting the database
// per call. Concurrent refreshes are collapsed through singleflight, so a
// thundering herd after expiry costs one query.
type TagSnapshot struct {
	repo  tag_repository.Repository
	log   ports.Logger
	group singleflight.Group

	mu      sync.RWMutex
	tags    map[string]*model.InternalTag
	expires time.Time
}

func NewTagSnapshot(repo tag_repository.Repository, log ports.Logger) *TagSnapshot {
	return &TagSnapshot{
		repo: repo,
		log:  log,
	}
}

// All returns the snapshot keyed by tag name, refreshing it first when
// stale. The returned map is shared between callers and must not be
// mutated.
func (s *TagSnapshot) All(ctx context.Context) (map[string]*model.InternalTag, error) {
	s.mu.RLock()
	if time.Now().Before(s.expires) {
		tags := s.tags
		s.mu.RUnlock()
		return tags, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("all_tags", func() (interface{}, error) {
		s.mu.RLock()
		if time.Now().Before(s.expires) {
			tags := s.tags
			s.mu.RUnlock()
			return tags, nil
		}
		s.mu.RUnlock()

		fetched, err := s.repo.GetAllTags(ctx)
		if err != nil {
			return nil, err
		}

		byName := make(map[string]*model.InternalTag, len(fetched))
		for _, tag := range fetched {
			byName[tag.Name] = tag
		}

		s.mu.Lock()
		s.tags = byName
		s.expires = time.Now().Add(snapshotTTL)
		s.mu.Unlock()

		s.log.Debug("Tag snapshot refreshed", slog.Int("tags_count", len(byName)))
		return byName, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]*model.InternalTag), nil
}
