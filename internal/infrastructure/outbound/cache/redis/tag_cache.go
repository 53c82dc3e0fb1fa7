package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
)

// Key spaces. Post entries live short because inheritance changes are not
// reverse-propagated into per-post groups; everything else uses the default.
const (
	tagKeyPrefix  = "tag:"
	postKeyPrefix = "post:"
	userKeyPrefix = "user:"
	freqKeyPrefix = "freq:"

	tagCacheTTL  = 60 * time.Minute
	postCacheTTL = time.Minute
)

type TagCache struct {
	client *Client
	log    ports.Logger
}

func NewTagCache(client *Client, log ports.Logger) *TagCache {
	return &TagCache{
		client: client,
		log:    log,
	}
}

func (t *TagCache) GetTag(ctx context.Context, name string) (*model.InternalTag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name cannot be empty")
	}

	var tag model.InternalTag
	err := t.client.Get(ctx, t.tagKey(name), &tag)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			t.log.Debug("Tag cache miss", slog.String("tag", name))
			return nil, custom_errors.ErrCacheMiss
		}
		t.log.Error("Failed to get tag from cache",
			slog.String("tag", name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get tag from cache: %w", err)
	}

	t.log.Debug("Tag cache hit", slog.String("tag", name))
	return &tag, nil
}

func (t *TagCache) SetTag(ctx context.Context, tag *model.InternalTag) error {
	if tag == nil {
		return fmt.Errorf("tag cannot be nil")
	}
	if tag.Name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}

	if err := t.client.Set(ctx, t.tagKey(tag.Name), tag, tagCacheTTL); err != nil {
		t.log.Error("Failed to set tag cache",
			slog.String("tag", tag.Name),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set tag cache: %w", err)
	}

	t.log.Debug("Tag cached successfully",
		slog.String("tag", tag.Name),
		slog.Duration("ttl", tagCacheTTL))
	return nil
}

func (t *TagCache) DeleteTag(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}

	if err := t.client.Delete(ctx, t.tagKey(name)); err != nil {
		t.log.Error("Failed to delete tag from cache",
			slog.String("tag", name),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete tag from cache: %w", err)
	}

	t.log.Debug("Tag deleted from cache", slog.String("tag", name))
	return nil
}

func (t *TagCache) GetPostTags(ctx context.Context, postID model.PostID) (model.TagGroups, error) {
	var groups model.TagGroups
	err := t.client.Get(ctx, t.postKey(postID), &groups)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			t.log.Debug("Post tags cache miss", slog.String("post_id", postID.String()))
			return nil, custom_errors.ErrCacheMiss
		}
		t.log.Error("Failed to get post tags from cache",
			slog.String("post_id", postID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get post tags from cache: %w", err)
	}

	t.log.Debug("Post tags cache hit", slog.String("post_id", postID.String()))
	return groups, nil
}

func (t *TagCache) SetPostTags(ctx context.Context, postID model.PostID, groups model.TagGroups) error {
	if groups == nil {
		groups = model.TagGroups{}
	}

	if err := t.client.Set(ctx, t.postKey(postID), groups, postCacheTTL); err != nil {
		t.log.Error("Failed to set post tags cache",
			slog.String("post_id", postID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set post tags cache: %w", err)
	}

	t.log.Debug("Post tags cached successfully",
		slog.String("post_id", postID.String()),
		slog.Duration("ttl", postCacheTTL))
	return nil
}

func (t *TagCache) DeletePostTags(ctx context.Context, postID model.PostID) error {
	if err := t.client.Delete(ctx, t.postKey(postID)); err != nil {
		t.log.Error("Failed to delete post tags from cache",
			slog.String("post_id", postID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete post tags from cache: %w", err)
	}

	t.log.Debug("Post tags deleted from cache", slog.String("post_id", postID.String()))
	return nil
}

func (t *TagCache) GetUserTags(ctx context.Context, userID int64) ([]*model.InternalTag, error) {
	var tags []*model.InternalTag
	err := t.client.Get(ctx, t.userKey(userID), &tags)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			t.log.Debug("User tags cache miss", slog.Int64("user_id", userID))
			return nil, custom_errors.ErrCacheMiss
		}
		t.log.Error("Failed to get user tags from cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get user tags from cache: %w", err)
	}

	t.log.Debug("User tags cache hit",
		slog.Int64("user_id", userID),
		slog.Int("tags_count", len(tags)))
	return tags, nil
}

func (t *TagCache) SetUserTags(ctx context.Context, userID int64, tags []*model.InternalTag) error {
	if tags == nil {
		tags = []*model.InternalTag{}
	}

	if err := t.client.Set(ctx, t.userKey(userID), tags, tagCacheTTL); err != nil {
		t.log.Error("Failed to set user tags cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set user tags cache: %w", err)
	}

	t.log.Debug("User tags cached successfully",
		slog.Int64("user_id", userID),
		slog.Int("tags_count", len(tags)),
		slog.Duration("ttl", tagCacheTTL))
	return nil
}

func (t *TagCache) GetFrequentlyUsed(ctx context.Context, userID int64) (model.TagGroups, error) {
	var groups model.TagGroups
	err := t.client.Get(ctx, t.freqKey(userID), &groups)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			t.log.Debug("Frequently used cache miss", slog.Int64("user_id", userID))
			return nil, custom_errors.ErrCacheMiss
		}
		t.log.Error("Failed to get frequently used tags from cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get frequently used tags from cache: %w", err)
	}

	t.log.Debug("Frequently used cache hit", slog.Int64("user_id", userID))
	return groups, nil
}

func (t *TagCache) SetFrequentlyUsed(ctx context.Context, userID int64, groups model.TagGroups) error {
	if groups == nil {
		groups = model.TagGroups{}
	}

	if err := t.client.Set(ctx, t.freqKey(userID), groups, tagCacheTTL); err != nil {
		t.log.Error("Failed to set frequently used cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set frequently used cache: %w", err)
	}

	t.log.Debug("Frequently used tags cached successfully",
		slog.Int64("user_id", userID),
		slog.Duration("ttl", tagCacheTTL))
	return nil
}

func (t *TagCache) tagKey(name string) string {
	return tagKeyPrefix + name
}

func (t *TagCache) postKey(postID model.PostID) string {
	return postKeyPrefix + postID.String()
}

func (t *TagCache) userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}

func (t *TagCache) freqKey(userID int64) string {
	return freqKeyPrefix + strconv.FormatInt(userID, 10)
}
