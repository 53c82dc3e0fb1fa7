package tag_service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
	"pinstack-tag-service/internal/domain/ports/output/cache"
	"pinstack-tag-service/internal/domain/ports/output/client"
	tag_repository "pinstack-tag-service/internal/domain/ports/output/tag"
	"pinstack-tag-service/internal/infrastructure/outbound/repository/postgres"

	tag_service "pinstack-tag-service/internal/domain/ports/input/tag"

	"golang.org/x/sync/errgroup"
)

const maxDescriptionLength = 1000

const (
	frequentMiscLimit  = 25
	frequentGroupLimit = 10
)

// TagService orchestrates the tag operations: SQL writes go first, then the
// post's privacy decides counter deltas, then caches are invalidated or
// patched. Cache and counter failures are logged but never surfaced.
type TagService struct {
	repo       tag_repository.Repository
	uow        postgres.UnitOfWork
	tagCache   cache.TagCache
	counters   cache.CounterStore
	userClient client.UserClient
	postClient client.PostClient
	snapshot   *TagSnapshot
	projector  *Projector
	authGate   *AuthGate
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewTagService(
	repo tag_repository.Repository,
	uow postgres.UnitOfWork,
	tagCache cache.TagCache,
	counters cache.CounterStore,
	userClient client.UserClient,
	postClient client.PostClient,
	log ports.Logger,
	metrics ports.MetricsProvider,
) tag_service.Service {
	return &TagService{
		repo:       repo,
		uow:        uow,
		tagCache:   tagCache,
		counters:   counters,
		userClient: userClient,
		postClient: postClient,
		snapshot:   NewTagSnapshot(repo, log),
		projector:  NewProjector(userClient, counters, log),
		authGate:   NewAuthGate(),
		log:        log,
		metrics:    metrics,
	}
}

func (s *TagService) AddTags(ctx context.Context, user model.AuthUser, postID model.PostID, tags []string) error {
	success := false
	defer func() { s.metrics.IncrementTagOperations("add_tags", success) }()

	if err := s.authGate.RequireUser(user); err != nil {
		return err
	}
	postIDInt, err := postID.Int64()
	if err != nil {
		s.log.Debug("Rejected malformed post id", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return custom_errors.ErrInvalidPostID
	}
	tags = normalizeTags(tags)
	s.log.Debug("Adding tags to post",
		slog.Int64("post_id", postIDInt),
		slog.Int64("user_id", user.ID),
		slog.Int("tags_count", len(tags)))

	if err := s.repo.AddTags(ctx, postIDInt, user.ID, tags); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found while adding tags", slog.Int64("post_id", postIDInt))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to add tags", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return err
	}

	post, err := s.postClient.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post privacy lookup returned not found", slog.Int64("post_id", postIDInt))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to resolve post privacy", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return err
	}

	if post.Privacy == model.PrivacyPublic {
		existing, err := s.postTagGroups(ctx, postID, postIDInt)
		if err != nil {
			s.log.Error("Failed to read post tags for counter deltas", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
			return err
		}
		onPost := make(map[string]bool)
		for _, name := range existing.Flatten() {
			onPost[name] = true
		}
		for _, tag := range tags {
			if onPost[tag] {
				continue
			}
			if err := s.counters.Increment(ctx, tag); err != nil {
				s.log.Warn("Failed to increment tag counter", slog.String("tag", tag), slog.String("error", err.Error()))
				s.metrics.IncrementCounterOperations("increment", false)
			} else {
				s.metrics.IncrementCounterOperations("increment", true)
			}
		}
	}

	s.invalidatePostTags(ctx, postID)
	success = true
	return nil
}

func (s *TagService) RemoveTags(ctx context.Context, user model.AuthUser, postID model.PostID, tags []string) error {
	success := false
	defer func() { s.metrics.IncrementTagOperations("remove_tags", success) }()

	if err := s.authGate.RequireUser(user); err != nil {
		return err
	}
	postIDInt, err := postID.Int64()
	if err != nil {
		s.log.Debug("Rejected malformed post id", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return custom_errors.ErrInvalidPostID
	}
	tags = normalizeTags(tags)
	s.log.Debug("Removing tags from post",
		slog.Int64("post_id", postIDInt),
		slog.Int64("user_id", user.ID),
		slog.Int("tags_count", len(tags)))

	if err := s.repo.RemoveTags(ctx, postIDInt, user.ID, tags); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found while removing tags", slog.Int64("post_id", postIDInt))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to remove tags", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return err
	}

	post, err := s.postClient.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post privacy lookup returned not found", slog.Int64("post_id", postIDInt))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to resolve post privacy", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return err
	}

	if post.Privacy == model.PrivacyPublic {
		existing, err := s.postTagGroups(ctx, postID, postIDInt)
		if err != nil {
			s.log.Error("Failed to read post tags for counter deltas", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
			return err
		}
		onPost := make(map[string]bool)
		for _, name := range existing.Flatten() {
			onPost[name] = true
		}
		// Decrement only tags that were actually on the post.
		for _, tag := range tags {
			if !onPost[tag] {
				continue
			}
			if err := s.counters.Decrement(ctx, tag); err != nil {
				s.log.Warn("Failed to decrement tag counter", slog.String("tag", tag), slog.String("error", err.Error()))
				s.metrics.IncrementCounterOperations("decrement", false)
			} else {
				s.metrics.IncrementCounterOperations("decrement", true)
			}
		}
	}

	s.invalidatePostTags(ctx, postID)
	success = true
	return nil
}

func (s *TagService) InheritTag(ctx context.Context, user model.AuthUser, parent string, child string, deprecate bool) error {
	success := false
	defer func() { s.metrics.IncrementTagOperations("inherit_tag", success) }()

	if err := s.authGate.MayInherit(user); err != nil {
		s.log.Debug("Inheritance creation denied", slog.Int64("user_id", user.ID))
		return err
	}
	parent = normalizeTag(parent)
	child = normalizeTag(child)
	if parent == "" || child == "" {
		return custom_errors.ErrValidationFailed
	}
	s.log.Debug("Creating tag inheritance",
		slog.String("parent", parent),
		slog.String("child", child),
		slog.Bool("deprecate", deprecate))

	if err := s.repo.InheritTag(ctx, user.ID, parent, child, deprecate); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrDuplicateInheritance):
			s.log.Debug("Inheritance edge already exists", slog.String("parent", parent), slog.String("child", child))
		case errors.Is(err, custom_errors.ErrInheritanceCycle):
			s.log.Debug("Inheritance edge would create a cycle", slog.String("parent", parent), slog.String("child", child))
		default:
			s.log.Error("Failed to create tag inheritance", slog.String("parent", parent), slog.String("child", child), slog.String("error", err.Error()))
		}
		return err
	}

	s.appendCachedChild(ctx, parent, child)
	if deprecate {
		// The child row changed underneath any cached copy.
		if err := s.tagCache.DeleteTag(ctx, child); err != nil {
			s.log.Warn("Failed to invalidate deprecated child tag", slog.String("tag", child), slog.String("error", err.Error()))
		}
	}
	success = true
	return nil
}

func (s *TagService) RemoveInheritance(ctx context.Context, user model.AuthUser, parent string, child string) error {
	success := false
	defer func() { s.metrics.IncrementTagOperations("remove_inheritance", success) }()

	if err := s.authGate.MayRemoveInheritance(user); err != nil {
		s.log.Debug("Inheritance removal denied", slog.Int64("user_id", user.ID))
		return err
	}
	parent = normalizeTag(parent)
	child = normalizeTag(child)
	if parent == "" || child == "" {
		return custom_errors.ErrValidationFailed
	}
	s.log.Debug("Removing tag inheritance", slog.String("parent", parent), slog.String("child", child))

	if err := s.repo.RemoveInheritance(ctx, parent, child); err != nil {
		s.log.Error("Failed to remove tag inheritance", slog.String("parent", parent), slog.String("child", child), slog.String("error", err.Error()))
		return err
	}

	s.removeCachedChild(ctx, parent, child)
	success = true
	return nil
}

func (s *TagService) UpdateTag(ctx context.Context, user model.AuthUser, name string, dto *model.UpdateTagDTO) error {
	success := false
	defer func() { s.metrics.IncrementTagOperations("update_tag", success) }()

	if err := s.authGate.RequireUser(user); err != nil {
		return err
	}
	name = normalizeTag(name)
	if name == "" {
		return custom_errors.ErrValidationFailed
	}

	patch, ownerHandle, err := validatePatch(dto)
	if err != nil {
		return err
	}
	s.log.Debug("Updating tag", slog.String("tag", name), slog.Int64("user_id", user.ID))

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	txRepo := tx.TagRepository()

	itag, err := txRepo.GetTag(ctx, name)
	if err != nil {
		if errors.Is(err, custom_errors.ErrTagNotFound) {
			s.log.Debug("Tag not found for update", slog.String("tag", name))
			return custom_errors.ErrTagNotFound
		}
		s.log.Error("Failed to load tag for update", slog.String("tag", name), slog.String("error", err.Error()))
		return err
	}

	if err := s.authGate.MayEdit(user, itag); err != nil {
		s.log.Debug("Tag edit denied", slog.String("tag", name), slog.Int64("user_id", user.ID))
		return err
	}
	if patch.Deprecated != nil {
		if err := s.authGate.MayEditDeprecation(user); err != nil {
			s.log.Debug("Deprecation toggle denied", slog.String("tag", name), slog.Int64("user_id", user.ID))
			return err
		}
	}

	// The owner handle is resolved only after the caller proved they may
	// edit the tag.
	if ownerHandle != "" {
		owner, err := s.userClient.GetUserByHandle(ctx, ownerHandle)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				s.log.Debug("New tag owner not found", slog.String("handle", ownerHandle))
				return custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to resolve new tag owner", slog.String("handle", ownerHandle), slog.String("error", err.Error()))
			return err
		}
		patch.OwnerID = &owner.UserID
	}

	if err := txRepo.UpdateTag(ctx, name, patch); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrTagAlreadyExists):
			s.log.Debug("Tag rename collides with existing tag", slog.String("tag", name))
		case errors.Is(err, custom_errors.ErrUnknownTagGroup):
			s.log.Debug("Unknown tag group in update", slog.String("tag", name))
		case errors.Is(err, custom_errors.ErrTagNotFound):
			s.log.Debug("Tag disappeared during update", slog.String("tag", name))
		default:
			s.log.Error("Failed to update tag", slog.String("tag", name), slog.String("error", err.Error()))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.refreshTagCache(ctx, name, itag, patch)
	success = true
	return nil
}

func (s *TagService) FetchTag(ctx context.Context, user model.AuthUser, name string) (*model.Tag, error) {
	name = normalizeTag(name)
	s.log.Debug("Fetching tag", slog.String("tag", name))

	itag, err := s.fetchInternalTag(ctx, name)
	if err != nil {
		if errors.Is(err, custom_errors.ErrTagNotFound) {
			s.log.Debug("Tag not found", slog.String("tag", name))
			return nil, custom_errors.ErrTagNotFound
		}
		s.log.Error("Failed to fetch tag", slog.String("tag", name), slog.String("error", err.Error()))
		return nil, err
	}

	return s.projector.Tag(ctx, itag)
}

func (s *TagService) FetchTagsByPost(ctx context.Context, user model.AuthUser, postID model.PostID) (model.TagGroups, error) {
	postIDInt, err := postID.Int64()
	if err != nil {
		s.log.Debug("Rejected malformed post id", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrInvalidPostID
	}
	s.log.Debug("Fetching tags for post", slog.Int64("post_id", postIDInt))

	var (
		post   *model.InternalPost
		groups model.TagGroups
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = s.postClient.GetPost(gctx, postID)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = s.postTagGroups(gctx, postID, postIDInt)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("post_id", postIDInt))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to fetch post tags", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return nil, err
	}

	if !s.authGate.MaySeePostTags(user, post) {
		s.log.Debug("Post tags hidden from caller", slog.Int64("post_id", postIDInt), slog.Int64("user_id", user.ID))
		return nil, custom_errors.ErrPostNotFound
	}

	return groups, nil
}

func (s *TagService) FetchInternalTagsByPost(ctx context.Context, postID model.PostID) (model.TagGroups, error) {
	postIDInt, err := postID.Int64()
	if err != nil {
		s.log.Debug("Rejected malformed post id", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrInvalidPostID
	}
	s.log.Debug("Fetching tags for post without visibility check", slog.Int64("post_id", postIDInt))

	groups, err := s.postTagGroups(ctx, postID, postIDInt)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("post_id", postIDInt))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to fetch post tags", slog.Int64("post_id", postIDInt), slog.String("error", err.Error()))
		return nil, err
	}
	return groups, nil
}

func (s *TagService) LookupTags(ctx context.Context, user model.AuthUser, prefix string) ([]*model.Tag, error) {
	prefix = normalizeTag(prefix)
	s.log.Debug("Looking up tags", slog.String("prefix", prefix))

	snapshot, err := s.snapshot.All(ctx)
	if err != nil {
		s.log.Error("Failed to load tag snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	matches := make([]*model.InternalTag, 0, len(snapshot))
	for name, itag := range snapshot {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, itag)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })

	return s.projector.Tags(ctx, matches)
}

func (s *TagService) FetchTagsByUser(ctx context.Context, user model.AuthUser, handle string) ([]*model.Tag, error) {
	s.log.Debug("Fetching tags owned by user", slog.String("handle", handle))

	owner, err := s.userClient.GetUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Unknown user handle", slog.String("handle", handle))
			return nil, custom_errors.ErrNoUserTags
		}
		s.log.Error("Failed to resolve user handle", slog.String("handle", handle), slog.String("error", err.Error()))
		return nil, err
	}

	itags, err := s.userTags(ctx, owner.UserID)
	if err != nil {
		s.log.Error("Failed to fetch user tags", slog.Int64("user_id", owner.UserID), slog.String("error", err.Error()))
		return nil, err
	}
	if len(itags) == 0 {
		s.log.Debug("User owns no tags", slog.String("handle", handle))
		return nil, custom_errors.ErrNoUserTags
	}

	return s.projector.Tags(ctx, itags)
}

func (s *TagService) FrequentlyUsed(ctx context.Context, user model.AuthUser) (model.TagGroups, error) {
	if err := s.authGate.RequireUser(user); err != nil {
		return nil, err
	}
	s.log.Debug("Computing frequently used tags", slog.Int64("user_id", user.ID))

	start := time.Now()
	cached, err := s.tagCache.GetFrequentlyUsed(ctx, user.ID)
	s.metrics.RecordCacheOperationDuration("frequently_used_get", time.Since(start))
	if err == nil {
		s.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		s.log.Warn("Failed to read frequently used tags from cache", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
	} else {
		s.metrics.IncrementCacheMisses()
	}

	posts, err := s.postClient.GetUserPosts(ctx, user.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Caller has no recent posts", slog.Int64("user_id", user.ID))
			posts = nil
		} else {
			s.log.Error("Failed to fetch caller posts", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
			return nil, err
		}
	}

	groupsByPost := make([]model.TagGroups, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	for i, post := range posts {
		g.Go(func() error {
			postIDInt, err := post.PostID.Int64()
			if err != nil {
				s.log.Warn("Skipping post with malformed id", slog.String("post_id", post.PostID.String()))
				return nil
			}
			groups, err := s.postTagGroups(gctx, post.PostID, postIDInt)
			if err != nil {
				// A post deleted between the listing and this read is skipped.
				if errors.Is(err, custom_errors.ErrPostNotFound) {
					s.log.Warn("Post disappeared while aggregating tags", slog.String("post_id", post.PostID.String()))
					return nil
				}
				return err
			}
			groupsByPost[i] = groups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to aggregate frequently used tags", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
		return nil, err
	}

	frequent := aggregateFrequent(groupsByPost)

	setStart := time.Now()
	if err := s.tagCache.SetFrequentlyUsed(ctx, user.ID, frequent); err != nil {
		s.log.Warn("Failed to cache frequently used tags", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
	}
	s.metrics.RecordCacheOperationDuration("frequently_used_set", time.Since(setStart))

	return frequent, nil
}

// validatePatch checks the update fields and splits off the owner handle,
// which is resolved later once the caller is authorized. Empty strings are
// treated the same as absent fields.
func validatePatch(dto *model.UpdateTagDTO) (*model.TagPatch, string, error) {
	if dto == nil || dto.Empty() {
		return nil, "", custom_errors.ErrNoUpdateParameters
	}

	patch := &model.TagPatch{Deprecated: dto.Deprecated}
	if dto.Name != nil {
		if newName := normalizeTag(*dto.Name); newName != "" {
			patch.Name = &newName
		}
	}
	if dto.Group != nil {
		if group := normalizeTag(*dto.Group); group != "" {
			patch.Group = &group
		}
	}
	if dto.Description != nil && *dto.Description != "" {
		if utf8.RuneCountInString(*dto.Description) > maxDescriptionLength {
			return nil, "", custom_errors.ErrDescriptionTooLong
		}
		patch.Description = dto.Description
	}

	var ownerHandle string
	if dto.Owner != nil {
		ownerHandle = strings.TrimSpace(*dto.Owner)
	}

	if patch.Name == nil && patch.Group == nil && patch.Description == nil && patch.Deprecated == nil && ownerHandle == "" {
		return nil, "", custom_errors.ErrNoUpdateParameters
	}
	return patch, ownerHandle, nil
}

// fetchInternalTag reads a tag through the cache.
func (s *TagService) fetchInternalTag(ctx context.Context, name string) (*model.InternalTag, error) {
	start := time.Now()
	cached, err := s.tagCache.GetTag(ctx, name)
	s.metrics.RecordCacheOperationDuration("tag_get", time.Since(start))
	if err == nil {
		s.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		s.log.Warn("Failed to read tag from cache", slog.String("tag", name), slog.String("error", err.Error()))
	} else {
		s.metrics.IncrementCacheMisses()
	}

	itag, err := s.repo.GetTag(ctx, name)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := s.tagCache.SetTag(ctx, itag); err != nil {
		s.log.Warn("Failed to cache tag", slog.String("tag", name), slog.String("error", err.Error()))
	}
	s.metrics.RecordCacheOperationDuration("tag_set", time.Since(setStart))

	return itag, nil
}

// postTagGroups reads a post's tag groups through the cache. The repository
// read distinguishes a post with no tags from a missing post.
func (s *TagService) postTagGroups(ctx context.Context, postID model.PostID, postIDInt int64) (model.TagGroups, error) {
	start := time.Now()
	cached, err := s.tagCache.GetPostTags(ctx, postID)
	s.metrics.RecordCacheOperationDuration("post_tags_get", time.Since(start))
	if err == nil {
		s.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		s.log.Warn("Failed to read post tags from cache", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
	} else {
		s.metrics.IncrementCacheMisses()
	}

	postTags, err := s.repo.GetPostTags(ctx, postIDInt)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := s.tagCache.SetPostTags(ctx, postID, postTags.Groups); err != nil {
		s.log.Warn("Failed to cache post tags", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
	}
	s.metrics.RecordCacheOperationDuration("post_tags_set", time.Since(setStart))

	return postTags.Groups, nil
}

// userTags reads a user's owned tags through the cache. Empty results are
// cached as well.
func (s *TagService) userTags(ctx context.Context, userID int64) ([]*model.InternalTag, error) {
	start := time.Now()
	cached, err := s.tagCache.GetUserTags(ctx, userID)
	s.metrics.RecordCacheOperationDuration("user_tags_get", time.Since(start))
	if err == nil {
		s.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		s.log.Warn("Failed to read user tags from cache", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	} else {
		s.metrics.IncrementCacheMisses()
	}

	itags, err := s.repo.GetUserTags(ctx, userID)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := s.tagCache.SetUserTags(ctx, userID, itags); err != nil {
		s.log.Warn("Failed to cache user tags", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	s.metrics.RecordCacheOperationDuration("user_tags_set", time.Since(setStart))

	return itags, nil
}

// refreshTagCache rewrites the cached entry to reflect a committed patch.
// On rename the old key is invalidated first.
func (s *TagService) refreshTagCache(ctx context.Context, name string, itag *model.InternalTag, patch *model.TagPatch) {
	updated := *itag
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Group != nil {
		updated.Group = *patch.Group
	}
	if patch.OwnerID != nil {
		updated.OwnerID = patch.OwnerID
	}
	if patch.Description != nil {
		updated.Description = patch.Description
	}
	if patch.Deprecated != nil {
		updated.Deprecated = *patch.Deprecated
	}

	if updated.Name != name {
		if err := s.tagCache.DeleteTag(ctx, name); err != nil {
			s.log.Warn("Failed to invalidate renamed tag", slog.String("tag", name), slog.String("error", err.Error()))
		}
	}
	if err := s.tagCache.SetTag(ctx, &updated); err != nil {
		s.log.Warn("Failed to cache updated tag", slog.String("tag", updated.Name), slog.String("error", err.Error()))
	}
}

// appendCachedChild patches the parent's cached entry after a new
// inheritance edge instead of invalidating it.
func (s *TagService) appendCachedChild(ctx context.Context, parent string, child string) {
	cached, err := s.tagCache.GetTag(ctx, parent)
	if err != nil {
		if !errors.Is(err, custom_errors.ErrCacheMiss) {
			s.log.Warn("Failed to read parent tag from cache", slog.String("tag", parent), slog.String("error", err.Error()))
		}
		return
	}
	for _, name := range cached.InheritedTags {
		if name == child {
			return
		}
	}
	cached.InheritedTags = append(cached.InheritedTags, child)
	sort.Strings(cached.InheritedTags)
	if err := s.tagCache.SetTag(ctx, cached); err != nil {
		s.log.Warn("Failed to patch parent tag cache", slog.String("tag", parent), slog.String("error", err.Error()))
	}
}

// removeCachedChild is the inverse patch after an edge removal.
func (s *TagService) removeCachedChild(ctx context.Context, parent string, child string) {
	cached, err := s.tagCache.GetTag(ctx, parent)
	if err != nil {
		if !errors.Is(err, custom_errors.ErrCacheMiss) {
			s.log.Warn("Failed to read parent tag from cache", slog.String("tag", parent), slog.String("error", err.Error()))
		}
		return
	}
	children := cached.InheritedTags[:0]
	for _, name := range cached.InheritedTags {
		if name != child {
			children = append(children, name)
		}
	}
	cached.InheritedTags = children
	if err := s.tagCache.SetTag(ctx, cached); err != nil {
		s.log.Warn("Failed to patch parent tag cache", slog.String("tag", parent), slog.String("error", err.Error()))
	}
}

func (s *TagService) invalidatePostTags(ctx context.Context, postID model.PostID) {
	start := time.Now()
	if err := s.tagCache.DeletePostTags(ctx, postID); err != nil {
		s.log.Warn("Failed to invalidate post tags cache", slog.String("post_id", postID.String()), slog.String("error", err.Error()))
	}
	s.metrics.RecordCacheOperationDuration("post_tags_delete", time.Since(start))
}

// normalizeTag lowercases and trims a single tag name.
func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// normalizeTags lowercases, trims and deduplicates while preserving order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = normalizeTag(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}

// aggregateFrequent counts tag occurrences per group across the given posts
// and keeps the most used names per group, 25 for misc and 10 for every
// other group, ties broken alphabetically.
func aggregateFrequent(groupsByPost []model.TagGroups) model.TagGroups {
	counts := make(map[string]map[string]int)
	for _, groups := range groupsByPost {
		for group, tags := range groups {
			if counts[group] == nil {
				counts[group] = make(map[string]int)
			}
			for _, tag := range tags {
				counts[group][tag]++
			}
		}
	}

	frequent := make(model.TagGroups, len(counts))
	for group, tagCounts := range counts {
		names := make([]string, 0, len(tagCounts))
		for name := range tagCounts {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if tagCounts[names[i]] != tagCounts[names[j]] {
				return tagCounts[names[i]] > tagCounts[names[j]]
			}
			return names[i] < names[j]
		})
		limit := frequentGroupLimit
		if group == "misc" {
			limit = frequentMiscLimit
		}
		if len(names) > limit {
			names = names[:limit]
		}
		frequent[group] = names
	}
	return frequent
}
