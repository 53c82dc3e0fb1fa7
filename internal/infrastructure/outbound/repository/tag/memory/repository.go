package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
)

type memTag struct {
	name        string
	group       string
	ownerID     *int64
	deprecated  bool
	description *string
}

type memPost struct {
	userID  int64
	privacy model.Privacy
}

// TagRepository is an in-memory stand-in for the SQL gateway. It mirrors the
// stored-procedure semantics closely enough for service and handler tests:
// implicit tag creation into misc, transitive inheritance on add, exact
// removal, and cycle-free edge management.
type TagRepository struct {
	log      ports.Logger
	mu       sync.RWMutex
	tags     map[string]*memTag
	children map[string]map[string]bool
	postTags map[int64]map[string]bool
	posts    map[int64]*memPost
	classes  map[string]bool
}

func NewTagRepository(log ports.Logger) *TagRepository {
	return &TagRepository{
		log:      log,
		tags:     make(map[string]*memTag),
		children: make(map[string]map[string]bool),
		postTags: make(map[int64]map[string]bool),
		posts:    make(map[int64]*memPost),
		classes: map[string]bool{
			"artist":  true,
			"subject": true,
			"sponsor": true,
			"species": true,
			"gender":  true,
			"misc":    true,
		},
	}
}

// SimulatePost registers a post row so tag operations against it succeed.
func (r *TagRepository) SimulatePost(postID int64, userID int64, privacy model.Privacy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[postID] = &memPost{userID: userID, privacy: privacy}
	if _, ok := r.postTags[postID]; !ok {
		r.postTags[postID] = make(map[string]bool)
	}
}

func (r *TagRepository) AddTags(ctx context.Context, postID int64, userID int64, tags []string) error {
	r.log.Debug("Adding tags to post (memory impl)", slog.Int64("post_id", postID), slog.Int("tags_count", len(tags)))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[postID]; !ok {
		return custom_errors.ErrPostNotFound
	}

	applied := r.postTags[postID]
	for _, name := range tags {
		r.ensureTag(name)
		applied[name] = true
		for _, descendant := range r.descendantsOf(name) {
			applied[descendant] = true
		}
	}
	return nil
}

func (r *TagRepository) RemoveTags(ctx context.Context, postID int64, userID int64, tags []string) error {
	r.log.Debug("Removing tags from post (memory impl)", slog.Int64("post_id", postID), slog.Int("tags_count", len(tags)))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[postID]; !ok {
		return custom_errors.ErrPostNotFound
	}

	applied := r.postTags[postID]
	for _, name := range tags {
		delete(applied, name)
	}
	return nil
}

func (r *TagRepository) InheritTag(ctx context.Context, userID int64, parent string, child string, deprecate bool) error {
	r.log.Debug("Creating tag inheritance (memory impl)", slog.String("parent", parent), slog.String("child", child))

	r.mu.Lock()
	defer r.mu.Unlock()

	if parent == child {
		return custom_errors.ErrInheritanceCycle
	}

	r.ensureTag(parent)
	r.ensureTag(child)

	if r.children[parent][child] {
		return custom_errors.ErrDuplicateInheritance
	}
	if r.reachable(child, parent) {
		return custom_errors.ErrInheritanceCycle
	}

	if r.children[parent] == nil {
		r.children[parent] = make(map[string]bool)
	}
	r.children[parent][child] = true

	if deprecate {
		r.tags[child].deprecated = true
	}
	return nil
}

func (r *TagRepository) RemoveInheritance(ctx context.Context, parent string, child string) error {
	r.log.Debug("Removing tag inheritance (memory impl)", slog.String("parent", parent), slog.String("child", child))

	r.mu.Lock()
	defer r.mu.Unlock()

	// Deleting an absent edge is a no-op, not an error.
	delete(r.children[parent], child)
	return nil
}

func (r *TagRepository) UpdateTag(ctx context.Context, name string, patch *model.TagPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.Name == nil && patch.Group == nil && patch.OwnerID == nil && patch.Description == nil && patch.Deprecated == nil {
		return custom_errors.ErrNoUpdateParameters
	}

	tag, ok := r.tags[name]
	if !ok {
		return custom_errors.ErrTagNotFound
	}

	if patch.Group != nil {
		if !r.classes[*patch.Group] {
			return custom_errors.ErrUnknownTagGroup
		}
		tag.group = *patch.Group
	}
	if patch.Name != nil && *patch.Name != name {
		if _, taken := r.tags[*patch.Name]; taken {
			return custom_errors.ErrTagAlreadyExists
		}
		delete(r.tags, name)
		tag.name = *patch.Name
		r.tags[tag.name] = tag
		r.renameEdges(name, tag.name)
		r.renameAssociations(name, tag.name)
	}
	if patch.OwnerID != nil {
		owner := *patch.OwnerID
		tag.ownerID = &owner
	}
	if patch.Description != nil {
		description := *patch.Description
		tag.description = &description
	}
	if patch.Deprecated != nil {
		tag.deprecated = *patch.Deprecated
	}
	return nil
}

func (r *TagRepository) GetTag(ctx context.Context, name string) (*model.InternalTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[name]
	if !ok {
		r.log.Debug("Tag not found (memory impl)", slog.String("tag", name))
		return nil, custom_errors.ErrTagNotFound
	}
	return r.buildInternalTag(tag), nil
}

func (r *TagRepository) GetPostTags(ctx context.Context, postID int64) (*model.PostTags, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[postID]
	if !ok {
		r.log.Debug("Post not found (memory impl)", slog.Int64("post_id", postID))
		return nil, custom_errors.ErrPostNotFound
	}

	groups := model.TagGroups{}
	for name := range r.postTags[postID] {
		tag, ok := r.tags[name]
		if !ok || tag.deprecated {
			continue
		}
		groups[tag.group] = append(groups[tag.group], name)
	}
	groups.SortValues()

	return &model.PostTags{
		Groups:  groups,
		Privacy: post.privacy,
		UserID:  post.userID,
	}, nil
}

func (r *TagRepository) GetUserTags(ctx context.Context, userID int64) ([]*model.InternalTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.InternalTag
	for _, tag := range r.tags {
		if tag.ownerID != nil && *tag.ownerID == userID {
			result = append(result, r.buildInternalTag(tag))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *TagRepository) GetAllTags(ctx context.Context) ([]*model.InternalTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.InternalTag, 0, len(r.tags))
	for _, tag := range r.tags {
		result = append(result, r.buildInternalTag(tag))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *TagRepository) CountPublicPosts(ctx context.Context, tag string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.tags[tag]; !ok || t.deprecated {
		return 0, nil
	}

	var count int64
	for postID, applied := range r.postTags {
		post, ok := r.posts[postID]
		if !ok || post.privacy != model.PrivacyPublic {
			continue
		}
		if applied[tag] {
			count++
		}
	}
	return count, nil
}

// ensureTag mirrors the implicit creation the SQL procedure performs: new
// tags land in misc with no owner.
func (r *TagRepository) ensureTag(name string) {
	if _, ok := r.tags[name]; !ok {
		r.tags[name] = &memTag{name: name, group: "misc"}
	}
}

func (r *TagRepository) descendantsOf(name string) []string {
	var result []string
	seen := map[string]bool{name: true}
	queue := []string{name}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for child := range r.children[current] {
			if seen[child] {
				continue
			}
			seen[child] = true
			result = append(result, child)
			queue = append(queue, child)
		}
	}
	return result
}

func (r *TagRepository) reachable(from, to string) bool {
	if from == to {
		return true
	}
	for _, descendant := range r.descendantsOf(from) {
		if descendant == to {
			return true
		}
	}
	return false
}

func (r *TagRepository) renameEdges(oldName, newName string) {
	if children, ok := r.children[oldName]; ok {
		delete(r.children, oldName)
		r.children[newName] = children
	}
	for _, children := range r.children {
		if children[oldName] {
			delete(children, oldName)
			children[newName] = true
		}
	}
}

func (r *TagRepository) renameAssociations(oldName, newName string) {
	for _, applied := range r.postTags {
		if applied[oldName] {
			delete(applied, oldName)
			applied[newName] = true
		}
	}
}

func (r *TagRepository) buildInternalTag(tag *memTag) *model.InternalTag {
	inherited := make([]string, 0, len(r.children[tag.name]))
	for child := range r.children[tag.name] {
		inherited = append(inherited, child)
	}
	sort.Strings(inherited)

	internal := &model.InternalTag{
		Name:          tag.name,
		Group:         tag.group,
		Deprecated:    tag.deprecated,
		InheritedTags: inherited,
	}
	if tag.ownerID != nil {
		owner := *tag.ownerID
		internal.OwnerID = &owner
	}
	if tag.description != nil {
		description := *tag.description
		internal.Description = &description
	}
	return internal
}
