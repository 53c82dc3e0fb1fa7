package tag_repository_test

import (
	"context"
	"testing"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	tag_repository "pinstack-tag-service/internal/domain/ports/output/tag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinstack-tag-service/internal/infrastructure/logger"
	"pinstack-tag-service/internal/infrastructure/outbound/repository/tag/memory"
)

func setupTagTest(t *testing.T) (tag_repository.Repository, *memory.TagRepository) {
	t.Helper()
	log := logger.New("test")
	repo := memory.NewTagRepository(log)
	return repo, repo
}

func TestTagRepository_AddTags(t *testing.T) {
	repo, mem := setupTagTest(t)

	postID := int64(1)
	mem.SimulatePost(postID, 10, model.PrivacyPublic)

	tests := []struct {
		name    string
		postID  int64
		tags    []string
		wantErr error
	}{
		{
			name:    "tags created implicitly on first application",
			postID:  postID,
			tags:    []string{"fox", "forest"},
			wantErr: nil,
		},
		{
			name:    "re-adding present tags is idempotent",
			postID:  postID,
			tags:    []string{"fox"},
			wantErr: nil,
		},
		{
			name:    "non-existent post",
			postID:  999,
			tags:    []string{"fox"},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.AddTags(context.Background(), tt.postID, 10, tt.tags)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)

			postTags, err := repo.GetPostTags(context.Background(), tt.postID)
			require.NoError(t, err)
			for _, tag := range tt.tags {
				assert.Contains(t, postTags.Groups["misc"], tag)
			}
		})
	}
}

func TestTagRepository_AddTags_AppliesInheritedChildren(t *testing.T) {
	repo, mem := setupTagTest(t)

	postID := int64(1)
	mem.SimulatePost(postID, 10, model.PrivacyPublic)

	require.NoError(t, repo.InheritTag(context.Background(), 1, "canine", "dog", false))
	require.NoError(t, repo.InheritTag(context.Background(), 1, "dog", "puppy", false))

	err := repo.AddTags(context.Background(), postID, 10, []string{"canine"})
	require.NoError(t, err)

	postTags, err := repo.GetPostTags(context.Background(), postID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"canine", "dog", "puppy"}, postTags.Groups["misc"])
}

func TestTagRepository_RemoveTags(t *testing.T) {
	repo, mem := setupTagTest(t)

	postID := int64(1)
	mem.SimulatePost(postID, 10, model.PrivacyPublic)
	require.NoError(t, repo.AddTags(context.Background(), postID, 10, []string{"fox", "forest", "night"}))

	tests := []struct {
		name       string
		postID     int64
		tags       []string
		wantRemain []string
		wantErr    error
	}{
		{
			name:       "remove single tag",
			postID:     postID,
			tags:       []string{"fox"},
			wantRemain: []string{"forest", "night"},
		},
		{
			name:       "removing an absent tag is ignored",
			postID:     postID,
			tags:       []string{"nonexistent"},
			wantRemain: []string{"forest", "night"},
		},
		{
			name:    "non-existent post",
			postID:  999,
			tags:    []string{"fox"},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.RemoveTags(context.Background(), tt.postID, 10, tt.tags)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)

			postTags, err := repo.GetPostTags(context.Background(), tt.postID)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantRemain, postTags.Groups["misc"])
		})
	}
}

func TestTagRepository_InheritTag(t *testing.T) {
	repo, _ := setupTagTest(t)

	require.NoError(t, repo.InheritTag(context.Background(), 1, "canine", "dog", false))
	require.NoError(t, repo.InheritTag(context.Background(), 1, "dog", "puppy", false))

	tests := []struct {
		name      string
		parent    string
		child     string
		deprecate bool
		wantErr   error
	}{
		{
			name:    "duplicate edge",
			parent:  "canine",
			child:   "dog",
			wantErr: custom_errors.ErrDuplicateInheritance,
		},
		{
			name:    "self edge",
			parent:  "dog",
			child:   "dog",
			wantErr: custom_errors.ErrInheritanceCycle,
		},
		{
			name:    "direct cycle",
			parent:  "dog",
			child:   "canine",
			wantErr: custom_errors.ErrInheritanceCycle,
		},
		{
			name:    "transitive cycle",
			parent:  "puppy",
			child:   "canine",
			wantErr: custom_errors.ErrInheritanceCycle,
		},
		{
			name:      "deprecating edge marks the child",
			parent:    "canine",
			child:     "wolf",
			deprecate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.InheritTag(context.Background(), 1, tt.parent, tt.child, tt.deprecate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			parent, err := repo.GetTag(context.Background(), tt.parent)
			require.NoError(t, err)
			assert.Contains(t, parent.InheritedTags, tt.child)

			if tt.deprecate {
				child, err := repo.GetTag(context.Background(), tt.child)
				require.NoError(t, err)
				assert.True(t, child.Deprecated)
			}
		})
	}
}

func TestTagRepository_RemoveInheritance(t *testing.T) {
	repo, _ := setupTagTest(t)

	require.NoError(t, repo.InheritTag(context.Background(), 1, "canine", "dog", false))

	t.Run("removes the edge", func(t *testing.T) {
		err := repo.RemoveInheritance(context.Background(), "canine", "dog")
		require.NoError(t, err)

		parent, err := repo.GetTag(context.Background(), "canine")
		require.NoError(t, err)
		assert.NotContains(t, parent.InheritedTags, "dog")
	})

	t.Run("absent edge is not an error", func(t *testing.T) {
		err := repo.RemoveInheritance(context.Background(), "canine", "dog")
		assert.NoError(t, err)
	})
}

func TestTagRepository_UpdateTag(t *testing.T) {
	repo, mem := setupTagTest(t)

	postID := int64(1)
	mem.SimulatePost(postID, 10, model.PrivacyPublic)
	require.NoError(t, repo.AddTags(context.Background(), postID, 10, []string{"cat", "dog"}))

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	int64Ptr := func(i int64) *int64 { return &i }

	tests := []struct {
		name    string
		tag     string
		patch   *model.TagPatch
		wantErr error
		check   func(t *testing.T)
	}{
		{
			name:    "empty patch",
			tag:     "cat",
			patch:   &model.TagPatch{},
			wantErr: custom_errors.ErrNoUpdateParameters,
		},
		{
			name:    "unknown tag",
			tag:     "nonexistent",
			patch:   &model.TagPatch{Deprecated: boolPtr(true)},
			wantErr: custom_errors.ErrTagNotFound,
		},
		{
			name:    "rename onto taken name",
			tag:     "cat",
			patch:   &model.TagPatch{Name: strPtr("dog")},
			wantErr: custom_errors.ErrTagAlreadyExists,
		},
		{
			name:    "unknown group",
			tag:     "cat",
			patch:   &model.TagPatch{Group: strPtr("vehicle")},
			wantErr: custom_errors.ErrUnknownTagGroup,
		},
		{
			name:  "rename carries post associations",
			tag:   "cat",
			patch: &model.TagPatch{Name: strPtr("feline")},
			check: func(t *testing.T) {
				_, err := repo.GetTag(context.Background(), "cat")
				assert.ErrorIs(t, err, custom_errors.ErrTagNotFound)

				postTags, err := repo.GetPostTags(context.Background(), postID)
				require.NoError(t, err)
				assert.Contains(t, postTags.Groups["misc"], "feline")
				assert.NotContains(t, postTags.Groups["misc"], "cat")
			},
		},
		{
			name: "owner group and description patch",
			tag:  "dog",
			patch: &model.TagPatch{
				Group:       strPtr("species"),
				OwnerID:     int64Ptr(42),
				Description: strPtr("best friend"),
			},
			check: func(t *testing.T) {
				tag, err := repo.GetTag(context.Background(), "dog")
				require.NoError(t, err)
				assert.Equal(t, "species", tag.Group)
				require.NotNil(t, tag.OwnerID)
				assert.Equal(t, int64(42), *tag.OwnerID)
				require.NotNil(t, tag.Description)
				assert.Equal(t, "best friend", *tag.Description)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpdateTag(context.Background(), tt.tag, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestTagRepository_GetPostTags(t *testing.T) {
	repo, mem := setupTagTest(t)

	taggedPost := int64(1)
	emptyPost := int64(2)
	mem.SimulatePost(taggedPost, 10, model.PrivacyPrivate)
	mem.SimulatePost(emptyPost, 11, model.PrivacyPublic)

	require.NoError(t, repo.AddTags(context.Background(), taggedPost, 10, []string{"fox", "forest", "night"}))

	deprecated := true
	require.NoError(t, repo.UpdateTag(context.Background(), "night", &model.TagPatch{Deprecated: &deprecated}))

	t.Run("post with tags excludes deprecated", func(t *testing.T) {
		got, err := repo.GetPostTags(context.Background(), taggedPost)
		require.NoError(t, err)
		assert.Equal(t, model.PrivacyPrivate, got.Privacy)
		assert.Equal(t, int64(10), got.UserID)
		assert.Equal(t, []string{"forest", "fox"}, got.Groups["misc"])
	})

	t.Run("known post with no tags", func(t *testing.T) {
		got, err := repo.GetPostTags(context.Background(), emptyPost)
		require.NoError(t, err)
		assert.Empty(t, got.Groups)
		assert.Equal(t, model.PrivacyPublic, got.Privacy)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.GetPostTags(context.Background(), 999)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestTagRepository_GetUserTags(t *testing.T) {
	repo, _ := setupTagTest(t)

	owner := int64(42)
	require.NoError(t, repo.InheritTag(context.Background(), 1, "canine", "dog", false))
	require.NoError(t, repo.UpdateTag(context.Background(), "canine", &model.TagPatch{OwnerID: &owner}))
	require.NoError(t, repo.UpdateTag(context.Background(), "dog", &model.TagPatch{OwnerID: &owner}))

	got, err := repo.GetUserTags(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "canine", got[0].Name)
	assert.Equal(t, "dog", got[1].Name)

	none, err := repo.GetUserTags(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTagRepository_CountPublicPosts(t *testing.T) {
	repo, mem := setupTagTest(t)

	publicPost := int64(1)
	privatePost := int64(2)
	mem.SimulatePost(publicPost, 10, model.PrivacyPublic)
	mem.SimulatePost(privatePost, 10, model.PrivacyPrivate)

	require.NoError(t, repo.AddTags(context.Background(), publicPost, 10, []string{"fox"}))
	require.NoError(t, repo.AddTags(context.Background(), privatePost, 10, []string{"fox"}))

	count, err := repo.CountPublicPosts(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deprecated := true
	require.NoError(t, repo.UpdateTag(context.Background(), "fox", &model.TagPatch{Deprecated: &deprecated}))

	count, err = repo.CountPublicPosts(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
