package tag_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	tag_port "pinstack-tag-service/internal/domain/ports/input/tag"
	"pinstack-tag-service/internal/infrastructure/logger"
	"pinstack-tag-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "pinstack-tag-service/mocks/cache"
	client_mock "pinstack-tag-service/mocks/client"
	postgres_mock "pinstack-tag-service/mocks/postgres"
	tag_repository_mock "pinstack-tag-service/mocks/tag"
)

type serviceMocks struct {
	repo       *tag_repository_mock.Repository
	uow        *postgres_mock.UnitOfWork
	tx         *postgres_mock.Transaction
	tagCache   *cache_mock.TagCache
	counters   *cache_mock.CounterStore
	userClient *client_mock.UserClient
	postClient *client_mock.PostClient
}

func newServiceWithMocks(t *testing.T) (tag_port.Service, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		repo:       new(tag_repository_mock.Repository),
		uow:        new(postgres_mock.UnitOfWork),
		tx:         new(postgres_mock.Transaction),
		tagCache:   new(cache_mock.TagCache),
		counters:   new(cache_mock.CounterStore),
		userClient: new(client_mock.UserClient),
		postClient: new(client_mock.PostClient),
	}
	svc := NewTagService(
		m.repo,
		m.uow,
		m.tagCache,
		m.counters,
		m.userClient,
		m.postClient,
		logger.New("test"),
		prometheus.NewPrometheusMetricsProvider(),
	)
	return svc, m
}

func authedUser(id int64, scopes ...model.Scope) model.AuthUser {
	return model.AuthUser{ID: id, Scopes: scopes, Authenticated: true}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTagService_AddTags(t *testing.T) {
	postID := model.PostIDFromInt64(1)
	postIDInt := int64(1)

	tests := []struct {
		name        string
		mocks       func(m *serviceMocks)
		user        model.AuthUser
		postID      model.PostID
		tags        []string
		wantErrType error
	}{
		{
			name: "Success increments only newly added tags on public post",
			mocks: func(m *serviceMocks) {
				m.repo.On("AddTags", mock.Anything, postIDInt, int64(10), []string{"fox", "forest"}).Return(nil)
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPublic}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{"misc": {"forest"}}, nil)
				m.counters.On("Increment", mock.Anything, "fox").Return(nil)
				m.tagCache.On("DeletePostTags", mock.Anything, postID).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tags: []string{"Fox", "fox", "FOREST"},
		},
		{
			name: "Private post leaves counters untouched",
			mocks: func(m *serviceMocks) {
				m.repo.On("AddTags", mock.Anything, postIDInt, int64(10), []string{"fox"}).Return(nil)
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPrivate}, nil)
				m.tagCache.On("DeletePostTags", mock.Anything, postID).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tags: []string{"fox"},
		},
		{
			name: "Counter failure is swallowed",
			mocks: func(m *serviceMocks) {
				m.repo.On("AddTags", mock.Anything, postIDInt, int64(10), []string{"fox"}).Return(nil)
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPublic}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{}, nil)
				m.counters.On("Increment", mock.Anything, "fox").Return(custom_errors.ErrCounterUpdateFailed)
				m.tagCache.On("DeletePostTags", mock.Anything, postID).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tags: []string{"fox"},
		},
		{
			name:        "Unauthenticated caller",
			mocks:       func(m *serviceMocks) {},
			user:        model.AuthUser{},
			tags:        []string{"fox"},
			wantErrType: custom_errors.ErrUnauthenticated,
		},
		{
			name:        "Malformed post id",
			mocks:       func(m *serviceMocks) {},
			user:        authedUser(10, model.ScopeUser),
			postID:      model.PostID("not base64!"),
			tags:        []string{"fox"},
			wantErrType: custom_errors.ErrInvalidPostID,
		},
		{
			name: "Post not found in repository",
			mocks: func(m *serviceMocks) {
				m.repo.On("AddTags", mock.Anything, postIDInt, int64(10), []string{"fox"}).Return(custom_errors.ErrPostNotFound)
			},
			user:        authedUser(10, model.ScopeUser),
			tags:        []string{"fox"},
			wantErrType: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			id := tt.postID
			if id == "" {
				id = postID
			}
			err := svc.AddTags(context.Background(), tt.user, id, tt.tags)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			m.repo.AssertExpectations(t)
			m.counters.AssertExpectations(t)
			m.tagCache.AssertExpectations(t)
		})
	}
}

func TestTagService_RemoveTags(t *testing.T) {
	postID := model.PostIDFromInt64(2)
	postIDInt := int64(2)

	tests := []struct {
		name        string
		mocks       func(m *serviceMocks)
		user        model.AuthUser
		tags        []string
		wantErrType error
	}{
		{
			name: "Success decrements only tags still on the post",
			mocks: func(m *serviceMocks) {
				m.repo.On("RemoveTags", mock.Anything, postIDInt, int64(10), []string{"fox", "night"}).Return(nil)
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPublic}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{"misc": {"fox", "forest"}}, nil)
				m.counters.On("Decrement", mock.Anything, "fox").Return(nil)
				m.tagCache.On("DeletePostTags", mock.Anything, postID).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tags: []string{"fox", "night"},
		},
		{
			name: "Unlisted post leaves counters untouched",
			mocks: func(m *serviceMocks) {
				m.repo.On("RemoveTags", mock.Anything, postIDInt, int64(10), []string{"fox"}).Return(nil)
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyUnlisted}, nil)
				m.tagCache.On("DeletePostTags", mock.Anything, postID).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tags: []string{"fox"},
		},
		{
			name:        "Unauthenticated caller",
			mocks:       func(m *serviceMocks) {},
			user:        model.AuthUser{},
			tags:        []string{"fox"},
			wantErrType: custom_errors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			err := svc.RemoveTags(context.Background(), tt.user, postID, tt.tags)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			m.repo.AssertExpectations(t)
			m.counters.AssertExpectations(t)
			m.tagCache.AssertExpectations(t)
		})
	}
}

func TestTagService_InheritTag(t *testing.T) {
	tests := []struct {
		name        string
		mocks       func(m *serviceMocks)
		user        model.AuthUser
		parent      string
		child       string
		deprecate   bool
		wantErrType error
	}{
		{
			name: "Success patches cached parent entry",
			mocks: func(m *serviceMocks) {
				m.repo.On("InheritTag", mock.Anything, int64(1), "canine", "dog", false).Return(nil)
				m.tagCache.On("GetTag", mock.Anything, "canine").Return(&model.InternalTag{Name: "canine", Group: "species"}, nil)
				m.tagCache.On("SetTag", mock.Anything, mock.MatchedBy(func(tag *model.InternalTag) bool {
					return tag.Name == "canine" && len(tag.InheritedTags) == 1 && tag.InheritedTags[0] == "dog"
				})).Return(nil)
			},
			user:   authedUser(1, model.ScopeAdmin),
			parent: "Canine",
			child:  "Dog",
		},
		{
			name: "Deprecate flag also invalidates the child entry",
			mocks: func(m *serviceMocks) {
				m.repo.On("InheritTag", mock.Anything, int64(1), "canine", "dog", true).Return(nil)
				m.tagCache.On("GetTag", mock.Anything, "canine").Return(nil, custom_errors.ErrCacheMiss)
				m.tagCache.On("DeleteTag", mock.Anything, "dog").Return(nil)
			},
			user:      authedUser(1, model.ScopeAdmin),
			parent:    "canine",
			child:     "dog",
			deprecate: true,
		},
		{
			name: "Duplicate edge",
			mocks: func(m *serviceMocks) {
				m.repo.On("InheritTag", mock.Anything, int64(1), "canine", "dog", false).Return(custom_errors.ErrDuplicateInheritance)
			},
			user:        authedUser(1, model.ScopeAdmin),
			parent:      "canine",
			child:       "dog",
			wantErrType: custom_errors.ErrDuplicateInheritance,
		},
		{
			name: "Edge would create a cycle",
			mocks: func(m *serviceMocks) {
				m.repo.On("InheritTag", mock.Anything, int64(1), "dog", "canine", false).Return(custom_errors.ErrInheritanceCycle)
			},
			user:        authedUser(1, model.ScopeAdmin),
			parent:      "dog",
			child:       "canine",
			wantErrType: custom_errors.ErrInheritanceCycle,
		},
		{
			name:        "Non-admin caller",
			mocks:       func(m *serviceMocks) {},
			user:        authedUser(1, model.ScopeMod),
			parent:      "canine",
			child:       "dog",
			wantErrType: custom_errors.ErrInsufficientScope,
		},
		{
			name:        "Unauthenticated caller",
			mocks:       func(m *serviceMocks) {},
			user:        model.AuthUser{},
			parent:      "canine",
			child:       "dog",
			wantErrType: custom_errors.ErrUnauthenticated,
		},
		{
			name:        "Empty tag name",
			mocks:       func(m *serviceMocks) {},
			user:        authedUser(1, model.ScopeAdmin),
			parent:      "  ",
			child:       "dog",
			wantErrType: custom_errors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			err := svc.InheritTag(context.Background(), tt.user, tt.parent, tt.child, tt.deprecate)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			m.repo.AssertExpectations(t)
			m.tagCache.AssertExpectations(t)
		})
	}
}

func TestTagService_RemoveInheritance(t *testing.T) {
	t.Run("Success drops the child from the cached parent", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.On("RemoveInheritance", mock.Anything, "canine", "dog").Return(nil)
		m.tagCache.On("GetTag", mock.Anything, "canine").Return(&model.InternalTag{Name: "canine", Group: "species", InheritedTags: []string{"dog", "wolf"}}, nil)
		m.tagCache.On("SetTag", mock.Anything, mock.MatchedBy(func(tag *model.InternalTag) bool {
			return tag.Name == "canine" && len(tag.InheritedTags) == 1 && tag.InheritedTags[0] == "wolf"
		})).Return(nil)

		err := svc.RemoveInheritance(context.Background(), authedUser(1, model.ScopeAdmin), "canine", "dog")

		require.NoError(t, err)
		m.repo.AssertExpectations(t)
		m.tagCache.AssertExpectations(t)
	})

	t.Run("Non-admin caller", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		err := svc.RemoveInheritance(context.Background(), authedUser(1, model.ScopeUser), "canine", "dog")

		assert.ErrorIs(t, err, custom_errors.ErrInsufficientScope)
		m.repo.AssertNotCalled(t, "RemoveInheritance", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTagService_UpdateTag(t *testing.T) {
	ownerID := int64(10)
	ownedTag := func() *model.InternalTag {
		return &model.InternalTag{Name: "cat", Group: "species", OwnerID: &ownerID}
	}

	tests := []struct {
		name        string
		mocks       func(m *serviceMocks)
		user        model.AuthUser
		tag         string
		dto         *model.UpdateTagDTO
		wantErrType error
	}{
		{
			name: "Owner updates description",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.repo.On("UpdateTag", mock.Anything, "cat", mock.MatchedBy(func(patch *model.TagPatch) bool {
					return patch.Description != nil && *patch.Description == "a small feline"
				})).Return(nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.tagCache.On("SetTag", mock.Anything, mock.MatchedBy(func(tag *model.InternalTag) bool {
					return tag.Name == "cat" && tag.Description != nil && *tag.Description == "a small feline"
				})).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tag:  "cat",
			dto:  &model.UpdateTagDTO{Description: strPtr("a small feline")},
		},
		{
			name: "Rename drops the old cache key",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.repo.On("UpdateTag", mock.Anything, "cat", mock.MatchedBy(func(patch *model.TagPatch) bool {
					return patch.Name != nil && *patch.Name == "feline"
				})).Return(nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.tagCache.On("DeleteTag", mock.Anything, "cat").Return(nil)
				m.tagCache.On("SetTag", mock.Anything, mock.MatchedBy(func(tag *model.InternalTag) bool {
					return tag.Name == "feline"
				})).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tag:  "cat",
			dto:  &model.UpdateTagDTO{Name: strPtr("Feline")},
		},
		{
			name: "Owner handle is resolved through the user service",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.userClient.On("GetUserByHandle", mock.Anything, "newowner").Return(&model.InternalUser{UserID: 42, Handle: "newowner"}, nil)
				m.repo.On("UpdateTag", mock.Anything, "cat", mock.MatchedBy(func(patch *model.TagPatch) bool {
					return patch.OwnerID != nil && *patch.OwnerID == 42
				})).Return(nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.tagCache.On("SetTag", mock.Anything, mock.Anything).Return(nil)
			},
			user: authedUser(10, model.ScopeUser),
			tag:  "cat",
			dto:  &model.UpdateTagDTO{Owner: strPtr("newowner")},
		},
		{
			name: "Rename conflict keeps the cache entry intact",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.repo.On("UpdateTag", mock.Anything, "cat", mock.Anything).Return(custom_errors.ErrTagAlreadyExists)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        authedUser(10, model.ScopeUser),
			tag:         "cat",
			dto:         &model.UpdateTagDTO{Name: strPtr("dog")},
			wantErrType: custom_errors.ErrTagAlreadyExists,
		},
		{
			name: "Non-owner without mod scope",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        authedUser(99, model.ScopeUser),
			tag:         "cat",
			dto:         &model.UpdateTagDTO{Description: strPtr("nope")},
			wantErrType: custom_errors.ErrNotTagOwner,
		},
		{
			name: "Owner cannot toggle deprecation without mod scope",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        authedUser(10, model.ScopeUser),
			tag:         "cat",
			dto:         &model.UpdateTagDTO{Deprecated: boolPtr(true)},
			wantErrType: custom_errors.ErrInsufficientScope,
		},
		{
			name: "Mod deprecates a tag they do not own",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "cat").Return(ownedTag(), nil)
				m.repo.On("UpdateTag", mock.Anything, "cat", mock.MatchedBy(func(patch *model.TagPatch) bool {
					return patch.Deprecated != nil && *patch.Deprecated
				})).Return(nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.tagCache.On("SetTag", mock.Anything, mock.MatchedBy(func(tag *model.InternalTag) bool {
					return tag.Name == "cat" && tag.Deprecated
				})).Return(nil)
			},
			user: authedUser(7, model.ScopeMod),
			tag:  "cat",
			dto:  &model.UpdateTagDTO{Deprecated: boolPtr(true)},
		},
		{
			name:        "Empty patch",
			mocks:       func(m *serviceMocks) {},
			user:        authedUser(10, model.ScopeUser),
			tag:         "cat",
			dto:         &model.UpdateTagDTO{},
			wantErrType: custom_errors.ErrNoUpdateParameters,
		},
		{
			name:  "Description over the limit",
			mocks: func(m *serviceMocks) {},
			user:  authedUser(10, model.ScopeUser),
			tag:   "cat",
			dto: &model.UpdateTagDTO{Description: func() *string {
				long := make([]byte, 1001)
				for i := range long {
					long[i] = 'a'
				}
				s := string(long)
				return &s
			}()},
			wantErrType: custom_errors.ErrDescriptionTooLong,
		},
		{
			name: "Tag not found",
			mocks: func(m *serviceMocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("TagRepository").Return(m.repo)
				m.repo.On("GetTag", mock.Anything, "ghost").Return(nil, custom_errors.ErrTagNotFound)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        authedUser(10, model.ScopeUser),
			tag:         "ghost",
			dto:         &model.UpdateTagDTO{Description: strPtr("boo")},
			wantErrType: custom_errors.ErrTagNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			err := svc.UpdateTag(context.Background(), tt.user, tt.tag, tt.dto)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			m.repo.AssertExpectations(t)
			m.tagCache.AssertExpectations(t)
			m.userClient.AssertExpectations(t)
		})
	}
}

func TestTagService_FetchTag(t *testing.T) {
	ownerID := int64(5)

	t.Run("Cache hit skips the repository", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetTag", mock.Anything, "fox").Return(&model.InternalTag{Name: "fox", Group: "species"}, nil)
		m.counters.On("Get", mock.Anything, "fox").Return(int64(3), nil)

		tag, err := svc.FetchTag(context.Background(), model.AuthUser{}, "Fox")

		require.NoError(t, err)
		assert.Equal(t, "fox", tag.Tag)
		assert.Equal(t, int64(3), tag.Count)
		m.repo.AssertNotCalled(t, "GetTag", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss reads through and resolves the owner", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetTag", mock.Anything, "fox").Return(nil, custom_errors.ErrCacheMiss)
		m.repo.On("GetTag", mock.Anything, "fox").Return(&model.InternalTag{Name: "fox", Group: "species", OwnerID: &ownerID}, nil)
		m.tagCache.On("SetTag", mock.Anything, mock.Anything).Return(nil)
		m.userClient.On("GetUserByID", mock.Anything, ownerID).Return(&model.InternalUser{UserID: ownerID, Handle: "vixen", Name: "Vixen"}, nil)
		m.counters.On("Get", mock.Anything, "fox").Return(int64(7), nil)

		tag, err := svc.FetchTag(context.Background(), model.AuthUser{}, "fox")

		require.NoError(t, err)
		require.NotNil(t, tag.Owner)
		assert.Equal(t, "vixen", tag.Owner.Handle)
		assert.Equal(t, int64(7), tag.Count)
	})

	t.Run("Counter failure degrades to zero", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetTag", mock.Anything, "fox").Return(&model.InternalTag{Name: "fox", Group: "species"}, nil)
		m.counters.On("Get", mock.Anything, "fox").Return(int64(0), custom_errors.ErrCounterUpdateFailed)

		tag, err := svc.FetchTag(context.Background(), model.AuthUser{}, "fox")

		require.NoError(t, err)
		assert.Zero(t, tag.Count)
	})

	t.Run("Tag not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetTag", mock.Anything, "ghost").Return(nil, custom_errors.ErrCacheMiss)
		m.repo.On("GetTag", mock.Anything, "ghost").Return(nil, custom_errors.ErrTagNotFound)

		tag, err := svc.FetchTag(context.Background(), model.AuthUser{}, "ghost")

		assert.ErrorIs(t, err, custom_errors.ErrTagNotFound)
		assert.Nil(t, tag)
	})
}

func TestTagService_FetchTagsByPost(t *testing.T) {
	postID := model.PostIDFromInt64(3)

	tests := []struct {
		name        string
		mocks       func(m *serviceMocks)
		user        model.AuthUser
		want        model.TagGroups
		wantErrType error
	}{
		{
			name: "Public post visible to anonymous caller",
			mocks: func(m *serviceMocks) {
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPublic}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{"misc": {"forest", "fox"}}, nil)
			},
			user: model.AuthUser{},
			want: model.TagGroups{"misc": {"forest", "fox"}},
		},
		{
			name: "Private post visible to its uploader",
			mocks: func(m *serviceMocks) {
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPrivate}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{"misc": {"fox"}}, nil)
			},
			user: authedUser(10, model.ScopeUser),
			want: model.TagGroups{"misc": {"fox"}},
		},
		{
			name: "Private post hidden from other callers",
			mocks: func(m *serviceMocks) {
				m.postClient.On("GetPost", mock.Anything, postID).Return(&model.InternalPost{PostID: postID, UserID: 10, Privacy: model.PrivacyPrivate}, nil)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(model.TagGroups{"misc": {"fox"}}, nil)
			},
			user:        authedUser(99, model.ScopeUser),
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Post does not exist",
			mocks: func(m *serviceMocks) {
				m.postClient.On("GetPost", mock.Anything, postID).Return(nil, custom_errors.ErrPostNotFound)
				m.tagCache.On("GetPostTags", mock.Anything, postID).Return(nil, custom_errors.ErrCacheMiss).Maybe()
				m.repo.On("GetPostTags", mock.Anything, int64(3)).Return(nil, custom_errors.ErrPostNotFound).Maybe()
			},
			user:        model.AuthUser{},
			wantErrType: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			groups, err := svc.FetchTagsByPost(context.Background(), tt.user, postID)

			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, groups)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, groups)
			}
			m.postClient.AssertExpectations(t)
		})
	}
}

func TestTagService_FetchInternalTagsByPost(t *testing.T) {
	postID := model.PostIDFromInt64(4)

	t.Run("Skips the visibility check", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetPostTags", mock.Anything, postID).Return(nil, custom_errors.ErrCacheMiss)
		m.repo.On("GetPostTags", mock.Anything, int64(4)).Return(&model.PostTags{
			Groups:  model.TagGroups{"misc": {"fox"}},
			Privacy: model.PrivacyPrivate,
			UserID:  10,
		}, nil)
		m.tagCache.On("SetPostTags", mock.Anything, postID, model.TagGroups{"misc": {"fox"}}).Return(nil)

		groups, err := svc.FetchInternalTagsByPost(context.Background(), postID)

		require.NoError(t, err)
		assert.Equal(t, model.TagGroups{"misc": {"fox"}}, groups)
		m.postClient.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
	})
}

func TestTagService_LookupTags(t *testing.T) {
	all := []*model.InternalTag{
		{Name: "cat", Group: "species"},
		{Name: "forest", Group: "misc"},
		{Name: "fox", Group: "species"},
	}

	t.Run("Prefix narrows the snapshot", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.On("GetAllTags", mock.Anything).Return(all, nil).Once()
		m.counters.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(int64(1), nil)

		tags, err := svc.LookupTags(context.Background(), model.AuthUser{}, "fo")

		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "forest", tags[0].Tag)
		assert.Equal(t, "fox", tags[1].Tag)
	})

	t.Run("Empty prefix returns every tag without another query", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.On("GetAllTags", mock.Anything).Return(all, nil).Once()
		m.counters.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(int64(0), nil)

		first, err := svc.LookupTags(context.Background(), model.AuthUser{}, "")
		require.NoError(t, err)
		assert.Len(t, first, 3)

		// Second call inside the TTL is served from the snapshot.
		second, err := svc.LookupTags(context.Background(), model.AuthUser{}, "cat")
		require.NoError(t, err)
		assert.Len(t, second, 1)
		m.repo.AssertExpectations(t)
	})
}

func TestTagService_FetchTagsByUser(t *testing.T) {
	owner := &model.InternalUser{UserID: 10, Handle: "vixen", Name: "Vixen"}

	t.Run("Success reads through the cache", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.userClient.On("GetUserByHandle", mock.Anything, "vixen").Return(owner, nil)
		m.tagCache.On("GetUserTags", mock.Anything, int64(10)).Return(nil, custom_errors.ErrCacheMiss)
		m.repo.On("GetUserTags", mock.Anything, int64(10)).Return([]*model.InternalTag{{Name: "fox", Group: "species"}}, nil)
		m.tagCache.On("SetUserTags", mock.Anything, int64(10), mock.Anything).Return(nil)
		m.counters.On("Get", mock.Anything, "fox").Return(int64(2), nil)

		tags, err := svc.FetchTagsByUser(context.Background(), model.AuthUser{}, "vixen")

		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "fox", tags[0].Tag)
	})

	t.Run("User owns no tags", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.userClient.On("GetUserByHandle", mock.Anything, "vixen").Return(owner, nil)
		m.tagCache.On("GetUserTags", mock.Anything, int64(10)).Return([]*model.InternalTag{}, nil)

		tags, err := svc.FetchTagsByUser(context.Background(), model.AuthUser{}, "vixen")

		assert.ErrorIs(t, err, custom_errors.ErrNoUserTags)
		assert.Nil(t, tags)
	})

	t.Run("Unknown handle", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.userClient.On("GetUserByHandle", mock.Anything, "nobody").Return(nil, custom_errors.ErrUserNotFound)

		tags, err := svc.FetchTagsByUser(context.Background(), model.AuthUser{}, "nobody")

		assert.ErrorIs(t, err, custom_errors.ErrNoUserTags)
		assert.Nil(t, tags)
	})
}

func TestTagService_FrequentlyUsed(t *testing.T) {
	user := authedUser(10, model.ScopeUser)
	postA := model.PostIDFromInt64(100)
	postB := model.PostIDFromInt64(101)

	t.Run("Cache hit returns without touching the post service", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		cached := model.TagGroups{"misc": {"fox"}}
		m.tagCache.On("GetFrequentlyUsed", mock.Anything, int64(10)).Return(cached, nil)

		groups, err := svc.FrequentlyUsed(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, cached, groups)
		m.postClient.AssertNotCalled(t, "GetUserPosts", mock.Anything, mock.Anything)
	})

	t.Run("Aggregates tag counts across recent posts", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.tagCache.On("GetFrequentlyUsed", mock.Anything, int64(10)).Return(nil, custom_errors.ErrCacheMiss)
		m.postClient.On("GetUserPosts", mock.Anything, int64(10)).Return([]*model.InternalPost{
			{PostID: postA, UserID: 10, Privacy: model.PrivacyPublic},
			{PostID: postB, UserID: 10, Privacy: model.PrivacyPublic},
		}, nil)
		m.tagCache.On("GetPostTags", mock.Anything, postA).Return(model.TagGroups{"misc": {"forest", "fox"}, "species": {"fox"}}, nil)
		m.tagCache.On("GetPostTags", mock.Anything, postB).Return(model.TagGroups{"misc": {"fox"}}, nil)
		m.tagCache.On("SetFrequentlyUsed", mock.Anything, int64(10), mock.Anything).Return(nil)

		groups, err := svc.FrequentlyUsed(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, []string{"fox", "forest"}, groups["misc"])
		assert.Equal(t, []string{"fox"}, groups["species"])
	})

	t.Run("Unauthenticated caller", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		groups, err := svc.FrequentlyUsed(context.Background(), model.AuthUser{})

		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
		assert.Nil(t, groups)
	})
}

func TestAggregateFrequent(t *testing.T) {
	t.Run("Misc keeps twenty-five entries, other groups ten", func(t *testing.T) {
		posts := make([]model.TagGroups, 0, 40)
		for i := 0; i < 40; i++ {
			groups := model.TagGroups{"misc": {}, "species": {}}
			// Tag j appears on posts 0..j, so lower-numbered tags are rarer.
			for j := i; j < 40; j++ {
				groups["misc"] = append(groups["misc"], miscName(j))
				if j < 20 {
					groups["species"] = append(groups["species"], speciesName(j))
				}
			}
			posts = append(posts, groups)
		}

		frequent := aggregateFrequent(posts)

		assert.Len(t, frequent["misc"], 25)
		assert.Len(t, frequent["species"], 10)
		// The most used tag comes first.
		assert.Equal(t, miscName(39), frequent["misc"][0])
		assert.Equal(t, speciesName(19), frequent["species"][0])
	})

	t.Run("Ties break alphabetically", func(t *testing.T) {
		posts := []model.TagGroups{
			{"misc": {"zebra", "apple"}},
			{"misc": {"zebra", "apple", "mango"}},
		}

		frequent := aggregateFrequent(posts)

		assert.Equal(t, []string{"apple", "zebra", "mango"}, frequent["misc"])
	})
}

func miscName(i int) string {
	return "misc_tag_" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

func speciesName(i int) string {
	return "species_tag_" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}
