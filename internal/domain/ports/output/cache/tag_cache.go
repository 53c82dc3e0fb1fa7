package cache

import (
	"context"
	model "pinstack-tag-service/internal/domain/models"
)

// TagCache is the durable K/V layer over the four tag key spaces: tags by
// name, tag groups by post, owned tags by user and frequently-used groups
// by user.
//
//go:generate mockery --name TagCache --dir . --output ../../../../../mocks/cache --outpkg mocks --filename TagCache.go
type TagCache interface {
	GetTag(ctx context.Context, name string) (*model.InternalTag, error)
	SetTag(ctx context.Context, tag *model.InternalTag) error
	DeleteTag(ctx context.Context, name string) error

	GetPostTags(ctx context.Context, postID model.PostID) (model.TagGroups, error)
	SetPostTags(ctx context.Context, postID model.PostID, groups model.TagGroups) error
	DeletePostTags(ctx context.Context, postID model.PostID) error

	GetUserTags(ctx context.Context, userID int64) ([]*model.InternalTag, error)
	SetUserTags(ctx context.Context, userID int64, tags []*model.InternalTag) error

	GetFrequentlyUsed(ctx context.Context, userID int64) (model.TagGroups, error)
	SetFrequentlyUsed(ctx context.Context, userID int64, groups model.TagGroups) error
}
