package tag_repository

import (
	"context"
	model "pinstack-tag-service/internal/domain/models"
)

// Repository is the SQL facade for tags, tag-to-post associations and the
// inheritance graph. The multi-row mutations are delegated to stored
// procedures; everything else is parameterized queries.
//
//go:generate mockery --name Repository --dir . --output ../../../../../mocks/tag --outpkg mocks --filename Repository.go
type Repository interface {
	AddTags(ctx context.Context, postID int64, userID int64, tags []string) error
	RemoveTags(ctx context.Context, postID int64, userID int64, tags []string) error
	InheritTag(ctx context.Context, userID int64, parent string, child string, deprecate bool) error
	RemoveInheritance(ctx context.Context, parent string, child string) error
	UpdateTag(ctx context.Context, name string, patch *model.TagPatch) error

	GetTag(ctx context.Context, name string) (*model.InternalTag, error)
	GetPostTags(ctx context.Context, postID int64) (*model.PostTags, error)
	GetUserTags(ctx context.Context, userID int64) ([]*model.InternalTag, error)
	GetAllTags(ctx context.Context) ([]*model.InternalTag, error)
	CountPublicPosts(ctx context.Context, tag string) (int64, error)
}
