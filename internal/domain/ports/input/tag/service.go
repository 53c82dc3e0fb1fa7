package tag_service

import (
	"context"
	model "pinstack-tag-service/internal/domain/models"
)

// Service is the public tag surface. Every operation receives the
// authenticated caller; anonymous callers arrive as a zero AuthUser.
//
//go:generate mockery --name Service --dir . --output ../../../../../mocks/input --outpkg mocks --filename TagService.go
type Service interface {
	AddTags(ctx context.Context, user model.AuthUser, postID model.PostID, tags []string) error
	RemoveTags(ctx context.Context, user model.AuthUser, postID model.PostID, tags []string) error
	InheritTag(ctx context.Context, user model.AuthUser, parent string, child string, deprecate bool) error
	RemoveInheritance(ctx context.Context, user model.AuthUser, parent string, child string) error
	UpdateTag(ctx context.Context, user model.AuthUser, name string, patch *model.UpdateTagDTO) error

	FetchTag(ctx context.Context, user model.AuthUser, name string) (*model.Tag, error)
	FetchTagsByPost(ctx context.Context, user model.AuthUser, postID model.PostID) (model.TagGroups, error)
	FetchInternalTagsByPost(ctx context.Context, postID model.PostID) (model.TagGroups, error)
	LookupTags(ctx context.Context, user model.AuthUser, prefix string) ([]*model.Tag, error)
	FetchTagsByUser(ctx context.Context, user model.AuthUser, handle string) ([]*model.Tag, error)
	FrequentlyUsed(ctx context.Context, user model.AuthUser) (model.TagGroups, error)
}
