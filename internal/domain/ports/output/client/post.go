package client

import (
	"context"
	model "pinstack-tag-service/internal/domain/models"
)

//go:generate mockery --name PostClient --dir . --output ../../../../../mocks/client --outpkg mocks --filename PostClient.go
type PostClient interface {
	GetPost(ctx context.Context, postID model.PostID) (*model.InternalPost, error)
	GetUserPosts(ctx context.Context, userID int64) ([]*model.InternalPost, error)
}
