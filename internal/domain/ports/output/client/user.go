package client

import (
	"context"
	model "pinstack-tag-service/internal/domain/models"
)

//go:generate mockery --name UserClient --dir . --output ../../../../../mocks/client --outpkg mocks --filename UserClient.go
type UserClient interface {
	GetUserByHandle(ctx context.Context, handle string) (*model.InternalUser, error)
	GetUserByID(ctx context.Context, id int64) (*model.InternalUser, error)
}
