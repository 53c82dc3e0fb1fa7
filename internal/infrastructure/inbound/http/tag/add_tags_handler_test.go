package tag_http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	service_mock "pinstack-tag-service/mocks/input"
)

func TestAddTagsHandler(t *testing.T) {
	postID := model.PostIDFromInt64(1)

	tests := []struct {
		name       string
		body       string
		token      func(t *testing.T) string
		mocks      func(svc *service_mock.Service)
		wantStatus int
	}{
		{
			name: "Success",
			body: fmt.Sprintf(`{"post_id":%q,"tags":["fox","forest"]}`, postID),
			token: func(t *testing.T) string {
				return signToken(t, 10, "user")
			},
			mocks: func(svc *service_mock.Service) {
				svc.On("AddTags", mock.Anything, mock.MatchedBy(authedCaller(10)), postID, []string{"fox", "forest"}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Missing tags field",
			body:       fmt.Sprintf(`{"post_id":%q}`, postID),
			token:      func(t *testing.T) string { return signToken(t, 10, "user") },
			mocks:      func(svc *service_mock.Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid JSON body",
			body:       `{"post_id":`,
			token:      func(t *testing.T) string { return signToken(t, 10, "user") },
			mocks:      func(svc *service_mock.Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Anonymous caller",
			body:  fmt.Sprintf(`{"post_id":%q,"tags":["fox"]}`, postID),
			token: func(t *testing.T) string { return "" },
			mocks: func(svc *service_mock.Service) {
				svc.On("AddTags", mock.Anything, mock.MatchedBy(func(user model.AuthUser) bool {
					return !user.Authenticated
				}), postID, []string{"fox"}).Return(custom_errors.ErrUnauthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "Malformed post id",
			body:  `{"post_id":"bad","tags":["fox"]}`,
			token: func(t *testing.T) string { return signToken(t, 10, "user") },
			mocks: func(svc *service_mock.Service) {
				svc.On("AddTags", mock.Anything, mock.Anything, model.PostID("bad"), []string{"fox"}).Return(custom_errors.ErrInvalidPostID)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Post not found",
			body:  fmt.Sprintf(`{"post_id":%q,"tags":["fox"]}`, postID),
			token: func(t *testing.T) string { return signToken(t, 10, "user") },
			mocks: func(svc *service_mock.Service) {
				svc.On("AddTags", mock.Anything, mock.Anything, postID, []string{"fox"}).Return(custom_errors.ErrPostNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "Internal error",
			body:  fmt.Sprintf(`{"post_id":%q,"tags":["fox"]}`, postID),
			token: func(t *testing.T) string { return signToken(t, 10, "user") },
			mocks: func(svc *service_mock.Service) {
				svc.On("AddTags", mock.Anything, mock.Anything, postID, []string{"fox"}).Return(custom_errors.ErrDatabaseQuery)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(service_mock.Service)
			tt.mocks(svc)
			router := setupRouter(t, svc)

			rec := doRequest(t, router, http.MethodPost, "/v1/add_tags", tt.body, tt.token(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestRemoveTagsHandler(t *testing.T) {
	postID := model.PostIDFromInt64(2)

	t.Run("Success", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("RemoveTags", mock.Anything, mock.MatchedBy(authedCaller(10)), postID, []string{"fox"}).Return(nil)
		router := setupRouter(t, svc)

		body := fmt.Sprintf(`{"post_id":%q,"tags":["fox"]}`, postID)
		rec := doRequest(t, router, http.MethodPost, "/v1/remove_tags", body, signToken(t, 10, "user"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})
}
