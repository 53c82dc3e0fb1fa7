package tag_http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	service_mock "pinstack-tag-service/mocks/input"
)

func TestGetTagHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("FetchTag", mock.Anything, mock.Anything, "fox").Return(&model.Tag{
			Tag:           "fox",
			Group:         "species",
			InheritedTags: []string{},
			Count:         3,
			Owner:         &model.UserPortable{Handle: "vixen", Name: "Vixen"},
		}, nil)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodGet, "/v1/tag/fox", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var tag model.Tag
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tag))
		assert.Equal(t, "fox", tag.Tag)
		assert.Equal(t, int64(3), tag.Count)
		require.NotNil(t, tag.Owner)
		assert.Equal(t, "vixen", tag.Owner.Handle)
	})

	t.Run("Tag not found", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("FetchTag", mock.Anything, mock.Anything, "ghost").Return(nil, custom_errors.ErrTagNotFound)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodGet, "/v1/tag/ghost", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLookupTagsHandler(t *testing.T) {
	t.Run("Prefix match", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("LookupTags", mock.Anything, mock.Anything, "fo").Return([]*model.Tag{
			{Tag: "forest", Group: "misc", InheritedTags: []string{}},
			{Tag: "fox", Group: "species", InheritedTags: []string{}},
		}, nil)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodPost, "/v1/lookup_tags", `{"tag":"fo"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var tags []*model.Tag
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
		require.Len(t, tags, 2)
		assert.Equal(t, "forest", tags[0].Tag)
	})

	t.Run("Empty prefix is allowed", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("LookupTags", mock.Anything, mock.Anything, "").Return([]*model.Tag{}, nil)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodPost, "/v1/lookup_tags", `{}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetUserTagsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("FetchTagsByUser", mock.Anything, mock.Anything, "vixen").Return([]*model.Tag{
			{Tag: "fox", Group: "species", InheritedTags: []string{}},
		}, nil)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodGet, "/v1/get_user_tags/vixen", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var tags []*model.Tag
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
		require.Len(t, tags, 1)
	})

	t.Run("User owns no tags", func(t *testing.T) {
		svc := new(service_mock.Service)
		svc.On("FetchTagsByUser", mock.Anything, mock.Anything, "nobody").Return(nil, custom_errors.ErrNoUserTags)
		router := setupRouter(t, svc)

		rec := doRequest(t, router, http.MethodGet, "/v1/get_user_tags/nobody", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
