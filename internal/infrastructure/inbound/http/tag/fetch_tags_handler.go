package tag_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
	"pinstack-tag-service/internal/infrastructure/inbound/http/middleware"

	"github.com/gin-gonic/gin"
)

type PostTagsFetcher interface {
	FetchTagsByPost(ctx context.Context, user model.AuthUser, postID model.PostID) (model.TagGroups, error)
}

type FetchTagsHandler struct {
	tagService PostTagsFetcher
	log        ports.Logger
}

func NewFetchTagsHandler(tagService PostTagsFetcher, log ports.Logger) *FetchTagsHandler {
	return &FetchTagsHandler{
		tagService: tagService,
		log:        log,
	}
}

func (h *FetchTagsHandler) Handle(c *gin.Context) {
	postID := c.Param("post_id")

	h.log.Debug("Received FetchTags request", slog.String("post_id", postID))

	user := middleware.CurrentUser(c)
	groups, err := h.tagService.FetchTagsByPost(c.Request.Context(), user, model.PostID(postID))
	if err != nil {
		h.log.Debug("Error fetching post tags",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrInvalidPostID):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrInvalidPostID.Error()})
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": custom_errors.ErrPostNotFound.Error()})
		default:
			h.log.Error("Unexpected error fetching post tags",
				slog.String("post_id", postID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, groups)
}
