package tag_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
)

type InternalTagsFetcher interface {
	FetchInternalTagsByPost(ctx context.Context, postID model.PostID) (model.TagGroups, error)
}

// InternalTagsHandler serves other services that need a post's tags without
// the caller-visibility rules applied.
type InternalTagsHandler struct {
	tagService InternalTagsFetcher
	log        ports.Logger
}

func NewInternalTagsHandler(tagService InternalTagsFetcher, log ports.Logger) *InternalTagsHandler {
	return &InternalTagsHandler{
		tagService: tagService,
		log:        log,
	}
}

func (h *InternalTagsHandler) Handle(c *gin.Context) {
	postID := c.Param("post_id")

	h.log.Debug("Received internal FetchTags request", slog.String("post_id", postID))

	groups, err := h.tagService.FetchInternalTagsByPost(c.Request.Context(), model.PostID(postID))
	if err != nil {
		h.log.Debug("Error fetching internal post tags",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrInvalidPostID):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrInvalidPostID.Error()})
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": custom_errors.ErrPostNotFound.Error()})
		default:
			h.log.Error("Unexpected error fetching internal post tags",
				slog.String("post_id", postID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, groups)
}
