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

type UserTagsFetcher interface {
	FetchTagsByUser(ctx context.Context, user model.AuthUser, handle string) ([]*model.Tag, error)
}

type GetUserTagsHandler struct {
	tagService UserTagsFetcher
	log        ports.Logger
}

func NewGetUserTagsHandler(tagService UserTagsFetcher, log ports.Logger) *GetUserTagsHandler {
	return &GetUserTagsHandler{
		tagService: tagService,
		log:        log,
	}
}

func (h *GetUserTagsHandler) Handle(c *gin.Context) {
	handle := c.Param("handle")

	h.log.Debug("Received GetUserTags request", slog.String("handle", handle))

	user := middleware.CurrentUser(c)
	tags, err := h.tagService.FetchTagsByUser(c.Request.Context(), user, handle)
	if err != nil {
		h.log.Debug("Error fetching user tags",
			slog.String("handle", handle),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrNoUserTags):
			c.JSON(http.StatusNotFound, gin.H{"error": custom_errors.ErrNoUserTags.Error()})
		case errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		default:
			h.log.Error("Unexpected error fetching user tags",
				slog.String("handle", handle),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tags)
}
