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

type TagFetcher interface {
	FetchTag(ctx context.Context, user model.AuthUser, name string) (*model.Tag, error)
}

type GetTagHandler struct {
	tagService TagFetcher
	log        ports.Logger
}

func NewGetTagHandler(tagService TagFetcher, log ports.Logger) *GetTagHandler {
	return &GetTagHandler{
		tagService: tagService,
		log:        log,
	}
}

func (h *GetTagHandler) Handle(c *gin.Context) {
	name := c.Param("tag")

	h.log.Debug("Received GetTag request", slog.String("tag", name))

	user := middleware.CurrentUser(c)
	tag, err := h.tagService.FetchTag(c.Request.Context(), user, name)
	if err != nil {
		h.log.Debug("Error fetching tag",
			slog.String("tag", name),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrTagNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": custom_errors.ErrTagNotFound.Error()})
		case errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		default:
			h.log.Error("Unexpected error fetching tag",
				slog.String("tag", name),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tag)
}
