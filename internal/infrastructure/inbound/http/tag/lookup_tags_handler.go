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

type TagLookup interface {
	LookupTags(ctx context.Context, user model.AuthUser, prefix string) ([]*model.Tag, error)
}

type LookupTagsHandler struct {
	tagService TagLookup
	log        ports.Logger
}

func NewLookupTagsHandler(tagService TagLookup, log ports.Logger) *LookupTagsHandler {
	return &LookupTagsHandler{
		tagService: tagService,
		log:        log,
	}
}

// LookupTagsRequest carries the prefix to match; an absent or empty prefix
// matches every tag.
type LookupTagsRequest struct {
	Tag string `json:"tag"`
}

func (h *LookupTagsHandler) Handle(c *gin.Context) {
	var req LookupTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to decode LookupTags request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.log.Debug("Received LookupTags request", slog.String("prefix", req.Tag))

	user := middleware.CurrentUser(c)
	tags, err := h.tagService.LookupTags(c.Request.Context(), user, req.Tag)
	if err != nil {
		h.log.Debug("Error looking up tags",
			slog.String("prefix", req.Tag),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		default:
			h.log.Error("Unexpected error looking up tags",
				slog.String("prefix", req.Tag),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tags)
}
