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
	"github.com/go-playground/validator/v10"
)

type TagAdder interface {
	AddTags(ctx context.Context, user model.AuthUser, postID model.PostID, tags []string) error
}

type AddTagsHandler struct {
	tagService TagAdder
	validate   *validator.Validate
	log        ports.Logger
}

func NewAddTagsHandler(tagService TagAdder, validate *validator.Validate, log ports.Logger) *AddTagsHandler {
	return &AddTagsHandler{
		tagService: tagService,
		validate:   validate,
		log:        log,
	}
}

type AddTagsRequest struct {
	PostID string   `json:"post_id" validate:"required"`
	Tags   []string `json:"tags" validate:"required,min=1,dive,required"`
}

func (h *AddTagsHandler) Handle(c *gin.Context) {
	var req AddTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to decode AddTags request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.log.Debug("Received AddTags request",
		slog.String("post_id", req.PostID),
		slog.Int("tags_count", len(req.Tags)))

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Request validation failed",
			slog.String("post_id", req.PostID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	err := h.tagService.AddTags(c.Request.Context(), user, model.PostID(req.PostID), req.Tags)
	if err != nil {
		h.log.Debug("Error adding tags",
			slog.String("post_id", req.PostID),
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": custom_errors.ErrUnauthenticated.Error()})
		case errors.Is(err, custom_errors.ErrInvalidPostID) || errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": custom_errors.ErrPostNotFound.Error()})
		default:
			h.log.Error("Unexpected error adding tags",
				slog.String("post_id", req.PostID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
