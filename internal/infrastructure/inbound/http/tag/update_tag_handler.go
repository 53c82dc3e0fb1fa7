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

type TagUpdater interface {
	UpdateTag(ctx context.Context, user model.AuthUser, name string, patch *model.UpdateTagDTO) error
}

type UpdateTagHandler struct {
	tagService TagUpdater
	validate   *validator.Validate
	log        ports.Logger
}

func NewUpdateTagHandler(tagService TagUpdater, validate *validator.Validate, log ports.Logger) *UpdateTagHandler {
	return &UpdateTagHandler{
		tagService: tagService,
		validate:   validate,
		log:        log,
	}
}

type UpdateTagRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Group       *string `json:"group" validate:"omitempty,min=1"`
	Owner       *string `json:"owner" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty"`
	Deprecated  *bool   `json:"deprecated" validate:"omitempty"`
}

func (h *UpdateTagHandler) Handle(c *gin.Context) {
	name := c.Param("tag")

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to decode UpdateTag request",
			slog.String("tag", name),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.log.Debug("Received UpdateTag request",
		slog.String("tag", name),
		slog.Bool("has_name_update", req.Name != nil),
		slog.Bool("has_group_update", req.Group != nil),
		slog.Bool("has_owner_update", req.Owner != nil),
		slog.Bool("has_description_update", req.Description != nil),
		slog.Bool("has_deprecated_update", req.Deprecated != nil))

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Request validation failed",
			slog.String("tag", name),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		return
	}

	patch := &model.UpdateTagDTO{
		Name:        req.Name,
		Group:       req.Group,
		Owner:       req.Owner,
		Description: req.Description,
		Deprecated:  req.Deprecated,
	}

	user := middleware.CurrentUser(c)
	err := h.tagService.UpdateTag(c.Request.Context(), user, name, patch)
	if err != nil {
		h.log.Debug("Error updating tag",
			slog.String("tag", name),
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": custom_errors.ErrUnauthenticated.Error()})
		case errors.Is(err, custom_errors.ErrNotTagOwner) || errors.Is(err, custom_errors.ErrInsufficientScope):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, custom_errors.ErrNoUpdateParameters) ||
			errors.Is(err, custom_errors.ErrDescriptionTooLong) ||
			errors.Is(err, custom_errors.ErrUnknownTagGroup) ||
			errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, custom_errors.ErrTagNotFound) || errors.Is(err, custom_errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, custom_errors.ErrTagAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": custom_errors.ErrTagAlreadyExists.Error()})
		default:
			h.log.Error("Unexpected error updating tag",
				slog.String("tag", name),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
