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

type InheritanceRemover interface {
	RemoveInheritance(ctx context.Context, user model.AuthUser, parent string, child string) error
}

type RemoveInheritanceHandler struct {
	tagService InheritanceRemover
	validate   *validator.Validate
	log        ports.Logger
}

func NewRemoveInheritanceHandler(tagService InheritanceRemover, validate *validator.Validate, log ports.Logger) *RemoveInheritanceHandler {
	return &RemoveInheritanceHandler{
		tagService: tagService,
		validate:   validate,
		log:        log,
	}
}

type RemoveInheritanceRequest struct {
	ParentTag string `json:"parent_tag" validate:"required"`
	ChildTag  string `json:"child_tag" validate:"required"`
}

func (h *RemoveInheritanceHandler) Handle(c *gin.Context) {
	var req RemoveInheritanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to decode RemoveInheritance request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.log.Debug("Received RemoveInheritance request",
		slog.String("parent_tag", req.ParentTag),
		slog.String("child_tag", req.ChildTag))

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Request validation failed",
			slog.String("parent_tag", req.ParentTag),
			slog.String("child_tag", req.ChildTag),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	err := h.tagService.RemoveInheritance(c.Request.Context(), user, req.ParentTag, req.ChildTag)
	if err != nil {
		h.log.Debug("Error removing inheritance",
			slog.String("parent_tag", req.ParentTag),
			slog.String("child_tag", req.ChildTag),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": custom_errors.ErrUnauthenticated.Error()})
		case errors.Is(err, custom_errors.ErrInsufficientScope):
			c.JSON(http.StatusForbidden, gin.H{"error": custom_errors.ErrInsufficientScope.Error()})
		case errors.Is(err, custom_errors.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		default:
			h.log.Error("Unexpected error removing inheritance",
				slog.String("parent_tag", req.ParentTag),
				slog.String("child_tag", req.ChildTag),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
