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

type TagInheritor interface {
	InheritTag(ctx context.Context, user model.AuthUser, parent string, child string, deprecate bool) error
}

type InheritTagHandler struct {
	tagService TagInheritor
	validate   *validator.Validate
	log        ports.Logger
}

func NewInheritTagHandler(tagService TagInheritor, validate *validator.Validate, log ports.Logger) *InheritTagHandler {
	return &InheritTagHandler{
		tagService: tagService,
		validate:   validate,
		log:        log,
	}
}

type InheritTagRequest struct {
	ParentTag string `json:"parent_tag" validate:"required"`
	ChildTag  string `json:"child_tag" validate:"required"`
	Deprecate bool   `json:"deprecate"`
}

func (h *InheritTagHandler) Handle(c *gin.Context) {
	var req InheritTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Failed to decode InheritTag request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.log.Debug("Received InheritTag request",
		slog.String("parent_tag", req.ParentTag),
		slog.String("child_tag", req.ChildTag),
		slog.Bool("deprecate", req.Deprecate))

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Request validation failed",
			slog.String("parent_tag", req.ParentTag),
			slog.String("child_tag", req.ChildTag),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": custom_errors.ErrValidationFailed.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	err := h.tagService.InheritTag(c.Request.Context(), user, req.ParentTag, req.ChildTag, req.Deprecate)
	if err != nil {
		h.log.Debug("Error inheriting tag",
			slog.String("parent_tag", req.ParentTag),
			slog.String("child_tag", req.ChildTag),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": custom_errors.ErrUnauthenticated.Error()})
		case errors.Is(err, custom_errors.ErrInsufficientScope):
			c.JSON(http.StatusForbidden, gin.H{"error": custom_errors.ErrInsufficientScope.Error()})
		case errors.Is(err, custom_errors.ErrValidationFailed) || errors.Is(err, custom_errors.ErrInheritanceCycle):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, custom_errors.ErrDuplicateInheritance):
			c.JSON(http.StatusConflict, gin.H{"error": custom_errors.ErrDuplicateInheritance.Error()})
		default:
			h.log.Error("Unexpected error inheriting tag",
				slog.String("parent_tag", req.ParentTag),
				slog.String("child_tag", req.ChildTag),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
