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

type FrequentTagsFetcher interface {
	FrequentlyUsed(ctx context.Context, user model.AuthUser) (model.TagGroups, error)
}

type FrequentlyUsedHandler struct {
	tagService FrequentTagsFetcher
	log        ports.Logger
}

func NewFrequentlyUsedHandler(tagService FrequentTagsFetcher, log ports.Logger) *FrequentlyUsedHandler {
	return &FrequentlyUsedHandler{
		tagService: tagService,
		log:        log,
	}
}

func (h *FrequentlyUsedHandler) Handle(c *gin.Context) {
	user := middleware.CurrentUser(c)

	h.log.Debug("Received FrequentlyUsed request", slog.Int64("user_id", user.ID))

	groups, err := h.tagService.FrequentlyUsed(c.Request.Context(), user)
	if err != nil {
		h.log.Debug("Error fetching frequently used tags",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": custom_errors.ErrUnauthenticated.Error()})
		default:
			h.log.Error("Unexpected error fetching frequently used tags",
				slog.Int64("user_id", user.ID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": custom_errors.ErrInternalServiceError.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, groups)
}
