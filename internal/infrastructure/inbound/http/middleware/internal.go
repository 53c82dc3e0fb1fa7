package middleware

import (
	"log/slog"
	"net/http"

	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
)

// RequireInternal guards the service-to-service surface. Callers without the
// internal scope get a plain 404 so the routes stay invisible to them.
func RequireInternal(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.HasScope(model.ScopeInternal) {
			log.Debug("Hid internal route from external caller",
				slog.String("path", c.Request.URL.Path),
				slog.Int64("user_id", user.ID))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Next()
	}
}
