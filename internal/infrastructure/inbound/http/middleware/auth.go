package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "auth_user"

// AuthClaims is the token payload issued by the auth service: the subject
// carries the user id and scopes carry the granted roles.
type AuthClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// Authentication resolves the bearer token into an AuthUser on the request
// context. A request without a token proceeds as anonymous; a malformed or
// badly signed token is rejected outright.
func Authentication(jwtSecret string, log ports.Logger) gin.HandlerFunc {
	signingKey := []byte(jwtSecret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			log.Debug("Rejected malformed authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		claims := &AuthClaims{}
		token, err := jwt.ParseWithClaims(
			tokenString,
			claims,
			func(_ *jwt.Token) (interface{}, error) { return signingKey, nil },
			jwt.WithValidMethods([]string{"HS256"}),
		)
		if err != nil || !token.Valid {
			if err != nil {
				log.Debug("Rejected invalid token", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			log.Debug("Rejected token with non-numeric subject", slog.String("subject", claims.Subject))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		scopes := make([]model.Scope, 0, len(claims.Scopes))
		for _, scope := range claims.Scopes {
			scopes = append(scopes, model.Scope(scope))
		}

		c.Set(userContextKey, model.AuthUser{
			ID:            userID,
			Scopes:        scopes,
			Authenticated: true,
		})
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, or the anonymous zero value.
func CurrentUser(c *gin.Context) model.AuthUser {
	value, exists := c.Get(userContextKey)
	if !exists {
		return model.AuthUser{}
	}
	user, ok := value.(model.AuthUser)
	if !ok {
		return model.AuthUser{}
	}
	return user
}
