package delivery_http

import (
	"net/http"

	"pinstack-tag-service/internal/infrastructure/inbound/http/middleware"

	"github.com/gin-gonic/gin"
)

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(s.log, s.metrics))
	router.Use(gin.Recovery())
	router.Use(middleware.Authentication(s.jwtSecret, s.log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	s.tagAPI.RegisterRoutes(v1)

	i1 := router.Group("/i1", middleware.RequireInternal(s.log))
	s.tagAPI.RegisterInternalRoutes(i1)

	return router
}
