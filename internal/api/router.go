package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lmcosta-dev/airgraph/internal/api/middleware"
)

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter() {
	if s.config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware chain (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Timeout(s.config.ReadTimeout))
	if s.config.EnableCORS {
		router.Use(middleware.CORS(s.config.CORSOrigins))
	}
	router.Use(middleware.RateLimit(s.config.RateLimit, s.config.RateBurst))

	router.GET("/health", s.handleHealth)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/airports/:code", s.handleGetAirport)
		v1.GET("/airports/:code/reachable", s.handleReachable)

		v1.GET("/path", s.handleFindPath)

		v1.GET("/analysis/essential", s.handleEssential)
		v1.GET("/analysis/diameter", s.handleDiameter)
		v1.GET("/analysis/top", s.handleTopTraffic)

		v1.GET("/search", s.handleSearch)
	}

	s.router = router
}
