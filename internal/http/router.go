package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/projsite/bookings-service/internal/http/middleware"
)

// NewRouter wires the gin engine: cors, request logging, health and
// metrics endpoints, and the authenticated, rate-limited bookings
// routes.
func NewRouter(handler *Handler, log zerolog.Logger, environment string, authMiddleware, rateLimit gin.HandlerFunc) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(log))
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.Use(rateLimit)
	handler.Register(protected)

	return router
}
