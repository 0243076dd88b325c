// Package api implements the API routes and groups
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/diogovalentte/tukangkomik/docs"
	"github.com/diogovalentte/tukangkomik/src/routes"
)

// RequestIDHeader is the header with the request ID, it's set in the response
// and taken from the request if the client sends one
const RequestIDHeader = "X-Request-ID"

// SetupRouter sets up the routes for the API
func SetupRouter(log *zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(log))

	v1 := router.Group("/v1")
	// Health check route
	{
		routes.HealthCheckRoute(v1)
	}
	{
		routes.SourceRoutes(v1)
		routes.PreferencesRoutes(v1)
	}
	{
		v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

func requestLogger(log *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
