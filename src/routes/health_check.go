package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diogovalentte/tukangkomik/src/sources"
)

// HealthCheckRoute registers the health check route
func HealthCheckRoute(group *gin.RouterGroup) {
	group.GET("/health", healthCheck)
}

// @Summary Health check route
// @Description Returns status OK if there is at least one source registered.
// @Success 200 {string} string OK
// @Failure 503 {string} string "no sources registered"
// @Produce plain
// @Router /health [get]
func healthCheck(c *gin.Context) {
	if len(sources.GetSources()) == 0 {
		c.String(http.StatusServiceUnavailable, "no sources registered")
		return
	}

	c.String(http.StatusOK, "OK")
}
