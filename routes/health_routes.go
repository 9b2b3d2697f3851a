package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "gautham-travels-backend"

// RegisterHealthRoutes exposes the uptime probe used by the hosting platform.
func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	})
}
