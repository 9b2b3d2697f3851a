package cors

import (
	"os"
	"strings"
	"time"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsMiddleware allows the marketing-site frontends to call the API.
// ALLOWED_ORIGINS is a comma-separated list; unset means allow all.
func CorsMiddleware() gin.HandlerFunc {
	config := gincors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}

	return gincors.New(config)
}
