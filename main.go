package main

import (
	"embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gauthamtours/travels-backend/config"
	"github.com/gauthamtours/travels-backend/config/db"
	redisclient "github.com/gauthamtours/travels-backend/config/redis"
	"github.com/gauthamtours/travels-backend/logger"
	"github.com/gauthamtours/travels-backend/middlewares/cors"
	"github.com/gauthamtours/travels-backend/routes"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

//go:embed templates/email/*
var embeddedEmailTemplates embed.FS

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	db.Connect()
	defer db.Close()
	defer redisclient.CloseRedis()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := mail.InitTemplates(embeddedEmailTemplates); err != nil {
		logger.ErrorLogger.Errorf("Failed to initialize email templates: %v", err)
		os.Exit(1)
	}
	logger.InfoLogger.Info("Email templates initialized.")

	mailer := mail.New(mail.ConfigFromEnv())

	r := gin.New()
	// Unexpected panics still answer with a JSON body, never a bare 500.
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.ErrorLogger.Errorf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong. Please try again later.",
		})
	}))
	r.Use(cors.CorsMiddleware())

	routes.RegisterBookingRoutes(r, db.DB, mailer)
	routes.RegisterContactRoutes(r, db.DB, mailer)
	routes.RegisterMailPreviewRoutes(r, mailer)
	routes.RegisterHealthRoutes(r)

	logger.InfoLogger.Infof("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.ErrorLogger.Errorf("Server failed to start: %v", err)
		os.Exit(1)
	}
}
