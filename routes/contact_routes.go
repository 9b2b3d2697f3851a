package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/controllers/contact_controller"
	"github.com/gauthamtours/travels-backend/middlewares"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

func RegisterContactRoutes(router *gin.Engine, db *pgxpool.Pool, mailer *mail.Mailer) {
	contactController := contact_controller.NewContactController(db, mailer)

	api := router.Group("/api")
	{
		api.POST("/contact", middlewares.NewRateLimiter("10-1m", "createContact"), contactController.CreateContact)
		if db != nil {
			api.GET("/contacts", contactController.GetContacts)
		}
	}
}
