package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/controllers/booking_controller"
	"github.com/gauthamtours/travels-backend/middlewares"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

func RegisterBookingRoutes(router *gin.Engine, db *pgxpool.Pool, mailer *mail.Mailer) {
	bookingController := booking_controller.NewBookingController(db, mailer)

	api := router.Group("/api")
	{
		api.POST("/bookings", middlewares.NewRateLimiter("10-1m", "createBooking"), bookingController.CreateBooking)
		// Listing only makes sense when submissions are stored somewhere.
		if db != nil {
			api.GET("/bookings", bookingController.GetBookings)
		}
	}
}
