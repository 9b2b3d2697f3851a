package booking_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/logger"
	"github.com/gauthamtours/travels-backend/models/booking_models"
	"github.com/gauthamtours/travels-backend/utils"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

// Notifier is the slice of the mail service the booking pipeline needs.
type Notifier interface {
	NotifyBookingOwner(b *booking_models.Booking) mail.Outcome
	NotifyBookingCustomer(b *booking_models.Booking) mail.Outcome
}

// BookingController handles the booking intake pipeline:
// validate -> persist (when configured) -> notify owner -> notify customer -> respond.
type BookingController struct {
	DB     *pgxpool.Pool // nil when persistence is not configured
	Mailer Notifier
}

func NewBookingController(db *pgxpool.Pool, mailer Notifier) *BookingController {
	return &BookingController{DB: db, Mailer: mailer}
}

// CreateBooking accepts a booking form submission. Email delivery is best
// effort and never fails the request; a configured database is authoritative
// and a failed insert does.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking booking_models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		logger.ErrorLogger.Errorf("Invalid booking payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": utils.ValidationMessage(err),
		})
		return
	}

	persisted := false
	if bc.DB != nil {
		if err := booking_models.CreateBooking(c.Request.Context(), bc.DB, &booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to save booking",
			})
			return
		}
		persisted = true
	}

	ownerOutcome := bc.Mailer.NotifyBookingOwner(&booking)
	if ownerOutcome.Status == mail.StatusFailed {
		logger.ErrorLogger.Errorf("Booking owner notification failed: %s", ownerOutcome.Reason)
	}

	customerOutcome := bc.Mailer.NotifyBookingCustomer(&booking)
	if customerOutcome.Status == mail.StatusFailed {
		logger.ErrorLogger.Errorf("Booking customer confirmation failed: %s", customerOutcome.Reason)
	}

	resp := gin.H{
		"success": true,
		"message": "Booking created successfully! We'll contact you shortly to confirm details.",
	}
	if persisted {
		resp["booking"] = booking
	}
	if ownerOutcome.PreviewURL != "" {
		resp["emailPreviewUrl"] = ownerOutcome.PreviewURL
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBookings lists every stored booking, newest first. Only routed when a
// database is configured.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := booking_models.GetBookings(c.Request.Context(), bc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve bookings",
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
