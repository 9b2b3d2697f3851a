package booking_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/logger"
)

// Booking is a chauffeur-driven trip request submitted through the website
// booking form. A booking is immutable once accepted; there are no update or
// delete operations.
type Booking struct {
	ID                     uuid.UUID `json:"id"`
	TripType               string    `json:"tripType" binding:"required"`
	From                   string    `json:"from" binding:"required"`
	To                     string    `json:"to" binding:"required"`
	StartDate              string    `json:"startDate" binding:"required"`
	ReturnDate             string    `json:"returnDate,omitempty"`
	PickupTime             string    `json:"pickupTime,omitempty"`
	CarType                string    `json:"carType" binding:"required"`
	ContactNumber          string    `json:"contactNumber" binding:"required,min=10"`
	Email                  string    `json:"email,omitempty" binding:"omitempty,email"`
	DriverLanguage         string    `json:"driverLanguage,omitempty"`
	AdditionalRequirements string    `json:"additionalRequirements,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

// CreateBooking inserts the booking and stamps its ID and CreatedAt.
func CreateBooking(ctx context.Context, db *pgxpool.Pool, b *Booking) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now().UTC()

	query := `INSERT INTO bookings
		(id, trip_type, from_location, to_location, start_date, return_date, pickup_time,
		 car_type, contact_number, email, driver_language, additional_requirements, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := db.Exec(ctx, query,
		b.ID, b.TripType, b.From, b.To, b.StartDate, b.ReturnDate, b.PickupTime,
		b.CarType, b.ContactNumber, b.Email, b.DriverLanguage, b.AdditionalRequirements, b.CreatedAt,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("failed to insert booking: %v", err)
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	logger.InfoLogger.Infof("Booking %s persisted (%s, %s to %s)", b.ID, b.TripType, b.From, b.To)
	return nil
}

// GetBookings returns every stored booking, newest first.
func GetBookings(ctx context.Context, db *pgxpool.Pool) ([]Booking, error) {
	query := `SELECT id, trip_type, from_location, to_location, start_date, return_date, pickup_time,
		 car_type, contact_number, email, driver_language, additional_requirements, created_at
		FROM bookings ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("failed to query bookings: %v", err)
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]Booking, 0)
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.TripType, &b.From, &b.To, &b.StartDate, &b.ReturnDate, &b.PickupTime,
			&b.CarType, &b.ContactNumber, &b.Email, &b.DriverLanguage, &b.AdditionalRequirements, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booking rows: %w", err)
	}

	return bookings, nil
}
