package contact_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/logger"
)

// Contact is a general inquiry submitted through the website contact form.
// Immutable once accepted.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone" binding:"required,min=10"`
	Subject   string    `json:"subject" binding:"required"`
	Message   string    `json:"message" binding:"required,min=10"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateContact inserts the contact message and stamps its ID and CreatedAt.
func CreateContact(ctx context.Context, db *pgxpool.Pool, c *Contact) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO contacts (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := db.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.CreatedAt)
	if err != nil {
		logger.ErrorLogger.Errorf("failed to insert contact: %v", err)
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	logger.InfoLogger.Infof("Contact message %s persisted (from %s)", c.ID, c.Email)
	return nil
}

// GetContacts returns every stored contact message, newest first.
func GetContacts(ctx context.Context, db *pgxpool.Pool) ([]Contact, error) {
	query := `SELECT id, name, email, phone, subject, message, created_at
		FROM contacts ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("failed to query contacts: %v", err)
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact rows: %w", err)
	}

	return contacts, nil
}
