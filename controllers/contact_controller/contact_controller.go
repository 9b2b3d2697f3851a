package contact_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gauthamtours/travels-backend/logger"
	"github.com/gauthamtours/travels-backend/models/contact_models"
	"github.com/gauthamtours/travels-backend/utils"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

// Notifier is the slice of the mail service the contact pipeline needs.
// Contact senders get no confirmation email.
type Notifier interface {
	NotifyContactOwner(c *contact_models.Contact) mail.Outcome
}

// ContactController handles the contact-message intake pipeline, same shape
// as the booking one.
type ContactController struct {
	DB     *pgxpool.Pool // nil when persistence is not configured
	Mailer Notifier
}

func NewContactController(db *pgxpool.Pool, mailer Notifier) *ContactController {
	return &ContactController{DB: db, Mailer: mailer}
}

// CreateContact accepts a contact form submission.
func (cc *ContactController) CreateContact(c *gin.Context) {
	var contact contact_models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		logger.ErrorLogger.Errorf("Invalid contact payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": utils.ValidationMessage(err),
		})
		return
	}

	persisted := false
	if cc.DB != nil {
		if err := contact_models.CreateContact(c.Request.Context(), cc.DB, &contact); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to save contact message",
			})
			return
		}
		persisted = true
	}

	ownerOutcome := cc.Mailer.NotifyContactOwner(&contact)
	if ownerOutcome.Status == mail.StatusFailed {
		logger.ErrorLogger.Errorf("Contact owner notification failed: %s", ownerOutcome.Reason)
	}

	resp := gin.H{
		"success": true,
		"message": "Your message has been sent successfully! We'll get back to you soon.",
	}
	if persisted {
		resp["contact"] = contact
	}
	if ownerOutcome.PreviewURL != "" {
		resp["emailPreviewUrl"] = ownerOutcome.PreviewURL
	}

	c.JSON(http.StatusCreated, resp)
}

// GetContacts lists every stored contact message, newest first. Only routed
// when a database is configured.
func (cc *ContactController) GetContacts(c *gin.Context) {
	contacts, err := contact_models.GetContacts(c.Request.Context(), cc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve contacts",
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
