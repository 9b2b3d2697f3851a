package mail

import (
	"fmt"
	"time"

	"github.com/gauthamtours/travels-backend/logger"
	"github.com/gauthamtours/travels-backend/models/booking_models"
	"github.com/gauthamtours/travels-backend/models/contact_models"
)

const submittedAtLayout = "Jan 2, 2006 3:04 PM MST"

type ownerEmail struct {
	Heading string
	Intro   string
	Rows    []Row
	Prompt  string
	System  string
}

type customerEmail struct {
	Rows []Row
}

// NotifyBookingOwner emails the full booking to the business owner.
func (m *Mailer) NotifyBookingOwner(b *booking_models.Booking) Outcome {
	logger.InfoLogger.Infof("Sending booking notification to owner %s", m.cfg.OwnerEmail)

	data := ownerEmail{
		Heading: "New Booking Received",
		Intro:   "A new booking has been submitted with the following details:",
		Rows: []Row{
			{"Trip Type", b.TripType},
			{"From", b.From},
			{"To", b.To},
			{"Start Date", b.StartDate},
			{"Return Date", orDefault(b.ReturnDate, "Not specified")},
			{"Pickup Time", orDefault(b.PickupTime, "Not specified")},
			{"Car Type", b.CarType},
			{"Contact Number", b.ContactNumber},
			{"Email", orDefault(b.Email, "Not specified")},
			{"Driver Language", orDefault(b.DriverLanguage, "Not specified")},
			{"Additional Requirements", orDefault(b.AdditionalRequirements, "None")},
			{"Submitted On", submittedAt(b.CreatedAt)},
		},
		Prompt: "Please respond to the customer as soon as possible to confirm the booking.",
		System: "booking",
	}

	subject := fmt.Sprintf("New Booking: %s - %s to %s", b.TripType, b.From, b.To)
	return m.send(m.cfg.OwnerEmail, subject, "owner_notification.html", data)
}

// NotifyBookingCustomer sends the confirmation email back to the customer.
// Skipped when the booking carries no email address.
func (m *Mailer) NotifyBookingCustomer(b *booking_models.Booking) Outcome {
	if b.Email == "" {
		return Skipped("no customer email provided")
	}

	logger.InfoLogger.Infof("Sending booking confirmation to customer %s", b.Email)

	data := customerEmail{
		Rows: []Row{
			{"Trip Type", b.TripType},
			{"From", b.From},
			{"To", b.To},
			{"Start Date", b.StartDate},
			{"Return Date", orDefault(b.ReturnDate, "Not specified")},
			{"Car Type", b.CarType},
		},
	}

	return m.send(b.Email, "Booking Confirmation - Gautham Tours and Travels", "booking_confirmation.html", data)
}

// NotifyContactOwner emails the full contact message to the business owner.
// Contact senders get no confirmation mail; they already know they emailed in.
func (m *Mailer) NotifyContactOwner(c *contact_models.Contact) Outcome {
	logger.InfoLogger.Infof("Sending contact notification to owner %s", m.cfg.OwnerEmail)

	data := ownerEmail{
		Heading: "New Contact Message Received",
		Intro:   "A new message has been submitted with the following details:",
		Rows: []Row{
			{"Name", c.Name},
			{"Email", c.Email},
			{"Phone", c.Phone},
			{"Subject", c.Subject},
			{"Message", c.Message},
			{"Submitted On", submittedAt(c.CreatedAt)},
		},
		Prompt: "Please respond to this inquiry as soon as possible.",
		System: "contact",
	}

	subject := fmt.Sprintf("New Contact Message: %s", c.Subject)
	return m.send(m.cfg.OwnerEmail, subject, "owner_notification.html", data)
}

func submittedAt(created time.Time) string {
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return created.Format(submittedAtLayout)
}
