package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the wording the website frontend
// shows next to each form input.
var fieldLabels = map[string]string{
	"TripType":      "Trip type",
	"From":          "From location",
	"To":            "Destination",
	"StartDate":     "Start date",
	"ReturnDate":    "Return date",
	"PickupTime":    "Pickup time",
	"CarType":       "Car type",
	"ContactNumber": "Contact number",
	"Email":         "Email",
	"Name":          "Name",
	"Phone":         "Phone",
	"Subject":       "Subject",
	"Message":       "Message",
}

// ValidationMessage turns a binding error into the message the forms expect.
// Only the first violation is surfaced; the frontend shows one error at a time.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request data"
	}

	fe := verrs[0]
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Please enter a valid email address"
	case "min":
		switch fe.Field() {
		case "ContactNumber":
			return "Valid contact number is required"
		case "Phone":
			return "Valid phone number is required"
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", label)
}
