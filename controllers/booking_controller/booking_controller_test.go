package booking_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthamtours/travels-backend/models/booking_models"
	"github.com/gauthamtours/travels-backend/utils/mail"
)

type stubNotifier struct {
	ownerCalls      int
	customerCalls   int
	ownerOutcome    mail.Outcome
	customerOutcome mail.Outcome
	lastBooking     *booking_models.Booking
}

func (s *stubNotifier) NotifyBookingOwner(b *booking_models.Booking) mail.Outcome {
	s.ownerCalls++
	s.lastBooking = b
	return s.ownerOutcome
}

func (s *stubNotifier) NotifyBookingCustomer(b *booking_models.Booking) mail.Outcome {
	if b.Email == "" {
		return mail.Skipped("no customer email provided")
	}
	s.customerCalls++
	return s.customerOutcome
}

func newTestRouter(notifier *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewBookingController(nil, notifier)
	r.POST("/api/bookings", controller.CreateBooking)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, payload map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"tripType":      "outstation",
		"from":          "Mumbai",
		"to":            "Pune",
		"startDate":     "2025-01-10",
		"carType":       "sedan",
		"contactNumber": "9833401900",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("ValidBooking", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent("")}
		r := newTestRouter(notifier)

		w, resp := postBooking(t, r, validPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Booking created successfully! We'll contact you shortly to confirm details.", resp["message"])
		assert.Equal(t, 1, notifier.ownerCalls)
		assert.Equal(t, 0, notifier.customerCalls)
		// Without persistence there is no canonical record to echo back.
		assert.NotContains(t, resp, "booking")
		assert.NotContains(t, resp, "emailPreviewUrl")
	})

	t.Run("CustomerConfirmationAttemptedWithEmail", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent(""), customerOutcome: mail.Sent("")}
		r := newTestRouter(notifier)

		payload := validPayload()
		payload["email"] = "customer@example.com"
		w, resp := postBooking(t, r, payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, 1, notifier.customerCalls)
	})

	t.Run("PreviewURLSurfaced", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent("/api/mail-preview/abc")}
		r := newTestRouter(notifier)

		w, resp := postBooking(t, r, validPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/mail-preview/abc", resp["emailPreviewUrl"])
	})

	t.Run("EmailFailureDoesNotFailRequest", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Failed("smtp connection refused")}
		r := newTestRouter(notifier)

		w, resp := postBooking(t, r, validPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, resp["success"])
		assert.NotEmpty(t, resp["message"])
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(map[string]interface{})
			message string
		}{
			{"MissingFrom", func(p map[string]interface{}) { delete(p, "from") }, "From location is required"},
			{"MissingTo", func(p map[string]interface{}) { delete(p, "to") }, "Destination is required"},
			{"MissingTripType", func(p map[string]interface{}) { delete(p, "tripType") }, "Trip type is required"},
			{"MissingCarType", func(p map[string]interface{}) { delete(p, "carType") }, "Car type is required"},
			{"ShortContactNumber", func(p map[string]interface{}) { p["contactNumber"] = "12345" }, "Valid contact number is required"},
			{"InvalidEmail", func(p map[string]interface{}) { p["email"] = "not-an-email" }, "Please enter a valid email address"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				notifier := &stubNotifier{ownerOutcome: mail.Sent("")}
				r := newTestRouter(notifier)

				payload := validPayload()
				tc.mutate(payload)
				w, resp := postBooking(t, r, payload)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tc.message, resp["message"])
				assert.Equal(t, 0, notifier.ownerCalls)
			})
		}
	})

	t.Run("UnknownFieldsIgnored", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent("")}
		r := newTestRouter(notifier)

		payload := validPayload()
		payload["campaign"] = "summer-2025"
		w, resp := postBooking(t, r, payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, resp["success"])
	})

	t.Run("NoDedupAcrossSubmissions", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent("")}
		r := newTestRouter(notifier)

		w1, resp1 := postBooking(t, r, validPayload())
		w2, resp2 := postBooking(t, r, validPayload())

		assert.Equal(t, http.StatusCreated, w1.Code)
		assert.Equal(t, http.StatusCreated, w2.Code)
		assert.Equal(t, true, resp1["success"])
		assert.Equal(t, true, resp2["success"])
		assert.Equal(t, 2, notifier.ownerCalls)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		notifier := &stubNotifier{ownerOutcome: mail.Sent("")}
		r := newTestRouter(notifier)

		req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid request data", resp["message"])
	})
}
