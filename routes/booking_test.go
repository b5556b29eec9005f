package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// buildBookingTestApp wires just the public booking routes. The covered
// paths all fail validation before reaching the database.
func buildBookingTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/booking", CreateBooking)
		bookings.Get("/available-slots", GetAvailableBookingSlots)
	}
	app.Build()
	return app
}

func TestCreateBookingRejectsUnknownSlot(t *testing.T) {
	app := buildBookingTestApp()

	payload := `{
		"apartmentID": 1,
		"name": "Test Resident",
		"phone": "+22233445566",
		"email": "resident@example.com",
		"date": "2030-06-01T00:00:00Z",
		"slot": "09:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/booking", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for slot outside catalog, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Unknown time slot") {
		t.Fatalf("expected slot error in body, got %s", resp.Body.String())
	}
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	app := buildBookingTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/booking", strings.NewReader(`{"slot":"15:00"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.Code)
	}
}

func TestCreateBookingRejectsBadPhone(t *testing.T) {
	app := buildBookingTestApp()

	payload := `{
		"apartmentID": 1,
		"name": "Test Resident",
		"phone": "not-a-phone",
		"email": "resident@example.com",
		"date": "2030-06-01T00:00:00Z",
		"slot": "15:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/booking", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed phone, got %d", resp.Code)
	}
}

func TestAvailableSlotsRequiresDate(t *testing.T) {
	app := buildBookingTestApp()

	// Missing date must be a validation error, never a default to today
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots?apartmentId=1", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when date is absent, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots?apartmentId=1&date=junk", nil)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)

	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unparsable date, got %d", resp2.Code)
	}
}

func TestAvailableSlotsRequiresApartment(t *testing.T) {
	app := buildBookingTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots?date=2030-06-01", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when apartmentId is absent, got %d", resp.Code)
	}
}
