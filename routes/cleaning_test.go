package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func buildCleaningTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	cleaning := app.Party("/api/cleaningservice")
	{
		cleaning.Post("/cleaning", CreateCleaning)
		cleaning.Get("/available-slots", GetAvailableCleaningSlots)
	}
	app.Build()
	return app
}

func TestCreateCleaningRejectsBadOwnerCode(t *testing.T) {
	app := buildCleaningTestApp()

	payload := `{
		"ownerCode": "OW12345",
		"name": "Test Owner",
		"phone": "+22233445566",
		"serviceType": "standard",
		"staffCount": 2,
		"date": "2030-06-01T00:00:00Z",
		"slot": "09:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/cleaningservice/cleaning", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for owner code outside Ow#### pattern, got %d", resp.Code)
	}
}

func TestCreateCleaningRejectsOutOfRangeStaffCount(t *testing.T) {
	app := buildCleaningTestApp()

	payload := `{
		"ownerCode": "Ow1234",
		"name": "Test Owner",
		"phone": "+22233445566",
		"serviceType": "standard",
		"staffCount": 9,
		"date": "2030-06-01T00:00:00Z",
		"slot": "09:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/cleaningservice/cleaning", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for staffCount above 5, got %d", resp.Code)
	}
}

func TestCreateCleaningRejectsUnknownServiceType(t *testing.T) {
	app := buildCleaningTestApp()

	payload := `{
		"ownerCode": "Ow1234",
		"name": "Test Owner",
		"phone": "+22233445566",
		"serviceType": "laundry",
		"staffCount": 2,
		"date": "2030-06-01T00:00:00Z",
		"slot": "09:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/cleaningservice/cleaning", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown service type, got %d", resp.Code)
	}
}

func TestCleaningAvailableSlotsRequiresDate(t *testing.T) {
	app := buildCleaningTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/cleaningservice/available-slots", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when date is absent, got %d", resp.Code)
	}
}
