package routes

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
)

func buildApartmentTestApp() *iris.Application {
	app := iris.New()
	app.Post("/api/apartments", CreateApartment)
	app.Build()
	return app
}

func multipartListingForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestCreateApartmentRejectsBadBedroomBucket(t *testing.T) {
	app := buildApartmentTestApp()

	body, contentType := multipartListingForm(t, map[string]string{
		"title":     "Sunset View 12B",
		"price":     "1250",
		"area":      "82.5",
		"bedrooms":  "5",
		"bathrooms": "2",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/apartments", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bedroom count outside the buckets, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateApartmentRejectsNonPositivePrice(t *testing.T) {
	app := buildApartmentTestApp()

	body, contentType := multipartListingForm(t, map[string]string{
		"title":     "Sunset View 12B",
		"price":     "not-a-number",
		"area":      "82.5",
		"bedrooms":  "2",
		"bathrooms": "2",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/apartments", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unparsable price, got %d", resp.Code)
	}
}

func TestCreateApartmentRequiresThreeImages(t *testing.T) {
	app := buildApartmentTestApp()

	body, contentType := multipartListingForm(t, map[string]string{
		"title":     "Sunset View 12B",
		"price":     "1250",
		"area":      "82.5",
		"bedrooms":  "2",
		"bathrooms": "2",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/apartments", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without images, got %d", resp.Code)
	}
}
