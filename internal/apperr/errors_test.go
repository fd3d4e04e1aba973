package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", &DuplicateResourceError{Resource: "Product", Key: "QR-1"}, http.StatusConflict},
		{"wrapped duplicate", fmt.Errorf("create: %w", &DuplicateResourceError{Resource: "Product", Key: "QR-1"}), http.StatusConflict},
		{"validation", &ValidationError{Field: "qrCodeId", Message: "empty"}, http.StatusBadRequest},
		{"echo 404", echo.NewHTTPError(http.StatusNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDuplicateResourceErrorMessage(t *testing.T) {
	err := &DuplicateResourceError{Resource: "Product", Key: "QR-1001"}
	want := "Product with QR Code ID QR-1001 already exists."
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestErrorHandlerBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(&DuplicateResourceError{Resource: "Product", Key: "QR-1001"}, c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Path != "/api/v1/products" {
		t.Fatalf("expected request path in body, got %q", body.Path)
	}
	if !strings.Contains(body.Message, "QR-1001") {
		t.Fatalf("expected message to carry the key, got %q", body.Message)
	}
	if body.Status != http.StatusConflict {
		t.Fatalf("expected status 409 in body, got %d", body.Status)
	}
	if body.Timestamp.IsZero() {
		t.Fatal("expected a timestamp")
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(errors.New("pq: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if strings.Contains(body.Message, "connection refused") {
		t.Fatalf("internal error detail leaked to client: %q", body.Message)
	}
}
