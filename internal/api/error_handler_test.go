package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bankcore/client-registry/internal/core/domain"
)

func performError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/clients/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "client not found", err: domain.ErrClientNotFound, wantCode: http.StatusNotFound},
		{name: "invalid enum", err: fmt.Errorf("%w: product type %q", domain.ErrInvalidEnumValue, "BOGUS"), wantCode: http.StatusBadRequest},
		{name: "catalog empty", err: domain.ErrProductCatalogEmpty, wantCode: http.StatusBadRequest},
		{name: "invalid credentials", err: domain.ErrInvalidCredentials, wantCode: http.StatusUnauthorized},
		{name: "user not found", err: domain.ErrUserNotFound, wantCode: http.StatusNotFound},
		{name: "user exists", err: domain.ErrUserExists, wantCode: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performError(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] == "" {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_CarriesOffendingValue(t *testing.T) {
	rec := performError(t, fmt.Errorf("%w: product type %q", domain.ErrInvalidEnumValue, "BOGUS"))

	if !strings.Contains(rec.Body.String(), "BOGUS") {
		t.Fatalf("error message must name the offending value: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := performError(t, echo.NewHTTPError(http.StatusBadRequest, "client id must be an integer"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "client id must be an integer") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_InternalErrorIsGeneric(t *testing.T) {
	rec := performError(t, errors.New("mongo: connection reset"))

	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal details must not leak: %s", rec.Body.String())
	}
}
