package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/service"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"refresh token invalid", domain.ErrRefreshTokenInvalid, http.StatusUnauthorized},
		{"throttled", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"image type", service.ErrImageType, http.StatusBadRequest},
		{"image too large", service.ErrImageTooLarge, http.StatusBadRequest},
		{"tutor not found", domain.ErrTutorNotFound, http.StatusNotFound},
		{"patient not found", domain.ErrPatientNotFound, http.StatusNotFound},
		{"doctor not found", domain.ErrDoctorNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body["error"] == "" {
				t.Fatalf("error envelope missing message: %v", body)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorPassThrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "token expired"))
	if code != http.StatusUnauthorized || body["error"] != "token expired" {
		t.Fatalf("unexpected rendering: %d %v", code, body)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", body)
	}
}
