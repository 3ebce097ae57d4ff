package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

func invoke(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/farms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"farm not found", domain.ErrFarmNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"duplicate email", domain.ErrEmailTaken, http.StatusConflict},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"wrapped store unavailable", fmt.Errorf("insert booking: %w", domain.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := invoke(t, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := invoke(t, echo.NewHTTPError(http.StatusBadRequest, "date is required"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "date is required", msg)
}

func TestErrorHandler_UnexpectedErrorHidesDetail(t *testing.T) {
	_, msg := invoke(t, errors.New("pq: secret connection string"))
	assert.Equal(t, "internal server error", msg)
}
