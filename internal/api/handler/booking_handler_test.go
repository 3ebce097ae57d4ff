package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type stubBookingService struct {
	createFn func(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error)
	listFn   func(ctx context.Context, userID string) ([]ports.BookingView, error)
}

func (s *stubBookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) ListForUser(ctx context.Context, userID string) ([]ports.BookingView, error) {
	return s.listFn(ctx, userID)
}

// newTestContext builds an echo context with the validator wired, the way
// the router configures the real instance.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBookingHandler_Create_IgnoresCallerStatus(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(_ context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
			return &domain.Booking{
				ID: "b1", FarmID: input.FarmID, UserID: input.UserID,
				Date: input.Date, Time: input.Time, Status: domain.BookingPending,
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	body := `{"farm":"f1","user":"u1","date":"2025-08-01","time":"10:00","status":"confirmed"}`
	c, rec := newTestContext(http.MethodPost, "/api/bookings", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "pending" {
		t.Fatalf("caller-supplied status must be discarded; got %v", resp["status"])
	}
}

func TestBookingHandler_Create_MissingDate(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(context.Context, ports.CreateBookingInput) (*domain.Booking, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewBookingHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/bookings", `{"farm":"f1","time":"10:00"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_ListForUser_JoinedFarmShape(t *testing.T) {
	stub := &stubBookingService{
		listFn: func(_ context.Context, userID string) ([]ports.BookingView, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return []ports.BookingView{
				{
					ID:     "b1",
					Farm:   &ports.FarmRef{ID: "f1", Name: "Tanaka Farm", Location: "Tokyo"},
					UserID: "u1", Date: "2025-08-01", Time: "10:00", Status: domain.BookingPending,
				},
				{ID: "b2", UserID: "u1", Date: "2025-07-01", Time: "09:00", Status: domain.BookingPending},
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/u1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bookings/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := h.ListForUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(resp))
	}

	farm, ok := resp[0]["farm"].(map[string]any)
	if !ok {
		t.Fatalf("expected joined farm object, got %v", resp[0]["farm"])
	}
	if farm["name"] != "Tanaka Farm" || farm["location"] != "Tokyo" {
		t.Fatalf("unexpected farm fields: %+v", farm)
	}
	if _, present := resp[1]["farm"]; present {
		t.Fatalf("unresolved farm reference must be absent, got %v", resp[1]["farm"])
	}
}

func TestBookingHandler_ListForUser_StoreDown(t *testing.T) {
	stub := &stubBookingService{
		listFn: func(context.Context, string) ([]ports.BookingView, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}
	h := NewBookingHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/bookings/user/u1", "")

	err := h.ListForUser(c)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable to propagate, got %v", err)
	}
}
