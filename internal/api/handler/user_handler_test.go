package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return &domain.User{
				ID: "u1", Name: input.Name, Email: input.Email,
				Password: input.Password, CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewUserHandler(stub)

	body := `{"name":"Aiko","email":"aiko@example.com","password":"secret"}`
	c, rec := newTestContext(http.MethodPost, "/api/users", body)

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
	if resp["id"] != "u1" || resp["email"] != "aiko@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, present := resp["password"]; present {
		t.Fatalf("password must never be serialized back out")
	}
}

// Any non-empty email string is accepted; only presence is validated.
func TestUserHandler_Create_NonEmailStringAccepted(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, CreatedAt: time.Now().UTC()}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/users", `{"name":"Aiko","email":"just-a-handle","password":"x"}`)

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
	if resp["email"] != "just-a-handle" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_MissingEmail(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/users", `{"name":"Aiko","password":"x"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_DuplicateEmailPropagates(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/users", `{"name":"Aiko","email":"aiko@example.com","password":"x"}`)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}
