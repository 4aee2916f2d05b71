package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vitalscan/vitalscan/internal/platform/auth"
)

func newTestHandler() (*Handler, *mockUserRepo, *echo.Echo) {
	svc, repo, _ := newTestService()
	return NewHandler(svc), repo, echo.New()
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_SendCode(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := postJSON(e, `{"email":"user@example.com"}`)
	if err := h.SendCode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d", rec.Code)
	}
}

func TestHandler_SendCode_InvalidEmail(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := postJSON(e, `{"email":"nope"}`)
	if err := h.SendCode(c); err == nil {
		t.Error("expected error for invalid email")
	}
}

func TestHandler_VerifyCode_WrongCode(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := postJSON(e, `{"email":"user@example.com"}`)
	if err := h.SendCode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ = postJSON(e, `{"email":"user@example.com","code":"000000"}`)
	err := h.VerifyCode(c)
	if err == nil {
		t.Fatal("expected error for wrong code")
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestHandler_Session(t *testing.T) {
	h, repo, e := newTestHandler()
	user := &User{Email: "user@example.com"}
	repo.Create(context.Background(), user)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, user.ID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req.WithContext(ctx), rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sess Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !sess.Authenticated {
		t.Error("expected authenticated session")
	}
}

func TestHandler_Session_MissingUserRow(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, uuid.New())
	rec := httptest.NewRecorder()
	c := e.NewContext(req.WithContext(ctx), rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sess Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if sess.Authenticated {
		t.Error("expected unauthenticated session")
	}
}

func TestHandler_Logout(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
