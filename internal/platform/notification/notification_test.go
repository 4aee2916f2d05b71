package notification

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateEngine_RenderLoginCode(t *testing.T) {
	e := NewTemplateEngine()
	subject, body, err := e.Render("login-code", map[string]string{
		"code":        "482913",
		"ttl_minutes": "10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Your verification code" {
		t.Errorf("unexpected subject: %s", subject)
	}
	if !strings.Contains(body, "482913") || !strings.Contains(body, "10 minutes") {
		t.Errorf("code or ttl missing from body: %s", body)
	}
}

func TestTemplateEngine_UnknownTemplate(t *testing.T) {
	e := NewTemplateEngine()
	if _, _, err := e.Render("no-such-template", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestTemplateEngine_MissingKeysLeftAsIs(t *testing.T) {
	e := NewTemplateEngine()
	_, body, err := e.Render("login-code", map[string]string{"code": "111111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "{{ttl_minutes}}") {
		t.Errorf("unreplaced key should stay literal: %s", body)
	}
}

func TestTemplateEngine_RegisterTemplate(t *testing.T) {
	e := NewTemplateEngine()
	e.RegisterTemplate(Template{ID: "custom", Subject: "Hello {{name}}", Body: "Hi"})
	subject, _, err := e.Render("custom", map[string]string{"name": "Asha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Hello Asha" {
		t.Errorf("unexpected subject: %s", subject)
	}
}

func TestMockEmailSender_RecordsCalls(t *testing.T) {
	m := &MockEmailSender{}
	if err := m.SendEmail(context.Background(), "a@example.com", "s", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := m.Calls()
	if len(calls) != 1 || calls[0].To != "a@example.com" {
		t.Errorf("call not recorded: %v", calls)
	}
}

func TestMockEmailSender_Failure(t *testing.T) {
	m := &MockEmailSender{ShouldFail: true, FailError: "relay down"}
	if err := m.SendEmail(context.Background(), "a@example.com", "s", "b"); err == nil {
		t.Error("expected failure")
	}
}
