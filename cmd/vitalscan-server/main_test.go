package main

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/vitalscan/vitalscan/internal/config"
	"github.com/vitalscan/vitalscan/internal/platform/notification"
)

func TestSigningKey_Configured(t *testing.T) {
	cfg := &config.Config{SessionSigningKey: "0123456789abcdef0123456789abcdef"}
	key := signingKey(cfg, zerolog.Nop())
	if string(key) != cfg.SessionSigningKey {
		t.Errorf("expected configured key back, got %q", key)
	}
}

func TestSigningKey_EphemeralWhenUnset(t *testing.T) {
	cfg := &config.Config{}
	key := signingKey(cfg, zerolog.Nop())
	if len(key) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(key))
	}
	other := signingKey(cfg, zerolog.Nop())
	if string(key) == string(other) {
		t.Error("ephemeral keys should differ between calls")
	}
}

func TestNewMailer_SMTPWhenHostSet(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPFrom: "no-reply@example.com"}
	if _, ok := newMailer(cfg, zerolog.Nop()).(*notification.SMTPSender); !ok {
		t.Error("expected SMTP sender when host is configured")
	}
}

func TestNewMailer_LogFallback(t *testing.T) {
	cfg := &config.Config{}
	if _, ok := newMailer(cfg, zerolog.Nop()).(*notification.LogSender); !ok {
		t.Error("expected log sender when SMTP is not configured")
	}
}
