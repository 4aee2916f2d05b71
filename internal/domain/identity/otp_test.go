package identity

import (
	"errors"
	"testing"
	"time"
)

func TestCodeStore_IssueAndVerify(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	code, err := s.Issue("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("expected 6-digit code, got %q", code)
	}
	if err := s.Verify("user@example.com", code); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	// Consumed on success.
	if err := s.Verify("user@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired for consumed code, got %v", err)
	}
}

func TestCodeStore_EmailNormalized(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	code, err := s.Issue("  User@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Verify("user@example.com", code); err != nil {
		t.Errorf("expected normalized lookup to succeed, got %v", err)
	}
}

func TestCodeStore_Expiry(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	code, err := s.Issue("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	s.now = func() time.Time { return now.Add(11 * time.Minute) }
	if err := s.Verify("user@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired, got %v", err)
	}
}

func TestCodeStore_AttemptCap(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	code, err := s.Issue("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < maxVerifyAttempts-1; i++ {
		if err := s.Verify("user@example.com", "000000"); !errors.Is(err, ErrCodeMismatch) {
			t.Fatalf("attempt %d: expected ErrCodeMismatch, got %v", i, err)
		}
	}
	if err := s.Verify("user@example.com", "000000"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	// The code is burned even with the right digits.
	if err := s.Verify("user@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired after burn, got %v", err)
	}
}

func TestCodeStore_ReissueReplacesCode(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)
	first, err := s.Issue("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Issue("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Verify("user@example.com", first); err == nil && first != second {
		t.Error("stale code must not verify after reissue")
	}
}
