package identity

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

var (
	ErrCodeExpired     = errors.New("verification code expired or never issued")
	ErrCodeMismatch    = errors.New("verification code does not match")
	ErrTooManyAttempts = errors.New("too many failed attempts, request a new code")
)

const maxVerifyAttempts = 5

type issuedCode struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// CodeStore issues and verifies short-lived email login codes. One
// live code per email: issuing again replaces the previous code and
// resets the attempt counter. Verification consumes the code on
// success.
type CodeStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	codes map[string]*issuedCode
}

func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		ttl:   ttl,
		now:   time.Now,
		codes: make(map[string]*issuedCode),
	}
}

// Issue generates a fresh 6-digit code for the email and returns it.
func (s *CodeStore) Issue(email string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}

	s.mu.Lock()
	s.codes[normalizeEmail(email)] = &issuedCode{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return code, nil
}

// Verify checks the code for the email. Success consumes the code; a
// mismatch burns one of the limited attempts.
func (s *CodeStore) Verify(email, code string) error {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.codes[key]
	if !ok || s.now().After(issued.expiresAt) {
		delete(s.codes, key)
		return ErrCodeExpired
	}
	if issued.attempts >= maxVerifyAttempts {
		delete(s.codes, key)
		return ErrTooManyAttempts
	}
	if subtle.ConstantTimeCompare([]byte(issued.code), []byte(code)) != 1 {
		issued.attempts++
		if issued.attempts >= maxVerifyAttempts {
			delete(s.codes, key)
			return ErrTooManyAttempts
		}
		return ErrCodeMismatch
	}

	delete(s.codes, key)
	return nil
}

// TTL reports the configured code lifetime.
func (s *CodeStore) TTL() time.Duration { return s.ttl }

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
