package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vitalscan/vitalscan/internal/platform/auth"
	"github.com/vitalscan/vitalscan/internal/platform/db"
	"github.com/vitalscan/vitalscan/internal/platform/notification"
)

var ErrInvalidEmail = errors.New("invalid email address")

type Service struct {
	users     UserRepository
	codes     *CodeStore
	tokens    *auth.TokenManager
	mailer    notification.EmailSender
	templates *notification.TemplateEngine
	tx        db.Txer
}

func NewService(users UserRepository, codes *CodeStore, tokens *auth.TokenManager, mailer notification.EmailSender, templates *notification.TemplateEngine, tx db.Txer) *Service {
	return &Service{users: users, codes: codes, tokens: tokens, mailer: mailer, templates: templates, tx: tx}
}

// SendCode issues a login code and mails it. The same response shape
// is returned whether or not the email already has an account.
func (s *Service) SendCode(ctx context.Context, email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	code, err := s.codes.Issue(email)
	if err != nil {
		return err
	}

	subject, body, err := s.templates.Render("login-code", map[string]string{
		"code":        code,
		"ttl_minutes": strconv.Itoa(int(s.codes.TTL().Minutes())),
	})
	if err != nil {
		return fmt.Errorf("rendering login code mail: %w", err)
	}
	if err := s.mailer.SendEmail(ctx, email, subject, body); err != nil {
		return fmt.Errorf("sending login code: %w", err)
	}
	return nil
}

// VerifyCode exchanges a valid code for a session token, creating the
// account on first login.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (string, *User, error) {
	if err := s.codes.Verify(email, code); err != nil {
		return "", nil, err
	}

	// Get-or-create plus the login touch run in one transaction so a
	// first login is atomic.
	normalized := normalizeEmail(email)
	var user *User
	created := false
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByEmail(ctx, normalized)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			u = &User{Name: displayName(normalized), Email: normalized}
			if err := s.users.Create(ctx, u); err != nil {
				return fmt.Errorf("creating user: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("loading user: %w", err)
		}
		if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
			return fmt.Errorf("recording login: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if created {
		s.sendWelcome(ctx, user)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issuing session token: %w", err)
	}
	return token, user, nil
}

// sendWelcome mails the welcome note after the account row is
// committed. Delivery is best effort, a mail failure never fails the
// login that created the account.
func (s *Service) sendWelcome(ctx context.Context, user *User) {
	subject, body, err := s.templates.Render("welcome", map[string]string{"name": user.Name})
	if err != nil {
		return
	}
	_ = s.mailer.SendEmail(ctx, user.Email, subject, body)
}

// displayName derives the default profile name from the email local
// part. Users cannot edit it yet.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// Introspect resolves the authenticated user behind a request context.
// A valid token whose user row is gone yields an unauthenticated
// session, not an error.
func (s *Service) Introspect(ctx context.Context, userID uuid.UUID) (*Session, error) {
	if userID == uuid.Nil {
		return &Session{}, nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &Session{Authenticated: true, User: user}, nil
}
