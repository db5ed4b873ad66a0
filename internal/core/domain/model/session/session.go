package session

import (
	"errors"
	"strings"
	"time"

	"yumyum/internal/pkg/errs"
	"yumyum/internal/pkg/guard"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 4

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

// Session is the signed-in customer identity. The password is checked at
// sign-in and never stored.
type Session struct {
	email      string
	signedInAt time.Time

	guard guard.ConstructorGuard
}

// NormalizeEmail trims and lowercases an email address. It does not validate.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewSession signs a customer in. The email must contain an "@" and the
// password must have at least MinPasswordLength characters after trimming.
// The stored email is normalized with NormalizeEmail.
func NewSession(email, password string, signedInAt time.Time) (*Session, error) {
	email = NormalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("enter a valid email")
	}
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return nil, errs.NewValueIsInvalidError("password must be at least 4 characters")
	}

	return &Session{
		email:      email,
		signedInAt: signedInAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreSession rebuilds a session from persistence. A blank email means no
// session survived, so the caller gets nil rather than an invalid session.
func RestoreSession(email string, signedInAt time.Time) *Session {
	email = NormalizeEmail(email)
	if email == "" {
		return nil
	}

	return &Session{
		email:      email,
		signedInAt: signedInAt,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// Email returns the normalized email of the signed-in customer.
func (s *Session) Email() string {
	return s.email
}

// SignedInAt returns when the session started.
func (s *Session) SignedInAt() time.Time {
	return s.signedInAt
}
