package service

import (
	"context"
	"errors"
	"strings"

	"go-blog-app/internal/data"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every authentication failure. An
// unknown email address and a wrong password are indistinguishable to the
// caller, so login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email address or password")

// UserRepository defines the interface for database operations on users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*data.User, error)
	UpdateSessionToken(ctx context.Context, userID int64, token string) error
}

// AuthService verifies submitted credentials and tracks the single live
// session allowed per account.
type AuthService struct {
	users UserRepository
}

// NewAuthService creates a new AuthService with the given repository.
func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate looks up the user for the submitted email address
// (case-insensitive, trimmed) and verifies the password against the stored
// bcrypt digest. Both failure modes return ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*data.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// BindSession records token as the user's only live session. Any session
// issued earlier stops being accepted the moment this write lands.
func (s *AuthService) BindSession(ctx context.Context, userID int64, token string) error {
	return s.users.UpdateSessionToken(ctx, userID, token)
}

// IsCurrentSession reports whether token is the live session for the given
// principal. A stale token, or a principal that no longer resolves to a
// user, is simply not authenticated.
func (s *AuthService) IsCurrentSession(ctx context.Context, email, token string) (bool, error) {
	if email == "" || token == "" {
		return false, nil
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.SessionToken == token, nil
}
