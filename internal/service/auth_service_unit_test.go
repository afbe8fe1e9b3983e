//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"go-blog-app/internal/data"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	userToReturn      *data.User
	errToReturn       error
	lastTokenWritten  string
	lastUserIDWritten int64
}

var _ UserRepository = (*mockUserRepository)(nil)

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*data.User, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.userToReturn == nil || m.userToReturn.EmailAddress != email {
		return nil, data.ErrNotFound
	}
	return m.userToReturn, nil
}

func (m *mockUserRepository) UpdateSessionToken(ctx context.Context, userID int64, token string) error {
	m.lastUserIDWritten = userID
	m.lastTokenWritten = token
	return m.errToReturn
}

func testUser(t *testing.T, email, password string) *data.User {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return &data.User{ID: 1, EmailAddress: email, PasswordDigest: string(digest)}
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &mockUserRepository{userToReturn: testUser(t, "admin@example.com", "correct horse")}
	svc := NewAuthService(repo)

	user, err := svc.Authenticate(context.Background(), "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("got user id %d, want 1", user.ID)
	}
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	repo := &mockUserRepository{userToReturn: testUser(t, "admin@example.com", "pw")}
	svc := NewAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "  Admin@Example.COM ", "pw"); err != nil {
		t.Errorf("mixed-case padded email should authenticate: %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := &mockUserRepository{userToReturn: testUser(t, "admin@example.com", "right")}
	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateRepositoryError(t *testing.T) {
	dbErr := errors.New("connection lost")
	repo := &mockUserRepository{errToReturn: dbErr}
	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "admin@example.com", "pw")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("an infrastructure failure must not masquerade as bad credentials")
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("got %v, want the repository error", err)
	}
}

func TestBindSession(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewAuthService(repo)

	if err := svc.BindSession(context.Background(), 7, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUserIDWritten != 7 || repo.lastTokenWritten != "tok" {
		t.Errorf("wrong write: id=%d token=%q", repo.lastUserIDWritten, repo.lastTokenWritten)
	}
}

func TestIsCurrentSession(t *testing.T) {
	user := testUser(t, "admin@example.com", "pw")
	user.SessionToken = "live-token"
	repo := &mockUserRepository{userToReturn: user}
	svc := NewAuthService(repo)
	ctx := context.Background()

	live, err := svc.IsCurrentSession(ctx, "admin@example.com", "live-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !live {
		t.Error("expected the matching token to be live")
	}

	live, err = svc.IsCurrentSession(ctx, "admin@example.com", "stale-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live {
		t.Error("a superseded token must not be live")
	}

	live, err = svc.IsCurrentSession(ctx, "ghost@example.com", "live-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live {
		t.Error("an unknown principal must not be live")
	}

	live, err = svc.IsCurrentSession(ctx, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live {
		t.Error("empty principal or token must not be live")
	}
}
