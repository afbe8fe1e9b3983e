package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// UserRepository persists admin accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, setting both timestamps.
func (r *UserRepository) Create(ctx context.Context, user *User) error {
	now := NewTextTime(time.Now())
	user.CreatedAt = now
	user.UpdatedAt = now
	query := `INSERT INTO users (email_address, password_digest, session_token, created_at, updated_at)
		VALUES (:email_address, :password_digest, :session_token, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id
	return nil
}

// GetByEmail retrieves a user by email address. Callers are expected to
// normalize the address (lowercase, trimmed) before the lookup.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, email_address, password_digest, session_token, created_at, updated_at
		FROM users WHERE email_address = ?`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateSessionToken records the user's single live session token. Writing a
// new token here is what invalidates any previously issued session.
func (r *UserRepository) UpdateSessionToken(ctx context.Context, userID int64, token string) error {
	now := NewTextTime(time.Now())
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET session_token = ?, updated_at = ? WHERE id = ?`, token, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update session token: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
