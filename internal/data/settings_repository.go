package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// BioRepository persists the biography row. The table is meant to hold a
// single logical record; reads always take the lowest-id row.
type BioRepository struct {
	db *sqlx.DB
}

// NewBioRepository creates a new BioRepository.
func NewBioRepository(db *sqlx.DB) *BioRepository {
	return &BioRepository{db: db}
}

// GetFirst returns the lowest-id bio row, or ErrNotFound when the table is empty.
func (r *BioRepository) GetFirst(ctx context.Context) (*Bio, error) {
	var bio Bio
	query := `SELECT id, name, brief_bio, content, created_at, updated_at FROM bio ORDER BY id ASC LIMIT 1`
	if err := r.db.GetContext(ctx, &bio, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bio: %w", err)
	}
	return &bio, nil
}

// Create inserts a bio row, setting both timestamps.
func (r *BioRepository) Create(ctx context.Context, bio *Bio) error {
	now := NewTextTime(time.Now())
	bio.CreatedAt = now
	bio.UpdatedAt = now
	query := `INSERT INTO bio (name, brief_bio, content, created_at, updated_at)
		VALUES (:name, :brief_bio, :content, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, bio)
	if err != nil {
		return fmt.Errorf("failed to create bio: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get bio id: %w", err)
	}
	bio.ID = id
	return nil
}

// Update persists changes to the bio row and refreshes updated_at.
func (r *BioRepository) Update(ctx context.Context, bio *Bio) error {
	bio.UpdatedAt = NewTextTime(time.Now())
	query := `UPDATE bio SET name = :name, brief_bio = :brief_bio, content = :content,
		updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, bio)
	if err != nil {
		return fmt.Errorf("failed to update bio: %w", err)
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

// ContactInfoRepository persists the contact info row, with the same
// lowest-id singleton convention as BioRepository.
type ContactInfoRepository struct {
	db *sqlx.DB
}

// NewContactInfoRepository creates a new ContactInfoRepository.
func NewContactInfoRepository(db *sqlx.DB) *ContactInfoRepository {
	return &ContactInfoRepository{db: db}
}

// GetFirst returns the lowest-id contact info row, or ErrNotFound when the
// table is empty.
func (r *ContactInfoRepository) GetFirst(ctx context.Context) (*ContactInfo, error) {
	var info ContactInfo
	query := `SELECT id, email, github_url, linkedin_url, twitter_url, untapped_url, created_at, updated_at
		FROM contact_info ORDER BY id ASC LIMIT 1`
	if err := r.db.GetContext(ctx, &info, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return &info, nil
}

// Create inserts a contact info row, setting both timestamps.
func (r *ContactInfoRepository) Create(ctx context.Context, info *ContactInfo) error {
	now := NewTextTime(time.Now())
	info.CreatedAt = now
	info.UpdatedAt = now
	query := `INSERT INTO contact_info (email, github_url, linkedin_url, twitter_url, untapped_url, created_at, updated_at)
		VALUES (:email, :github_url, :linkedin_url, :twitter_url, :untapped_url, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, info)
	if err != nil {
		return fmt.Errorf("failed to create contact info: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get contact info id: %w", err)
	}
	info.ID = id
	return nil
}

// Update persists changes to the contact info row and refreshes updated_at.
func (r *ContactInfoRepository) Update(ctx context.Context, info *ContactInfo) error {
	info.UpdatedAt = NewTextTime(time.Now())
	query := `UPDATE contact_info SET email = :email, github_url = :github_url,
		linkedin_url = :linkedin_url, twitter_url = :twitter_url, untapped_url = :untapped_url,
		updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, info)
	if err != nil {
		return fmt.Errorf("failed to update contact info: %w", err)
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
