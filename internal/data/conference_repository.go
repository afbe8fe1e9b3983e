package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ConferenceRepository is a concrete implementation of conference persistence
// using sqlx.
type ConferenceRepository struct {
	db *sqlx.DB
}

// NewConferenceRepository creates a new ConferenceRepository.
func NewConferenceRepository(db *sqlx.DB) *ConferenceRepository {
	return &ConferenceRepository{db: db}
}

// Create inserts a new conference, setting both timestamps. The (title, year)
// pair is unique; violating it surfaces as a wrapped driver error.
func (r *ConferenceRepository) Create(ctx context.Context, c *Conference) error {
	now := NewTextTime(time.Now())
	c.CreatedAt = now
	c.UpdatedAt = now
	query := `INSERT INTO conferences (title, year, link, created_at, updated_at)
		VALUES (:title, :year, :link, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to create conference: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get conference id: %w", err)
	}
	c.ID = id
	return nil
}

// GetByID retrieves a single conference by its ID.
func (r *ConferenceRepository) GetByID(ctx context.Context, id int64) (*Conference, error) {
	var c Conference
	query := `SELECT id, title, year, link, created_at, updated_at FROM conferences WHERE id = ?`
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conference by id: %w", err)
	}
	return &c, nil
}

// GetByTitleAndYear retrieves a conference by its unique (title, year) pair.
func (r *ConferenceRepository) GetByTitleAndYear(ctx context.Context, title string, year int) (*Conference, error) {
	var c Conference
	query := `SELECT id, title, year, link, created_at, updated_at FROM conferences WHERE title = ? AND year = ?`
	if err := r.db.GetContext(ctx, &c, query, title, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conference by title and year: %w", err)
	}
	return &c, nil
}

// ListAll returns every conference ordered case-insensitively by title, with
// year as tiebreak.
func (r *ConferenceRepository) ListAll(ctx context.Context) ([]*Conference, error) {
	var conferences []*Conference
	query := `SELECT id, title, year, link, created_at, updated_at FROM conferences
		ORDER BY LOWER(title), year`
	if err := r.db.SelectContext(ctx, &conferences, query); err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}
	return conferences, nil
}

// PresentationsFor returns the presentations associated with a conference,
// ordered case-insensitively by title.
func (r *ConferenceRepository) PresentationsFor(ctx context.Context, conferenceID int64) ([]*Presentation, error) {
	var presentations []*Presentation
	query := `SELECT p.id, p.title, p.abstract, p.slides_url, p.github_url, p.created_at, p.updated_at
		FROM conference_presentations cp
		JOIN presentations p ON p.id = cp.presentation_id
		WHERE cp.conference_id = ?
		ORDER BY LOWER(p.title)`
	if err := r.db.SelectContext(ctx, &presentations, query, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to load presentations for conference: %w", err)
	}
	return presentations, nil
}

// Update persists changes to an existing conference and refreshes updated_at.
func (r *ConferenceRepository) Update(ctx context.Context, c *Conference) error {
	c.UpdatedAt = NewTextTime(time.Now())
	query := `UPDATE conferences SET title = :title, year = :year, link = :link,
		updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update conference: %w", err)
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

// Delete removes a conference and its join rows.
func (r *ConferenceRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM conference_presentations WHERE conference_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete conference links: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM conferences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conference: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// Count returns the total number of conferences.
func (r *ConferenceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM conferences`); err != nil {
		return 0, fmt.Errorf("failed to count conferences: %w", err)
	}
	return count, nil
}
