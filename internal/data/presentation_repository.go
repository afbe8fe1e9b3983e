package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PresentationRepository is a concrete implementation of presentation
// persistence using sqlx. Reads hydrate the conference association; writes to
// the association go through SetConferences, which replaces the whole set.
type PresentationRepository struct {
	db *sqlx.DB
}

// NewPresentationRepository creates a new PresentationRepository.
func NewPresentationRepository(db *sqlx.DB) *PresentationRepository {
	return &PresentationRepository{db: db}
}

// Create inserts a new presentation, setting both timestamps.
func (r *PresentationRepository) Create(ctx context.Context, p *Presentation) error {
	now := NewTextTime(time.Now())
	p.CreatedAt = now
	p.UpdatedAt = now
	query := `INSERT INTO presentations (title, abstract, slides_url, github_url, created_at, updated_at)
		VALUES (:title, :abstract, :slides_url, :github_url, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to create presentation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get presentation id: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID retrieves a single presentation with its conferences.
func (r *PresentationRepository) GetByID(ctx context.Context, id int64) (*Presentation, error) {
	var p Presentation
	query := `SELECT id, title, abstract, slides_url, github_url, created_at, updated_at
		FROM presentations WHERE id = ?`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get presentation by id: %w", err)
	}
	conferences, err := r.conferencesFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Conferences = conferences
	return &p, nil
}

// ListAll returns every presentation ordered case-insensitively by title,
// each with its conferences hydrated.
func (r *PresentationRepository) ListAll(ctx context.Context) ([]*Presentation, error) {
	var presentations []*Presentation
	query := `SELECT id, title, abstract, slides_url, github_url, created_at, updated_at
		FROM presentations ORDER BY LOWER(title)`
	if err := r.db.SelectContext(ctx, &presentations, query); err != nil {
		return nil, fmt.Errorf("failed to list presentations: %w", err)
	}
	if err := r.hydrateConferences(ctx, presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// hydrateConferences attaches conferences to each presentation with a single
// join query instead of one query per row.
func (r *PresentationRepository) hydrateConferences(ctx context.Context, presentations []*Presentation) error {
	if len(presentations) == 0 {
		return nil
	}
	type linkedConference struct {
		Conference
		PresentationID int64 `db:"presentation_id"`
	}
	var links []linkedConference
	query := `SELECT cp.presentation_id, c.id, c.title, c.year, c.link, c.created_at, c.updated_at
		FROM conference_presentations cp
		JOIN conferences c ON c.id = cp.conference_id
		ORDER BY c.year DESC, LOWER(c.title)`
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return fmt.Errorf("failed to load conference links: %w", err)
	}
	byPresentation := make(map[int64][]Conference, len(presentations))
	for _, link := range links {
		byPresentation[link.PresentationID] = append(byPresentation[link.PresentationID], link.Conference)
	}
	for _, p := range presentations {
		p.Conferences = byPresentation[p.ID]
	}
	return nil
}

func (r *PresentationRepository) conferencesFor(ctx context.Context, presentationID int64) ([]Conference, error) {
	var conferences []Conference
	query := `SELECT c.id, c.title, c.year, c.link, c.created_at, c.updated_at
		FROM conference_presentations cp
		JOIN conferences c ON c.id = cp.conference_id
		WHERE cp.presentation_id = ?
		ORDER BY c.year DESC, LOWER(c.title)`
	if err := r.db.SelectContext(ctx, &conferences, query, presentationID); err != nil {
		return nil, fmt.Errorf("failed to load conferences for presentation: %w", err)
	}
	return conferences, nil
}

// Update persists changes to an existing presentation and refreshes updated_at.
// The conference association is not touched here; use SetConferences.
func (r *PresentationRepository) Update(ctx context.Context, p *Presentation) error {
	p.UpdatedAt = NewTextTime(time.Now())
	query := `UPDATE presentations SET title = :title, abstract = :abstract,
		slides_url = :slides_url, github_url = :github_url, updated_at = :updated_at
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update presentation: %w", err)
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

// SetConferences replaces the presentation's entire conference association
// with one join row per supplied id that resolves to an existing conference.
// Ids that do not resolve are silently dropped. The whole replacement runs in
// a single transaction.
func (r *PresentationRepository) SetConferences(ctx context.Context, presentationID int64, conferenceIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM conference_presentations WHERE presentation_id = ?`, presentationID); err != nil {
		return fmt.Errorf("failed to clear conference links: %w", err)
	}

	now := NewTextTime(time.Now())
	for _, conferenceID := range conferenceIDs {
		var exists int
		err := tx.GetContext(ctx, &exists, `SELECT 1 FROM conferences WHERE id = ?`, conferenceID)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to resolve conference %d: %w", conferenceID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO conference_presentations (conference_id, presentation_id, created_at, updated_at)
			VALUES (?, ?, ?, ?)`, conferenceID, presentationID, now, now); err != nil {
			return fmt.Errorf("failed to link conference %d: %w", conferenceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conference links: %w", err)
	}
	return nil
}

// Delete removes a presentation and its join rows.
func (r *PresentationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM conference_presentations WHERE presentation_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete conference links: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM presentations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete presentation: %w", err)
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

// Count returns the total number of presentations.
func (r *PresentationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM presentations`); err != nil {
		return 0, fmt.Errorf("failed to count presentations: %w", err)
	}
	return count, nil
}
