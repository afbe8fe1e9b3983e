package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// BlogPostRepository is a concrete implementation of blog post persistence using sqlx.
type BlogPostRepository struct {
	db *sqlx.DB
}

// NewBlogPostRepository creates a new BlogPostRepository.
func NewBlogPostRepository(db *sqlx.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// Create inserts a new blog post, setting both timestamps. The post's ID is
// populated from the database.
func (r *BlogPostRepository) Create(ctx context.Context, post *BlogPost) error {
	now := NewTextTime(time.Now())
	post.CreatedAt = now
	post.UpdatedAt = now
	query := `INSERT INTO blog_posts (title, filename, published_at, created_at, updated_at)
		VALUES (:title, :filename, :published_at, :created_at, :updated_at)`
	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get blog post id: %w", err)
	}
	post.ID = id
	return nil
}

// GetByID retrieves a single blog post by its ID.
func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*BlogPost, error) {
	var post BlogPost
	query := `SELECT id, title, filename, published_at, created_at, updated_at FROM blog_posts WHERE id = ?`
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}
	return &post, nil
}

// GetByFilename retrieves a single blog post by its unique filename.
func (r *BlogPostRepository) GetByFilename(ctx context.Context, filename string) (*BlogPost, error) {
	var post BlogPost
	query := `SELECT id, title, filename, published_at, created_at, updated_at FROM blog_posts WHERE filename = ?`
	if err := r.db.GetContext(ctx, &post, query, filename); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by filename: %w", err)
	}
	return &post, nil
}

// ListPublished returns posts whose publication date is set and not after
// asOf, most recently published first.
func (r *BlogPostRepository) ListPublished(ctx context.Context, asOf time.Time) ([]*BlogPost, error) {
	var posts []*BlogPost
	query := `SELECT id, title, filename, published_at, created_at, updated_at FROM blog_posts
		WHERE published_at IS NOT NULL AND published_at <= ?
		ORDER BY published_at DESC`
	cutoff := asOf.Format(dateLayout)
	if err := r.db.SelectContext(ctx, &posts, query, cutoff); err != nil {
		return nil, fmt.Errorf("failed to list published blog posts: %w", err)
	}
	return posts, nil
}

// ListAll returns every post, newest first. Used by the admin listing.
func (r *BlogPostRepository) ListAll(ctx context.Context) ([]*BlogPost, error) {
	var posts []*BlogPost
	query := `SELECT id, title, filename, published_at, created_at, updated_at FROM blog_posts
		ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// Update persists changes to an existing blog post and refreshes updated_at.
func (r *BlogPostRepository) Update(ctx context.Context, post *BlogPost) error {
	post.UpdatedAt = NewTextTime(time.Now())
	query := `UPDATE blog_posts SET title = :title, filename = :filename,
		published_at = :published_at, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
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

// Delete removes a blog post by its ID.
func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
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

// Count returns the total number of blog posts.
func (r *BlogPostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blog_posts`); err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}
