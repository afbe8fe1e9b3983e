package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-blog-app/internal/content"
	"go-blog-app/internal/data"
	"go-blog-app/internal/markdown"
)

// The number of words shown in a blog index preview.
const excerptWords = 50

// BlogPostRepository defines the interface for database operations on blog posts.
type BlogPostRepository interface {
	Create(ctx context.Context, post *data.BlogPost) error
	GetByID(ctx context.Context, id int64) (*data.BlogPost, error)
	GetByFilename(ctx context.Context, filename string) (*data.BlogPost, error)
	ListPublished(ctx context.Context, asOf time.Time) ([]*data.BlogPost, error)
	ListAll(ctx context.Context) ([]*data.BlogPost, error)
	Update(ctx context.Context, post *data.BlogPost) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ContentReader resolves on-disk blog post files.
type ContentReader interface {
	AvailableBlogPostFiles() []string
	ReadBlogPost(filename string) (string, error)
}

// PostPreview pairs a post with the plain-text excerpt of its content, for
// the public index.
type PostPreview struct {
	Post    *data.BlogPost
	Excerpt string
}

// BlogService provides business logic for blog posts: the published listing,
// filename resolution, and the admin CRUD operations.
type BlogService struct {
	repo     BlogPostRepository
	files    ContentReader
	renderer *markdown.Renderer
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo BlogPostRepository, files ContentReader, renderer *markdown.Renderer) *BlogService {
	return &BlogService{repo: repo, files: files, renderer: renderer}
}

// PublishedPosts returns publicly visible posts (publication date set and not
// in the future), newest first, each with an excerpt of its content. A post
// whose backing file cannot be read gets an empty excerpt.
func (s *BlogService) PublishedPosts(ctx context.Context) ([]PostPreview, error) {
	posts, err := s.repo.ListPublished(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	previews := make([]PostPreview, 0, len(posts))
	for _, post := range posts {
		previews = append(previews, PostPreview{Post: post, Excerpt: s.Excerpt(post.Filename)})
	}
	return previews, nil
}

// PostWithContent resolves a post by filename, appending the canonical .md
// extension when the caller omitted it, and returns the post together with
// the raw content of its backing file. A missing row or missing file both
// yield data.ErrNotFound.
func (s *BlogService) PostWithContent(ctx context.Context, filename string) (*data.BlogPost, string, error) {
	if !strings.HasSuffix(filename, ".md") {
		filename += ".md"
	}
	post, err := s.repo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, "", err
	}
	raw, err := s.files.ReadBlogPost(post.Filename)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, "", data.ErrNotFound
		}
		return nil, "", err
	}
	return post, raw, nil
}

// RenderContent converts a post's raw markdown to HTML.
func (s *BlogService) RenderContent(raw string) (string, error) {
	return s.renderer.Render(raw)
}

// Excerpt returns a plain-text preview of the named blog post file. An
// unreadable file yields an empty string rather than an error.
func (s *BlogService) Excerpt(filename string) string {
	raw, err := s.files.ReadBlogPost(filename)
	if err != nil {
		return ""
	}
	return s.renderer.Excerpt(raw, excerptWords)
}

// AllPosts returns every post, newest first, for the admin listing.
func (s *BlogService) AllPosts(ctx context.Context) ([]*data.BlogPost, error) {
	return s.repo.ListAll(ctx)
}

// GetPost retrieves a single post by id.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*data.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// AdminContent returns the raw content of the post's backing file, but only
// when the filename is among the files discovered on disk; otherwise "".
func (s *BlogService) AdminContent(post *data.BlogPost) string {
	for _, name := range s.files.AvailableBlogPostFiles() {
		if name == post.Filename {
			raw, err := s.files.ReadBlogPost(post.Filename)
			if err != nil {
				return ""
			}
			return raw
		}
	}
	return ""
}

// AvailableFiles lists the markdown files a post can reference.
func (s *BlogService) AvailableFiles() []string {
	return s.files.AvailableBlogPostFiles()
}

// CreatePost creates a new post.
func (s *BlogService) CreatePost(ctx context.Context, title, filename string, publishedAt data.TextDate) (*data.BlogPost, error) {
	post := &data.BlogPost{Title: title, Filename: filename, PublishedAt: publishedAt}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost copies the caller-supplied fields onto the persisted post.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, title, filename string, publishedAt data.TextDate) (*data.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title = title
	post.Filename = filename
	post.PublishedAt = publishedAt
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post by id.
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// CountPosts returns the total number of posts, for the admin dashboard.
func (s *BlogService) CountPosts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
