// Package content resolves the on-disk files referenced by blog post and
// presentation rows: markdown sources in the blog-posts directory and slide
// decks in the presentations directory.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go-blog-app/internal/config"
	"go-blog-app/internal/logger"
)

// ErrNotFound is returned when a referenced content file does not exist.
var ErrNotFound = errors.New("content file not found")

const (
	blogPostExt     = ".md"
	presentationExt = ".pptx"
)

// Store reads the two read-only content directories.
type Store struct {
	blogPostsDir     string
	presentationsDir string
	log              logger.Logger
}

// NewStore creates a Store over the configured content directories.
func NewStore(cfg config.ContentConfig, log logger.Logger) *Store {
	return &Store{
		blogPostsDir:     cfg.BlogPostsDir,
		presentationsDir: cfg.PresentationsDir,
		log:              log,
	}
}

// AvailableBlogPostFiles lists the markdown files in the blog-posts
// directory, sorted by filename. Scan errors degrade to an empty list.
func (s *Store) AvailableBlogPostFiles() []string {
	return s.list(s.blogPostsDir, blogPostExt)
}

// AvailablePresentationFiles lists the slide-deck files in the presentations
// directory, sorted by filename. Scan errors degrade to an empty list.
func (s *Store) AvailablePresentationFiles() []string {
	return s.list(s.presentationsDir, presentationExt)
}

func (s *Store) list(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Failed to scan content directory %s: %v", dir, err))
		return []string{}
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ext) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if names == nil {
		return []string{}
	}
	return names
}

// ReadBlogPost returns the raw markdown content of the named blog post file.
// The filename is reduced to its base name so rows cannot reference files
// outside the content directory.
func (s *Store) ReadBlogPost(filename string) (string, error) {
	path := filepath.Join(s.blogPostsDir, filepath.Base(filename))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn(fmt.Sprintf("Blog post file not found: %s", filename))
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read blog post file %s: %w", filename, err)
	}
	return string(raw), nil
}
