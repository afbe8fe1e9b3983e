//go:build unit

package content

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go-blog-app/internal/config"
	"go-blog-app/internal/logger"
)

func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	blogDir := t.TempDir()
	deckDir := t.TempDir()
	log := logger.New(config.LogConfig{Level: "error", Format: "console"}, io.Discard)
	store := NewStore(config.ContentConfig{BlogPostsDir: blogDir, PresentationsDir: deckDir}, log)
	return store, blogDir, deckDir
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestAvailableBlogPostFiles(t *testing.T) {
	store, blogDir, _ := newTestStore(t)
	writeFile(t, blogDir, "zulu.md", "")
	writeFile(t, blogDir, "alpha.md", "")
	writeFile(t, blogDir, "notes.txt", "")
	if err := os.Mkdir(filepath.Join(blogDir, "nested.md"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	got := store.AvailableBlogPostFiles()
	want := []string{"alpha.md", "zulu.md"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAvailablePresentationFiles(t *testing.T) {
	store, _, deckDir := newTestStore(t)
	writeFile(t, deckDir, "talk.pptx", "")
	writeFile(t, deckDir, "readme.md", "")

	got := store.AvailablePresentationFiles()
	if len(got) != 1 || got[0] != "talk.pptx" {
		t.Errorf("got %v, want [talk.pptx]", got)
	}
}

func TestAvailableFilesMissingDirectory(t *testing.T) {
	log := logger.New(config.LogConfig{Level: "error", Format: "console"}, io.Discard)
	store := NewStore(config.ContentConfig{BlogPostsDir: "/nonexistent"}, log)

	got := store.AvailableBlogPostFiles()
	if got == nil || len(got) != 0 {
		t.Errorf("a scan failure should yield an empty list, got %v", got)
	}
}

func TestReadBlogPost(t *testing.T) {
	store, blogDir, _ := newTestStore(t)
	writeFile(t, blogDir, "post.md", "# Title")

	raw, err := store.ReadBlogPost("post.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "# Title" {
		t.Errorf("got %q, want # Title", raw)
	}
}

func TestReadBlogPostMissing(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.ReadBlogPost("missing.md")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestReadBlogPostStripsPath(t *testing.T) {
	store, blogDir, _ := newTestStore(t)
	writeFile(t, blogDir, "safe.md", "inside")

	// A row pointing outside the content directory resolves to its base name.
	raw, err := store.ReadBlogPost("../../etc/safe.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "inside" {
		t.Errorf("got %q, want inside", raw)
	}
}
