//go:build integration

package data

import (
	"context"
	"errors"
	"testing"
)

func TestBioRepository_GetFirstEmpty(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewBioRepository(db)

	if _, err := repo.GetFirst(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestBioRepository_GetFirstReturnsLowestID(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewBioRepository(db)
	ctx := context.Background()

	first := &Bio{Name: "First"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := &Bio{Name: "Second"}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetFirst(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("got id %d, want %d", got.ID, first.ID)
	}
}

func TestBioRepository_Update(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewBioRepository(db)
	ctx := context.Background()

	bio := &Bio{Name: "Original"}
	if err := repo.Create(ctx, bio); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bio.Name = "Updated"
	bio.BriefBio = "Engineer"
	if err := repo.Update(ctx, bio); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetFirst(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Updated" || got.BriefBio != "Engineer" {
		t.Errorf("unexpected bio: %+v", got)
	}
}

func TestContactInfoRepository_RoundTrip(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewContactInfoRepository(db)
	ctx := context.Background()

	if _, err := repo.GetFirst(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	info := &ContactInfo{Email: "owner@example.com", GithubURL: "https://github.com/owner"}
	if err := repo.Create(ctx, info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetFirst(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "owner@example.com" || got.GithubURL != "https://github.com/owner" {
		t.Errorf("unexpected contact info: %+v", got)
	}

	got.UntappdURL = "https://untappd.com/user/owner"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := repo.GetFirst(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.UntappdURL != "https://untappd.com/user/owner" {
		t.Errorf("unexpected contact info after update: %+v", again)
	}
}

func TestUserRepository_SessionToken(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &User{EmailAddress: "admin@example.com", PasswordDigest: "digest"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.UpdateSessionToken(ctx, user.ID, "token-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionToken != "token-1" {
		t.Errorf("got token %q, want token-1", got.SessionToken)
	}

	// A later login overwrites the stored token.
	if err := repo.UpdateSessionToken(ctx, user.ID, "token-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = repo.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionToken != "token-2" {
		t.Errorf("got token %q, want token-2", got.SessionToken)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
