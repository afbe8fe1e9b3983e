//go:build integration

package data

import (
	"context"
	"errors"
	"testing"
)

func TestConferenceRepository_GetByTitleAndYear(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewConferenceRepository(db)
	ctx := context.Background()

	mustCreateConference(t, repo, "GopherCon", 2023)
	mustCreateConference(t, repo, "GopherCon", 2024)

	got, err := repo.GetByTitleAndYear(ctx, "GopherCon", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year != 2024 {
		t.Errorf("got year %d, want 2024", got.Year)
	}

	if _, err := repo.GetByTitleAndYear(ctx, "GopherCon", 2020); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestConferenceRepository_TitleYearUnique(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewConferenceRepository(db)
	ctx := context.Background()

	mustCreateConference(t, repo, "FOSDEM", 2024)
	dup := &Conference{Title: "FOSDEM", Year: 2024}
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("expected a uniqueness violation for a duplicate title and year")
	}
}

func TestConferenceRepository_PresentationsFor(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	conferences := NewConferenceRepository(db)
	presentations := NewPresentationRepository(db)
	ctx := context.Background()

	c := mustCreateConference(t, conferences, "Conf", 2024)
	talkB := mustCreatePresentation(t, presentations, "b talk")
	talkA := mustCreatePresentation(t, presentations, "A talk")
	if err := presentations.SetConferences(ctx, talkB.ID, []int64{c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := presentations.SetConferences(ctx, talkA.ID, []int64{c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	given, err := conferences.PresentationsFor(ctx, c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(given) != 2 {
		t.Fatalf("got %d presentations, want 2", len(given))
	}
	if given[0].Title != "A talk" || given[1].Title != "b talk" {
		t.Errorf("wrong order: %s, %s", given[0].Title, given[1].Title)
	}
}

func TestConferenceRepository_DeleteCascadesJoinRows(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	conferences := NewConferenceRepository(db)
	presentations := NewPresentationRepository(db)
	ctx := context.Background()

	c := mustCreateConference(t, conferences, "Conf", 2024)
	p := mustCreatePresentation(t, presentations, "Talk")
	if err := presentations.SetConferences(ctx, p.ID, []int64{c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := conferences.Delete(ctx, c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count := joinRowCount(t, db, p.ID); count != 0 {
		t.Errorf("got %d join rows, want 0", count)
	}
	// The presentation itself survives, now unlinked.
	got, err := presentations.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("presentation should not be deleted: %v", err)
	}
	if len(got.Conferences) != 0 {
		t.Errorf("expected no conferences, got %+v", got.Conferences)
	}
}
