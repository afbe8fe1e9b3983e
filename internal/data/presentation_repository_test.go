//go:build integration

package data

import (
	"context"
	"testing"
)

func mustCreateConference(t *testing.T, repo *ConferenceRepository, title string, year int) *Conference {
	t.Helper()
	c := &Conference{Title: title, Year: year}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to create conference %s: %v", title, err)
	}
	return c
}

func mustCreatePresentation(t *testing.T, repo *PresentationRepository, title string) *Presentation {
	t.Helper()
	p := &Presentation{Title: title}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to create presentation %s: %v", title, err)
	}
	return p
}

func joinRowCount(t *testing.T, db interface {
	Get(dest interface{}, query string, args ...interface{}) error
}, presentationID int64) int {
	t.Helper()
	var count int
	if err := db.Get(&count,
		`SELECT COUNT(*) FROM conference_presentations WHERE presentation_id = ?`, presentationID); err != nil {
		t.Fatalf("failed to count join rows: %v", err)
	}
	return count
}

func TestPresentationRepository_SetConferences(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	conferences := NewConferenceRepository(db)
	ctx := context.Background()

	older := mustCreateConference(t, conferences, "GopherCon", 2022)
	newer := mustCreateConference(t, conferences, "FOSDEM", 2024)
	p := mustCreatePresentation(t, presentations, "Profiling Go Services")

	if err := presentations.SetConferences(ctx, p.ID, []int64{older.ID, newer.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := presentations.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Conferences) != 2 {
		t.Fatalf("got %d conferences, want 2", len(got.Conferences))
	}
	// Hydration orders newest year first.
	if got.Conferences[0].Title != "FOSDEM" || got.Conferences[1].Title != "GopherCon" {
		t.Errorf("wrong order: %s, %s", got.Conferences[0].Title, got.Conferences[1].Title)
	}
}

func TestPresentationRepository_SetConferencesReplaces(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	conferences := NewConferenceRepository(db)
	ctx := context.Background()

	a := mustCreateConference(t, conferences, "ConfA", 2023)
	b := mustCreateConference(t, conferences, "ConfB", 2024)
	p := mustCreatePresentation(t, presentations, "Talk")

	if err := presentations.SetConferences(ctx, p.ID, []int64{a.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := presentations.SetConferences(ctx, p.ID, []int64{b.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := presentations.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Conferences) != 1 || got.Conferences[0].ID != b.ID {
		t.Errorf("expected the association to be fully replaced, got %+v", got.Conferences)
	}
}

func TestPresentationRepository_SetConferencesDropsUnknownIDs(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	conferences := NewConferenceRepository(db)
	ctx := context.Background()

	c := mustCreateConference(t, conferences, "RealConf", 2024)
	p := mustCreatePresentation(t, presentations, "Talk")

	if err := presentations.SetConferences(ctx, p.ID, []int64{c.ID, 9999}); err != nil {
		t.Fatalf("an unknown id must not fail the whole operation: %v", err)
	}

	got, err := presentations.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Conferences) != 1 || got.Conferences[0].ID != c.ID {
		t.Errorf("expected only the resolvable id to be linked, got %+v", got.Conferences)
	}
}

func TestPresentationRepository_SetConferencesEmptyClearsAll(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	conferences := NewConferenceRepository(db)
	ctx := context.Background()

	c := mustCreateConference(t, conferences, "Conf", 2024)
	p := mustCreatePresentation(t, presentations, "Talk")

	if err := presentations.SetConferences(ctx, p.ID, []int64{c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := presentations.SetConferences(ctx, p.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := joinRowCount(t, db, p.ID); count != 0 {
		t.Errorf("got %d join rows, want 0", count)
	}
}

func TestPresentationRepository_ListAllOrder(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	ctx := context.Background()

	mustCreatePresentation(t, presentations, "zebra patterns")
	mustCreatePresentation(t, presentations, "Alpha testing")
	mustCreatePresentation(t, presentations, "beta releases")

	list, err := presentations.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d presentations, want 3", len(list))
	}
	// Case-insensitive title order.
	want := []string{"Alpha testing", "beta releases", "zebra patterns"}
	for i, p := range list {
		if p.Title != want[i] {
			t.Errorf("position %d: got %q, want %q", i, p.Title, want[i])
		}
	}
}

func TestPresentationRepository_DeleteRemovesJoinRows(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	presentations := NewPresentationRepository(db)
	conferences := NewConferenceRepository(db)
	ctx := context.Background()

	c := mustCreateConference(t, conferences, "Conf", 2024)
	p := mustCreatePresentation(t, presentations, "Talk")
	if err := presentations.SetConferences(ctx, p.ID, []int64{c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := presentations.Delete(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count := joinRowCount(t, db, p.ID); count != 0 {
		t.Errorf("got %d join rows, want 0", count)
	}
	// The conference itself survives.
	if _, err := conferences.GetByID(ctx, c.ID); err != nil {
		t.Errorf("conference should not be deleted: %v", err)
	}
}
