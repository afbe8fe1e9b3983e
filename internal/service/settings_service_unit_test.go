//go:build unit

package service

import (
	"context"
	"testing"

	"go-blog-app/internal/data"
)

// mockBioRepository is an in-memory implementation of the BioRepository interface.
type mockBioRepository struct {
	rows        []*data.Bio
	createCalls int
}

var _ BioRepository = (*mockBioRepository)(nil)

func (m *mockBioRepository) GetFirst(ctx context.Context) (*data.Bio, error) {
	if len(m.rows) == 0 {
		return nil, data.ErrNotFound
	}
	return m.rows[0], nil
}

func (m *mockBioRepository) Create(ctx context.Context, bio *data.Bio) error {
	m.createCalls++
	bio.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, bio)
	return nil
}

func (m *mockBioRepository) Update(ctx context.Context, bio *data.Bio) error {
	return nil
}

// mockContactInfoRepository is an in-memory implementation of the
// ContactInfoRepository interface.
type mockContactInfoRepository struct {
	rows        []*data.ContactInfo
	createCalls int
}

var _ ContactInfoRepository = (*mockContactInfoRepository)(nil)

func (m *mockContactInfoRepository) GetFirst(ctx context.Context) (*data.ContactInfo, error) {
	if len(m.rows) == 0 {
		return nil, data.ErrNotFound
	}
	return m.rows[0], nil
}

func (m *mockContactInfoRepository) Create(ctx context.Context, info *data.ContactInfo) error {
	m.createCalls++
	info.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, info)
	return nil
}

func (m *mockContactInfoRepository) Update(ctx context.Context, info *data.ContactInfo) error {
	return nil
}

func TestGetBioCreatesBlankRowOnce(t *testing.T) {
	bios := &mockBioRepository{}
	svc := NewSettingsService(bios, &mockContactInfoRepository{})
	ctx := context.Background()

	first, err := svc.GetBio(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected the blank row to be persisted")
	}
	if first.Name != "" || first.Content != "" {
		t.Errorf("expected a blank row, got %+v", first)
	}

	second, err := svc.GetBio(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the same row, got ids %d and %d", first.ID, second.ID)
	}
	if bios.createCalls != 1 {
		t.Errorf("got %d create calls, want 1", bios.createCalls)
	}
}

func TestUpdateBioKeepsRowIdentity(t *testing.T) {
	bios := &mockBioRepository{}
	svc := NewSettingsService(bios, &mockContactInfoRepository{})
	ctx := context.Background()

	created, err := svc.GetBio(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateBio(ctx, BioFields{Name: "Kay", BriefBio: "Engineer", Content: "Long story."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update must not replace the row: ids %d and %d", created.ID, updated.ID)
	}
	if updated.Name != "Kay" || updated.BriefBio != "Engineer" || updated.Content != "Long story." {
		t.Errorf("fields not copied: %+v", updated)
	}
	if bios.createCalls != 1 {
		t.Errorf("got %d create calls, want 1", bios.createCalls)
	}
}

func TestUpdateContactInfoCreatesRowWhenAbsent(t *testing.T) {
	contacts := &mockContactInfoRepository{}
	svc := NewSettingsService(&mockBioRepository{}, contacts)

	info, err := svc.UpdateContactInfo(context.Background(), ContactInfoFields{
		Email:      "owner@example.com",
		UntappdURL: "https://untappd.com/user/owner",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID == 0 {
		t.Error("expected the row to be persisted before the update")
	}
	if info.Email != "owner@example.com" || info.UntappdURL != "https://untappd.com/user/owner" {
		t.Errorf("fields not copied: %+v", info)
	}
	if contacts.createCalls != 1 {
		t.Errorf("got %d create calls, want 1", contacts.createCalls)
	}
}
