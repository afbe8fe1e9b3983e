package service

import (
	"context"
	"errors"

	"go-blog-app/internal/data"
)

// BioRepository defines the interface for database operations on the bio row.
type BioRepository interface {
	GetFirst(ctx context.Context) (*data.Bio, error)
	Create(ctx context.Context, bio *data.Bio) error
	Update(ctx context.Context, bio *data.Bio) error
}

// ContactInfoRepository defines the interface for database operations on the
// contact info row.
type ContactInfoRepository interface {
	GetFirst(ctx context.Context) (*data.ContactInfo, error)
	Create(ctx context.Context, info *data.ContactInfo) error
	Update(ctx context.Context, info *data.ContactInfo) error
}

// BioFields carries the editable attributes of the bio.
type BioFields struct {
	Name     string
	BriefBio string
	Content  string
}

// ContactInfoFields carries the editable attributes of the contact info.
type ContactInfoFields struct {
	Email       string
	GithubURL   string
	LinkedinURL string
	TwitterURL  string
	UntappdURL  string
}

// SettingsService manages the two singleton-style rows: the bio and the
// contact info. Reads always return the lowest-id row, creating a blank one
// the first time it is asked for. Updates copy fields onto the persisted row,
// never replacing its identity. All access goes through this service so only
// one code path can insert.
type SettingsService struct {
	bio     BioRepository
	contact ContactInfoRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(bio BioRepository, contact ContactInfoRepository) *SettingsService {
	return &SettingsService{bio: bio, contact: contact}
}

// GetBio returns the bio row, creating a blank one if none exists.
func (s *SettingsService) GetBio(ctx context.Context) (*data.Bio, error) {
	bio, err := s.bio.GetFirst(ctx)
	if err == nil {
		return bio, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return nil, err
	}
	bio = &data.Bio{}
	if err := s.bio.Create(ctx, bio); err != nil {
		return nil, err
	}
	return bio, nil
}

// UpdateBio copies the supplied fields onto the persisted bio row.
func (s *SettingsService) UpdateBio(ctx context.Context, fields BioFields) (*data.Bio, error) {
	bio, err := s.GetBio(ctx)
	if err != nil {
		return nil, err
	}
	bio.Name = fields.Name
	bio.BriefBio = fields.BriefBio
	bio.Content = fields.Content
	if err := s.bio.Update(ctx, bio); err != nil {
		return nil, err
	}
	return bio, nil
}

// GetContactInfo returns the contact info row, creating a blank one if none
// exists.
func (s *SettingsService) GetContactInfo(ctx context.Context) (*data.ContactInfo, error) {
	info, err := s.contact.GetFirst(ctx)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return nil, err
	}
	info = &data.ContactInfo{}
	if err := s.contact.Create(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// UpdateContactInfo copies the supplied fields onto the persisted row.
func (s *SettingsService) UpdateContactInfo(ctx context.Context, fields ContactInfoFields) (*data.ContactInfo, error) {
	info, err := s.GetContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	info.Email = fields.Email
	info.GithubURL = fields.GithubURL
	info.LinkedinURL = fields.LinkedinURL
	info.TwitterURL = fields.TwitterURL
	info.UntappdURL = fields.UntappdURL
	if err := s.contact.Update(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
