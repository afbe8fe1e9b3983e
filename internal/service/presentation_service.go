package service

import (
	"context"

	"go-blog-app/internal/data"
)

// PresentationRepository defines the interface for database operations on
// presentations and their conference association.
type PresentationRepository interface {
	Create(ctx context.Context, p *data.Presentation) error
	GetByID(ctx context.Context, id int64) (*data.Presentation, error)
	ListAll(ctx context.Context) ([]*data.Presentation, error)
	Update(ctx context.Context, p *data.Presentation) error
	SetConferences(ctx context.Context, presentationID int64, conferenceIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ConferenceRepository defines the interface for database operations on conferences.
type ConferenceRepository interface {
	Create(ctx context.Context, c *data.Conference) error
	GetByID(ctx context.Context, id int64) (*data.Conference, error)
	ListAll(ctx context.Context) ([]*data.Conference, error)
	PresentationsFor(ctx context.Context, conferenceID int64) ([]*data.Presentation, error)
	Update(ctx context.Context, c *data.Conference) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// PresentationFields carries the caller-supplied attributes of a
// presentation, separate from identity and association state.
type PresentationFields struct {
	Title        string
	AbstractText string
	SlidesURL    string
	GithubURL    string
}

// PresentationService provides business logic for presentations, conferences,
// and the association between them.
type PresentationService struct {
	presentations PresentationRepository
	conferences   ConferenceRepository
}

// NewPresentationService creates a new PresentationService.
func NewPresentationService(presentations PresentationRepository, conferences ConferenceRepository) *PresentationService {
	return &PresentationService{presentations: presentations, conferences: conferences}
}

// Presentations returns every presentation ordered case-insensitively by
// title, with conferences attached. Used by both the public showcase and the
// admin listing.
func (s *PresentationService) Presentations(ctx context.Context) ([]*data.Presentation, error) {
	return s.presentations.ListAll(ctx)
}

// GetPresentation retrieves a single presentation with its conferences.
func (s *PresentationService) GetPresentation(ctx context.Context, id int64) (*data.Presentation, error) {
	return s.presentations.GetByID(ctx, id)
}

// CreatePresentation creates a presentation and sets its conference list.
func (s *PresentationService) CreatePresentation(ctx context.Context, fields PresentationFields, conferenceIDs []int64) (*data.Presentation, error) {
	p := &data.Presentation{
		Title:        fields.Title,
		AbstractText: fields.AbstractText,
		SlidesURL:    fields.SlidesURL,
		GithubURL:    fields.GithubURL,
	}
	if err := s.presentations.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.presentations.SetConferences(ctx, p.ID, conferenceIDs); err != nil {
		return nil, err
	}
	return s.presentations.GetByID(ctx, p.ID)
}

// UpdatePresentation copies the supplied fields onto the persisted
// presentation and replaces its conference list. An empty or nil id list
// removes every association.
func (s *PresentationService) UpdatePresentation(ctx context.Context, id int64, fields PresentationFields, conferenceIDs []int64) (*data.Presentation, error) {
	p, err := s.presentations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title = fields.Title
	p.AbstractText = fields.AbstractText
	p.SlidesURL = fields.SlidesURL
	p.GithubURL = fields.GithubURL
	if err := s.presentations.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := s.presentations.SetConferences(ctx, id, conferenceIDs); err != nil {
		return nil, err
	}
	return s.presentations.GetByID(ctx, id)
}

// DeletePresentation removes a presentation and its conference links.
func (s *PresentationService) DeletePresentation(ctx context.Context, id int64) error {
	return s.presentations.Delete(ctx, id)
}

// CountPresentations returns the total number of presentations.
func (s *PresentationService) CountPresentations(ctx context.Context) (int64, error) {
	return s.presentations.Count(ctx)
}

// Conferences returns every conference, title-ordered with year tiebreak.
func (s *PresentationService) Conferences(ctx context.Context) ([]*data.Conference, error) {
	return s.conferences.ListAll(ctx)
}

// GetConference retrieves a single conference by id.
func (s *PresentationService) GetConference(ctx context.Context, id int64) (*data.Conference, error) {
	return s.conferences.GetByID(ctx, id)
}

// ConferencePresentations returns the presentations given at a conference.
func (s *PresentationService) ConferencePresentations(ctx context.Context, conferenceID int64) ([]*data.Presentation, error) {
	return s.conferences.PresentationsFor(ctx, conferenceID)
}

// CreateConference creates a conference.
func (s *PresentationService) CreateConference(ctx context.Context, title string, year int, link string) (*data.Conference, error) {
	c := &data.Conference{Title: title, Year: year, Link: link}
	if err := s.conferences.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateConference copies the supplied fields onto the persisted conference.
func (s *PresentationService) UpdateConference(ctx context.Context, id int64, title string, year int, link string) (*data.Conference, error) {
	c, err := s.conferences.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Title = title
	c.Year = year
	c.Link = link
	if err := s.conferences.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteConference removes a conference; its join rows go with it.
func (s *PresentationService) DeleteConference(ctx context.Context, id int64) error {
	return s.conferences.Delete(ctx, id)
}

// CountConferences returns the total number of conferences.
func (s *PresentationService) CountConferences(ctx context.Context) (int64, error) {
	return s.conferences.Count(ctx)
}
