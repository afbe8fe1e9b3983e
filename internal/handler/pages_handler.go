package handler

import (
	"net/http"

	"go-blog-app/internal/logger"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
	"go-blog-app/internal/view"
)

// PagesHandler serves the public presentations showcase and the about page.
type PagesHandler struct {
	presentations *service.PresentationService
	settings      *service.SettingsService
	view          *view.View
	log           logger.Logger
}

// NewPagesHandler creates a new PagesHandler with the given dependencies.
func NewPagesHandler(presentations *service.PresentationService, settings *service.SettingsService, v *view.View, log logger.Logger) *PagesHandler {
	return &PagesHandler{presentations: presentations, settings: settings, view: v, log: log}
}

// Presentations renders the public presentations showcase, title-ordered,
// with each presentation's conferences.
func (h *PagesHandler) Presentations(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	presentations, err := h.presentations.Presentations(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load presentations", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Presentations": presentations,
		"UserInfo":      middleware.GetUserInfo(r.Context()),
	}
	if err := h.view.Render(w, r, "presentations_index.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render presentations", Code: http.StatusInternalServerError}
	}
	return nil
}

// About renders the about page from the bio and contact info rows, creating
// blank rows on first access.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	bio, err := h.settings.GetBio(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load bio", Code: http.StatusInternalServerError}
	}
	contactInfo, err := h.settings.GetContactInfo(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load contact info", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Bio":         bio,
		"ContactInfo": contactInfo,
		"UserInfo":    middleware.GetUserInfo(r.Context()),
	}
	if err := h.view.Render(w, r, "about.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render about page", Code: http.StatusInternalServerError}
	}
	return nil
}
