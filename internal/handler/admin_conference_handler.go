package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-blog-app/internal/data"
	"go-blog-app/internal/middleware"
)

// ConferencesIndex lists every conference, title-ordered with year tiebreak.
func (h *AdminHandler) ConferencesIndex(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	conferences, err := h.presentations.Conferences(r.Context())
	if err != nil {
		return serverError(err, "Failed to load conferences")
	}
	viewData := h.viewData(r, map[string]interface{}{"Conferences": conferences})
	if err := h.view.Render(w, r, "admin_conferences_index.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ConferencesShow shows one conference with the presentations given there.
func (h *AdminHandler) ConferencesShow(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid conference id")
	}
	conference, err := h.presentations.GetConference(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load conference")
	}
	presentations, err := h.presentations.ConferencePresentations(r.Context(), id)
	if err != nil {
		return serverError(err, "Failed to load conference presentations")
	}

	viewData := h.viewData(r, map[string]interface{}{
		"Conference":    conference,
		"Presentations": presentations,
	})
	if err := h.view.Render(w, r, "admin_conferences_show.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ConferencesNew renders the creation form.
func (h *AdminHandler) ConferencesNew(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	viewData := h.viewData(r, map[string]interface{}{"Conference": &data.Conference{}})
	if err := h.view.Render(w, r, "admin_conferences_new.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ConferencesCreate creates a conference from the submitted form.
func (h *AdminHandler) ConferencesCreate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	year, err := strconv.Atoi(r.PostFormValue("year"))
	if err != nil {
		return badRequest(err, "Invalid conference year")
	}

	conference, err := h.presentations.CreateConference(r.Context(), r.PostFormValue("title"), year, r.PostFormValue("link"))
	if err != nil {
		return serverError(err, "Failed to create conference")
	}

	h.flash(r, "Conference created successfully.")
	http.Redirect(w, r, adminConferencePath(conference.ID), http.StatusFound)
	return nil
}

// ConferencesEdit renders the edit form.
func (h *AdminHandler) ConferencesEdit(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid conference id")
	}
	conference, err := h.presentations.GetConference(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load conference")
	}

	viewData := h.viewData(r, map[string]interface{}{"Conference": conference})
	if err := h.view.Render(w, r, "admin_conferences_edit.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ConferencesUpdate copies the submitted fields onto the persisted conference.
func (h *AdminHandler) ConferencesUpdate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid conference id")
	}
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	year, err := strconv.Atoi(r.PostFormValue("year"))
	if err != nil {
		return badRequest(err, "Invalid conference year")
	}

	if _, err := h.presentations.UpdateConference(r.Context(), id, r.PostFormValue("title"), year, r.PostFormValue("link")); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to update conference")
	}

	h.flash(r, "Conference updated successfully.")
	http.Redirect(w, r, adminConferencePath(id), http.StatusFound)
	return nil
}

// ConferencesDelete removes a conference; its presentation links go with it.
func (h *AdminHandler) ConferencesDelete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid conference id")
	}
	if err := h.presentations.DeleteConference(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to delete conference")
	}

	h.flash(r, "Conference deleted successfully.")
	http.Redirect(w, r, "/admin/conferences", http.StatusFound)
	return nil
}
