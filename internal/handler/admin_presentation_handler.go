package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-blog-app/internal/data"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
)

// PresentationsIndex lists every presentation, title-ordered, with its
// conferences.
func (h *AdminHandler) PresentationsIndex(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	presentations, err := h.presentations.Presentations(r.Context())
	if err != nil {
		return serverError(err, "Failed to load presentations")
	}
	viewData := h.viewData(r, map[string]interface{}{"Presentations": presentations})
	if err := h.view.Render(w, r, "admin_presentations_index.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// PresentationsShow shows one presentation with its conferences.
func (h *AdminHandler) PresentationsShow(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid presentation id")
	}
	presentation, err := h.presentations.GetPresentation(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load presentation")
	}

	viewData := h.viewData(r, map[string]interface{}{"Presentation": presentation})
	if err := h.view.Render(w, r, "admin_presentations_show.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// PresentationsNew renders the creation form with the available slide decks
// and the conferences that can be linked.
func (h *AdminHandler) PresentationsNew(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	conferences, err := h.presentations.Conferences(r.Context())
	if err != nil {
		return serverError(err, "Failed to load conferences")
	}
	viewData := h.viewData(r, map[string]interface{}{
		"Presentation":   &data.Presentation{},
		"AvailableFiles": h.files.AvailablePresentationFiles(),
		"Conferences":    conferences,
	})
	if err := h.view.Render(w, r, "admin_presentations_new.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// PresentationsCreate creates a presentation and links the selected
// conferences. Ids that resolve to no conference are silently dropped.
func (h *AdminHandler) PresentationsCreate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}

	presentation, err := h.presentations.CreatePresentation(r.Context(), presentationFields(r), formConferenceIDs(r))
	if err != nil {
		return serverError(err, "Failed to create presentation")
	}

	h.flash(r, "Presentation created successfully.")
	http.Redirect(w, r, adminPresentationPath(presentation.ID), http.StatusFound)
	return nil
}

// PresentationsEdit renders the edit form.
func (h *AdminHandler) PresentationsEdit(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid presentation id")
	}
	presentation, err := h.presentations.GetPresentation(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load presentation")
	}
	conferences, err := h.presentations.Conferences(r.Context())
	if err != nil {
		return serverError(err, "Failed to load conferences")
	}

	viewData := h.viewData(r, map[string]interface{}{
		"Presentation":   presentation,
		"AvailableFiles": h.files.AvailablePresentationFiles(),
		"Conferences":    conferences,
	})
	if err := h.view.Render(w, r, "admin_presentations_edit.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// PresentationsUpdate copies the submitted fields onto the persisted
// presentation and replaces its conference list; submitting no conferences
// clears every association.
func (h *AdminHandler) PresentationsUpdate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid presentation id")
	}
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}

	if _, err := h.presentations.UpdatePresentation(r.Context(), id, presentationFields(r), formConferenceIDs(r)); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to update presentation")
	}

	h.flash(r, "Presentation updated successfully.")
	http.Redirect(w, r, adminPresentationPath(id), http.StatusFound)
	return nil
}

// PresentationsDelete removes a presentation and its conference links.
func (h *AdminHandler) PresentationsDelete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid presentation id")
	}
	if err := h.presentations.DeletePresentation(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to delete presentation")
	}

	h.flash(r, "Presentation deleted successfully.")
	http.Redirect(w, r, "/admin/presentations", http.StatusFound)
	return nil
}

func presentationFields(r *http.Request) service.PresentationFields {
	return service.PresentationFields{
		Title:        r.PostFormValue("title"),
		AbstractText: r.PostFormValue("abstract"),
		SlidesURL:    r.PostFormValue("slides_url"),
		GithubURL:    r.PostFormValue("github_url"),
	}
}

// formConferenceIDs parses the multi-select conference_ids field. Values that
// are not integers are ignored.
func formConferenceIDs(r *http.Request) []int64 {
	var ids []int64
	for _, raw := range r.PostForm["conference_ids"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
