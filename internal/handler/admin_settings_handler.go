package handler

import (
	"net/http"

	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
)

// BioShow shows the bio row, creating a blank one on first access.
func (h *AdminHandler) BioShow(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	bio, err := h.settings.GetBio(r.Context())
	if err != nil {
		return serverError(err, "Failed to load bio")
	}
	viewData := h.viewData(r, map[string]interface{}{"Bio": bio})
	if err := h.view.Render(w, r, "admin_bio_show.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BioEdit renders the bio edit form.
func (h *AdminHandler) BioEdit(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	bio, err := h.settings.GetBio(r.Context())
	if err != nil {
		return serverError(err, "Failed to load bio")
	}
	viewData := h.viewData(r, map[string]interface{}{"Bio": bio})
	if err := h.view.Render(w, r, "admin_bio_edit.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BioUpdate copies the submitted fields onto the persisted bio row.
func (h *AdminHandler) BioUpdate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	fields := service.BioFields{
		Name:     r.PostFormValue("name"),
		BriefBio: r.PostFormValue("brief_bio"),
		Content:  r.PostFormValue("content"),
	}
	if _, err := h.settings.UpdateBio(r.Context(), fields); err != nil {
		return serverError(err, "Failed to update bio")
	}

	h.flash(r, "Bio updated successfully.")
	http.Redirect(w, r, "/admin/bio", http.StatusFound)
	return nil
}

// ContactInfoShow shows the contact info row, creating a blank one on first
// access.
func (h *AdminHandler) ContactInfoShow(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	info, err := h.settings.GetContactInfo(r.Context())
	if err != nil {
		return serverError(err, "Failed to load contact info")
	}
	viewData := h.viewData(r, map[string]interface{}{"ContactInfo": info})
	if err := h.view.Render(w, r, "admin_contact_show.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ContactInfoEdit renders the contact info edit form.
func (h *AdminHandler) ContactInfoEdit(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	info, err := h.settings.GetContactInfo(r.Context())
	if err != nil {
		return serverError(err, "Failed to load contact info")
	}
	viewData := h.viewData(r, map[string]interface{}{"ContactInfo": info})
	if err := h.view.Render(w, r, "admin_contact_edit.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// ContactInfoUpdate copies the submitted fields onto the persisted row.
func (h *AdminHandler) ContactInfoUpdate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	fields := service.ContactInfoFields{
		Email:       r.PostFormValue("email"),
		GithubURL:   r.PostFormValue("github_url"),
		LinkedinURL: r.PostFormValue("linkedin_url"),
		TwitterURL:  r.PostFormValue("twitter_url"),
		UntappdURL:  r.PostFormValue("untapped_url"),
	}
	if _, err := h.settings.UpdateContactInfo(r.Context(), fields); err != nil {
		return serverError(err, "Failed to update contact info")
	}

	h.flash(r, "Contact info updated successfully.")
	http.Redirect(w, r, "/admin/contact_info", http.StatusFound)
	return nil
}
