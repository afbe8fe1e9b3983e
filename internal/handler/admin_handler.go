package handler

import (
	"net/http"
	"strconv"

	"go-blog-app/internal/content"
	"go-blog-app/internal/data"
	"go-blog-app/internal/logger"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
	"go-blog-app/internal/session"
	"go-blog-app/internal/view"

	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the authenticated admin area: the dashboard and the
// CRUD screens for blog posts, presentations, conferences, bio, and contact
// info. Mutations leave a flash notice in the session for the next page.
type AdminHandler struct {
	blog          *service.BlogService
	presentations *service.PresentationService
	settings      *service.SettingsService
	files         *content.Store
	sessions      session.Manager
	view          *view.View
	log           logger.Logger
}

// NewAdminHandler creates a new AdminHandler with the given dependencies.
func NewAdminHandler(blog *service.BlogService, presentations *service.PresentationService,
	settings *service.SettingsService, files *content.Store, sm session.Manager, v *view.View, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		blog:          blog,
		presentations: presentations,
		settings:      settings,
		files:         files,
		sessions:      sm,
		view:          v,
		log:           log,
	}
}

// Dashboard shows entity counts for the three content types.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	blogPostsCount, err := h.blog.CountPosts(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load dashboard", Code: http.StatusInternalServerError}
	}
	presentationsCount, err := h.presentations.CountPresentations(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load dashboard", Code: http.StatusInternalServerError}
	}
	conferencesCount, err := h.presentations.CountConferences(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load dashboard", Code: http.StatusInternalServerError}
	}

	data := h.viewData(r, map[string]interface{}{
		"BlogPostsCount":     blogPostsCount,
		"PresentationsCount": presentationsCount,
		"ConferencesCount":   conferencesCount,
	})
	if err := h.view.Render(w, r, "admin_dashboard.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render dashboard", Code: http.StatusInternalServerError}
	}
	return nil
}

// viewData decorates page data with the signed-in user and any pending flash
// notice.
func (h *AdminHandler) viewData(r *http.Request, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = make(map[string]interface{})
	}
	data["UserInfo"] = middleware.GetUserInfo(r.Context())
	if notice := h.sessions.PopString(r.Context(), "notice"); notice != "" {
		data["Notice"] = notice
	}
	return data
}

// flash stores a notice to show on the next admin page.
func (h *AdminHandler) flash(r *http.Request, notice string) {
	h.sessions.Put(r.Context(), "notice", notice)
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// formDate parses an optional yyyy-mm-dd form value into a nullable date.
func formDate(value string) (data.TextDate, error) {
	var d data.TextDate
	if value == "" {
		return d, nil
	}
	err := d.Scan(value)
	return d, err
}

func adminBlogPostPath(id int64) string {
	return "/admin/blog_posts/" + strconv.FormatInt(id, 10)
}

func adminPresentationPath(id int64) string {
	return "/admin/presentations/" + strconv.FormatInt(id, 10)
}

func adminConferencePath(id int64) string {
	return "/admin/conferences/" + strconv.FormatInt(id, 10)
}

// renderError is the shared shorthand for template failures.
func renderError(err error) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: "Failed to render page", Code: http.StatusInternalServerError}
}

// notFound is the shared 404 response for missing admin entities.
func notFound(err error) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: "Not found", Code: http.StatusNotFound}
}

// serverError wraps unexpected failures from the service layer.
func serverError(err error, msg string) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: msg, Code: http.StatusInternalServerError}
}

// badRequest wraps malformed request input.
func badRequest(err error, msg string) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: msg, Code: http.StatusBadRequest}
}
