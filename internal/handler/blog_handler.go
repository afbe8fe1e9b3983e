package handler

import (
	"errors"
	"net/http"

	"go-blog-app/internal/data"
	"go-blog-app/internal/logger"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
	"go-blog-app/internal/view"

	"github.com/go-chi/chi/v5"
)

// BlogHandler serves the public blog pages.
type BlogHandler struct {
	blog *service.BlogService
	view *view.View
	log  logger.Logger
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blog *service.BlogService, v *view.View, log logger.Logger) *BlogHandler {
	return &BlogHandler{blog: blog, view: v, log: log}
}

// Index renders the public post listing: published posts only, newest first,
// each with an excerpt.
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	previews, err := h.blog.PublishedPosts(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load blog posts", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Posts":    previews,
		"UserInfo": middleware.GetUserInfo(r.Context()),
	}
	if err := h.view.Render(w, r, "blog_index.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render blog index", Code: http.StatusInternalServerError}
	}
	return nil
}

// Show renders a single post. The trailing .md extension is optional in the
// URL; a missing row or missing backing file is a 404.
func (h *BlogHandler) Show(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	filename := chi.URLParam(r, "filename")

	post, raw, err := h.blog.PostWithContent(r.Context(), filename)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return &middleware.AppError{Error: err, Message: "Blog post not found", Code: http.StatusNotFound}
		}
		return &middleware.AppError{Error: err, Message: "Failed to load blog post", Code: http.StatusInternalServerError}
	}

	html, err := h.blog.RenderContent(raw)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render blog post", Code: http.StatusInternalServerError}
	}

	viewData := map[string]interface{}{
		"Post":     post,
		"Content":  html,
		"UserInfo": middleware.GetUserInfo(r.Context()),
	}
	if err := h.view.Render(w, r, "blog_show.html", viewData); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render blog post", Code: http.StatusInternalServerError}
	}
	return nil
}
