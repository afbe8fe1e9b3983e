package handler

import (
	"errors"
	"net/http"

	"go-blog-app/internal/data"
	"go-blog-app/internal/middleware"
)

// BlogPostsIndex lists every post, newest first.
func (h *AdminHandler) BlogPostsIndex(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	posts, err := h.blog.AllPosts(r.Context())
	if err != nil {
		return serverError(err, "Failed to load blog posts")
	}
	viewData := h.viewData(r, map[string]interface{}{"Posts": posts})
	if err := h.view.Render(w, r, "admin_blog_index.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BlogPostsShow shows one post. Content is rendered only when the post's
// filename is among the files actually present on disk.
func (h *AdminHandler) BlogPostsShow(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid blog post id")
	}
	post, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load blog post")
	}

	viewData := h.viewData(r, map[string]interface{}{
		"Post":    post,
		"Content": h.blog.AdminContent(post),
	})
	if err := h.view.Render(w, r, "admin_blog_show.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BlogPostsNew renders the creation form with the markdown files a post can
// reference.
func (h *AdminHandler) BlogPostsNew(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	viewData := h.viewData(r, map[string]interface{}{
		"Post":           &data.BlogPost{},
		"AvailableFiles": h.blog.AvailableFiles(),
	})
	if err := h.view.Render(w, r, "admin_blog_new.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BlogPostsCreate creates a post from the submitted form.
func (h *AdminHandler) BlogPostsCreate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	publishedAt, err := formDate(r.PostFormValue("published_at"))
	if err != nil {
		return badRequest(err, "Invalid publication date")
	}

	post, err := h.blog.CreatePost(r.Context(), r.PostFormValue("title"), r.PostFormValue("filename"), publishedAt)
	if err != nil {
		return serverError(err, "Failed to create blog post")
	}

	h.flash(r, "Blog post created successfully.")
	http.Redirect(w, r, adminBlogPostPath(post.ID), http.StatusFound)
	return nil
}

// BlogPostsEdit renders the edit form.
func (h *AdminHandler) BlogPostsEdit(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid blog post id")
	}
	post, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to load blog post")
	}

	viewData := h.viewData(r, map[string]interface{}{
		"Post":           post,
		"AvailableFiles": h.blog.AvailableFiles(),
	})
	if err := h.view.Render(w, r, "admin_blog_edit.html", viewData); err != nil {
		return renderError(err)
	}
	return nil
}

// BlogPostsUpdate copies the submitted fields onto the persisted post.
func (h *AdminHandler) BlogPostsUpdate(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid blog post id")
	}
	if err := r.ParseForm(); err != nil {
		return badRequest(err, "Bad request")
	}
	publishedAt, err := formDate(r.PostFormValue("published_at"))
	if err != nil {
		return badRequest(err, "Invalid publication date")
	}

	if _, err := h.blog.UpdatePost(r.Context(), id, r.PostFormValue("title"), r.PostFormValue("filename"), publishedAt); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to update blog post")
	}

	h.flash(r, "Blog post updated successfully.")
	http.Redirect(w, r, adminBlogPostPath(id), http.StatusFound)
	return nil
}

// BlogPostsDelete removes a post.
func (h *AdminHandler) BlogPostsDelete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := urlID(r)
	if err != nil {
		return badRequest(err, "Invalid blog post id")
	}
	if err := h.blog.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return notFound(err)
		}
		return serverError(err, "Failed to delete blog post")
	}

	h.flash(r, "Blog post deleted successfully.")
	http.Redirect(w, r, "/admin/blog_posts", http.StatusFound)
	return nil
}
