package handler

import (
	"io/fs"
	"net/http"
	"time"

	appmw "go-blog-app/internal/middleware"
	"go-blog-app/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// StaticDirs names the on-disk content directories served without
// authentication alongside the embedded static assets.
type StaticDirs struct {
	BlogPosts     string
	Presentations string
}

// NewRouter creates and configures a new chi router.
func NewRouter(
	blogHandler *BlogHandler,
	pagesHandler *PagesHandler,
	sessionHandler *SessionHandler,
	adminHandler *AdminHandler,
	authzMiddleware func(http.Handler) http.Handler,
	errorMiddleware func(appmw.AppHandler) http.Handler,
	requestLogger func(http.Handler) http.Handler,
	sessionManager session.Manager,
	staticFS fs.FS,
	dirs StaticDirs,
) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(authzMiddleware)

	// Liveness probe.
	r.Get("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	r.Method(http.MethodGet, "/", errorMiddleware(blogHandler.Index))
	r.Method(http.MethodGet, "/blog", errorMiddleware(blogHandler.Index))
	r.Method(http.MethodGet, "/blog/{filename}", errorMiddleware(blogHandler.Show))
	r.Method(http.MethodGet, "/presentations", errorMiddleware(pagesHandler.Presentations))
	r.Method(http.MethodGet, "/about", errorMiddleware(pagesHandler.About))

	// Session routes. Credential submission is rate limited by client IP.
	r.Method(http.MethodGet, "/session/new", errorMiddleware(sessionHandler.New))
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, 1*time.Minute))
		r.Method(http.MethodPost, "/session", errorMiddleware(sessionHandler.Create))
	})
	r.Method(http.MethodPost, "/session/delete", errorMiddleware(sessionHandler.Destroy))
	r.Method(http.MethodPost, "/logout", errorMiddleware(sessionHandler.Destroy))

	// Admin area. The authorizer only lets the "admin" subject through here.
	r.Route("/admin", func(r chi.Router) {
		r.Method(http.MethodGet, "/", errorMiddleware(adminHandler.Dashboard))

		r.Method(http.MethodGet, "/blog_posts", errorMiddleware(adminHandler.BlogPostsIndex))
		r.Method(http.MethodGet, "/blog_posts/new", errorMiddleware(adminHandler.BlogPostsNew))
		r.Method(http.MethodPost, "/blog_posts", errorMiddleware(adminHandler.BlogPostsCreate))
		r.Method(http.MethodGet, "/blog_posts/{id}", errorMiddleware(adminHandler.BlogPostsShow))
		r.Method(http.MethodGet, "/blog_posts/{id}/edit", errorMiddleware(adminHandler.BlogPostsEdit))
		r.Method(http.MethodPost, "/blog_posts/{id}", errorMiddleware(adminHandler.BlogPostsUpdate))
		r.Method(http.MethodPost, "/blog_posts/{id}/delete", errorMiddleware(adminHandler.BlogPostsDelete))

		r.Method(http.MethodGet, "/presentations", errorMiddleware(adminHandler.PresentationsIndex))
		r.Method(http.MethodGet, "/presentations/new", errorMiddleware(adminHandler.PresentationsNew))
		r.Method(http.MethodPost, "/presentations", errorMiddleware(adminHandler.PresentationsCreate))
		r.Method(http.MethodGet, "/presentations/{id}", errorMiddleware(adminHandler.PresentationsShow))
		r.Method(http.MethodGet, "/presentations/{id}/edit", errorMiddleware(adminHandler.PresentationsEdit))
		r.Method(http.MethodPost, "/presentations/{id}", errorMiddleware(adminHandler.PresentationsUpdate))
		r.Method(http.MethodPost, "/presentations/{id}/delete", errorMiddleware(adminHandler.PresentationsDelete))

		r.Method(http.MethodGet, "/conferences", errorMiddleware(adminHandler.ConferencesIndex))
		r.Method(http.MethodGet, "/conferences/new", errorMiddleware(adminHandler.ConferencesNew))
		r.Method(http.MethodPost, "/conferences", errorMiddleware(adminHandler.ConferencesCreate))
		r.Method(http.MethodGet, "/conferences/{id}", errorMiddleware(adminHandler.ConferencesShow))
		r.Method(http.MethodGet, "/conferences/{id}/edit", errorMiddleware(adminHandler.ConferencesEdit))
		r.Method(http.MethodPost, "/conferences/{id}", errorMiddleware(adminHandler.ConferencesUpdate))
		r.Method(http.MethodPost, "/conferences/{id}/delete", errorMiddleware(adminHandler.ConferencesDelete))

		r.Method(http.MethodGet, "/bio", errorMiddleware(adminHandler.BioShow))
		r.Method(http.MethodGet, "/bio/edit", errorMiddleware(adminHandler.BioEdit))
		r.Method(http.MethodPost, "/bio", errorMiddleware(adminHandler.BioUpdate))

		r.Method(http.MethodGet, "/contact_info", errorMiddleware(adminHandler.ContactInfoShow))
		r.Method(http.MethodGet, "/contact_info/edit", errorMiddleware(adminHandler.ContactInfoEdit))
		r.Method(http.MethodPost, "/contact_info", errorMiddleware(adminHandler.ContactInfoUpdate))
	})

	// Static assets and the raw content files, served without authentication.
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
	r.Handle("/blog_posts/*", http.StripPrefix("/blog_posts/", http.FileServer(http.Dir(dirs.BlogPosts))))
	r.Handle("/presentations/*", http.StripPrefix("/presentations/", http.FileServer(http.Dir(dirs.Presentations))))

	return r
}
