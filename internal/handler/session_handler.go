package handler

import (
	"errors"
	"net/http"

	"go-blog-app/internal/logger"
	"go-blog-app/internal/middleware"
	"go-blog-app/internal/service"
	"go-blog-app/internal/session"
	"go-blog-app/internal/view"
)

// SessionHandler serves the login form and handles credential submission and
// logout.
type SessionHandler struct {
	auth     *service.AuthService
	sessions session.Manager
	view     *view.View
	log      logger.Logger
}

// NewSessionHandler creates a new SessionHandler with the given dependencies.
func NewSessionHandler(auth *service.AuthService, sm session.Manager, v *view.View, log logger.Logger) *SessionHandler {
	return &SessionHandler{auth: auth, sessions: sm, view: v, log: log}
}

// New renders the login form. An already-authenticated visitor is sent
// straight to the admin dashboard. The ?error=true flag shows the generic
// invalid-credentials message.
func (h *SessionHandler) New(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if middleware.GetUserInfo(r.Context()).Authenticated() {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return nil
	}

	data := map[string]interface{}{}
	if r.URL.Query().Get("error") != "" {
		data["Error"] = "Invalid email address or password"
	}
	if err := h.view.Render(w, r, "login.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render login page", Code: http.StatusInternalServerError}
	}
	return nil
}

// Create verifies the submitted credentials. Failure redirects back to the
// form with the error flag; the response is identical for an unknown address
// and a wrong password. Success binds the new session as the account's only
// live one and redirects to the admin dashboard.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return &middleware.AppError{Error: err, Message: "Bad request", Code: http.StatusBadRequest}
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.auth.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Redirect(w, r, "/session/new?error=true", http.StatusFound)
			return nil
		}
		return &middleware.AppError{Error: err, Message: "Authentication failed", Code: http.StatusInternalServerError}
	}

	// A fresh token on login prevents session fixation; binding it to the
	// user invalidates any session issued by an earlier login.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to establish session", Code: http.StatusInternalServerError}
	}
	h.sessions.Put(r.Context(), middleware.PrincipalSessionKey, user.EmailAddress)
	if err := h.auth.BindSession(r.Context(), user.ID, h.sessions.Token(r.Context())); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to establish session", Code: http.StatusInternalServerError}
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
	return nil
}

// Destroy logs the visitor out and returns them to the login form.
func (h *SessionHandler) Destroy(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to end session", Code: http.StatusInternalServerError}
	}
	http.Redirect(w, r, "/session/new", http.StatusFound)
	return nil
}
