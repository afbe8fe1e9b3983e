package middleware

import (
	"context"
	"net/http"

	"go-blog-app/internal/session"

	"github.com/casbin/casbin/v2"
)

// The session key holding the authenticated principal's email address.
const PrincipalSessionKey = "user_email"

// SessionVerifier checks that a session token is still the live session for
// a principal. A principal whose token has been superseded by a newer login
// is treated as anonymous.
type SessionVerifier interface {
	IsCurrentSession(ctx context.Context, email, token string) (bool, error)
}

// Authorizer creates a new middleware for authorization. It resolves the
// request's subject from session data ("admin" for a principal with a live
// session, "anonymous" otherwise) and enforces the Casbin path/method policy.
// Anonymous requests denied access are sent to the login page.
func Authorizer(e *casbin.Enforcer, sm session.Manager, verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := "anonymous"
			userInfo := &UserInfo{}

			if email := sm.GetString(r.Context(), PrincipalSessionKey); email != "" {
				live, err := verifier.IsCurrentSession(r.Context(), email, sm.Token(r.Context()))
				if err != nil {
					http.Error(w, "Authorization error", http.StatusInternalServerError)
					return
				}
				if live {
					subject = "admin"
					userInfo.Email = email
				} else {
					// A newer login elsewhere invalidated this session.
					sm.Remove(r.Context(), PrincipalSessionKey)
				}
			}

			r = r.WithContext(SetUserInfo(r.Context(), userInfo))

			allowed, err := e.Enforce(subject, r.URL.Path, r.Method)
			if err != nil {
				http.Error(w, "Authorization error", http.StatusInternalServerError)
				return
			}

			if !allowed {
				if subject == "anonymous" {
					http.Redirect(w, r, "/session/new", http.StatusFound)
					return
				}
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
