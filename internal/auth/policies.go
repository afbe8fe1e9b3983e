package auth

import (
	"fmt"

	"go-blog-app/internal/logger"

	"github.com/casbin/casbin/v2"
)

// SeedDefaultPolicies ensures the application has its baseline authorization
// rules. It checks if each policy exists before adding it, making the
// operation idempotent and safe to run on every application start.
//
// There are only two subjects: "anonymous" covers the public site, the static
// content, and the session endpoints; "admin" (any authenticated account)
// additionally gets the whole admin area. Admin inherits anonymous.
func SeedDefaultPolicies(e casbin.IEnforcer, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	policies := [][]string{
		// Public pages.
		{"anonymous", "/", "GET"},
		{"anonymous", "/blog", "GET"},
		{"anonymous", "/blog/*", "GET"},
		{"anonymous", "/presentations", "GET"},
		{"anonymous", "/about", "GET"},
		{"anonymous", "/up", "GET"},

		// Login, logout.
		{"anonymous", "/session/new", "GET"},
		{"anonymous", "/session", "POST"},
		{"anonymous", "/session/delete", "POST"},
		{"anonymous", "/logout", "POST"},

		// Static assets and the content directories are served without
		// authentication.
		{"anonymous", "/static/*", "GET"},
		{"anonymous", "/blog_posts/*", "GET"},
		{"anonymous", "/presentations/*", "GET"},

		// The admin area.
		{"admin", "/admin", "GET"},
		{"admin", "/admin/*", "GET"},
		{"admin", "/admin/*", "POST"},
	}
	for _, p := range policies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	// Granting the 'admin' role all permissions of the 'anonymous' role.
	if has, _ := e.HasRoleForUser("admin", "anonymous"); !has {
		if _, err := e.AddRoleForUser("admin", "anonymous"); err != nil {
			log.Error(err, "Failed to add role 'admin' -> 'anonymous'")
		}
	}
	log.Info("Policy seeding complete.")
}
