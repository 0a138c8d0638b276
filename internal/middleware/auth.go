package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// RequireAdmin admits only sessions flagged by a successful admin login.
func RequireAdmin(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")

			if session.Values["is_admin"] != true {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireProsecutor admits the static prosecutor role and provisioned
// prosecutor accounts alike.
func RequireProsecutor(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")

			if session.Values["is_prosecutor"] != true && session.Values["role"] != "prosecutor" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
