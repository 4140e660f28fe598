package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jtarrant/wanttogo/internal/services/auth"
)

type contextKey string

const usernameContextKey contextKey = "username"

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// LoginRedirectMessage is the feedback shown when an anonymous visitor is
// sent to the login page by the session gate.
const LoginRedirectMessage = "Please log in first"

// GetUsername retrieves the authenticated username from the request context.
// Returns the empty string if no user is authenticated.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameContextKey).(string)
	return username
}

// Auth returns the session gate for browser pages: requests with a live
// session proceed with the username on the context, anything else is
// redirected to the login page with a fixed reason.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := usernameFromSession(r, authService)
			if username == "" {
				target := "/login?message=" + url.QueryEscape(LoginRedirectMessage)
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), usernameContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser is the session gate for state-changing requests: instead of
// redirecting it answers 401, so a failed form post never silently becomes
// a login page.
func RequireUser(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := usernameFromSession(r, authService)
			if username == "" {
				http.Error(w, "Unauthorized: Please log in first.", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), usernameContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attempts authentication but doesn't require it.
// Sets the username in context if authenticated, leaves it empty otherwise.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := usernameFromSession(r, authService)
			ctx := context.WithValue(r.Context(), usernameContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func usernameFromSession(r *http.Request, authService *auth.Service) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	username, err := authService.Username(cookie.Value)
	if err != nil {
		return ""
	}

	return username
}
