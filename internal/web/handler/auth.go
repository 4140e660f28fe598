package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/auth"
	"github.com/jtarrant/wanttogo/internal/web/middleware"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
	"github.com/jtarrant/wanttogo/internal/web/templates/pages"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUsername(r.Context()) != "" {
		// Already logged in
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	data := pages.LoginData{
		PageData: layout.PageData{
			Title:   "Login",
			Flash:   middleware.GetFlash(r.Context()),
			Message: r.URL.Query().Get("message"),
		},
	}

	renderPage(w, r, pages.Login(data), http.StatusOK)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "All fields are required!", username)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.renderLoginError(w, r, "Invalid username or password!", username)
			return
		}
		h.logger.Error("login failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session.Token)
	http.Redirect(w, r, "/home?message="+url.QueryEscape("Login Successful"), http.StatusSeeOther)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUsername(r.Context()) != "" {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	data := pages.RegisterData{
		PageData: layout.PageData{
			Title: "Register",
			Flash: middleware.GetFlash(r.Context()),
		},
	}

	renderPage(w, r, pages.Register(data), http.StatusOK)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderRegisterError(w, r, "All fields are required!", username)
		return
	}

	if err := h.authService.Register(r.Context(), username, password); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			h.renderRegisterError(w, r, "User already exists! Try a different username.", username)
			return
		}
		h.logger.Error("registration failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "success", "Registration successful. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	clearSessionCookie(w)
	middleware.SetFlash(w, "info", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, msg, username string) {
	data := pages.LoginData{
		PageData: layout.PageData{Title: "Login"},
		Error:    msg,
		Username: username,
	}
	renderPage(w, r, pages.Login(data), http.StatusBadRequest)
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, msg, username string) {
	data := pages.RegisterData{
		PageData: layout.PageData{Title: "Register"},
		Error:    msg,
		Username: username,
	}
	renderPage(w, r, pages.Register(data), http.StatusBadRequest)
}

// setSessionCookie sets the session cookie on the response
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie removes the session cookie
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// renderPage writes a rendered page component with the given status
func renderPage(w http.ResponseWriter, r *http.Request, page templ.Component, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
