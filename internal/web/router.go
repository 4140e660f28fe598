package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/auth"
	"github.com/jtarrant/wanttogo/internal/services/wantlist"
	"github.com/jtarrant/wanttogo/internal/web/handler"
	"github.com/jtarrant/wanttogo/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	WantListService *wantlist.Service
	StaticDir       string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	requireUserMiddleware := middleware.RequireUser(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Logger)
	wantListHandler := handler.NewWantListHandler(cfg.WantListService, cfg.Logger)
	destinationHandler := handler.NewDestinationHandler(cfg.WantListService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth so logged-in visitors are bounced to home)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/registration", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected pages: session gate redirects anonymous visitors to /login
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/home", homeHandler.Home).Methods(http.MethodGet)

	// Category and destination pages come from the catalog table
	for _, cat := range model.Categories {
		protected.HandleFunc("/"+string(cat), destinationHandler.Category(cat)).Methods(http.MethodGet)
	}
	for _, dest := range model.Catalog {
		protected.HandleFunc(dest.Path, destinationHandler.Destination(dest)).Methods(http.MethodGet)
	}

	// Want-to-go list: answers 401 rather than redirecting, so an
	// unauthenticated add or fetch fails loudly instead of becoming a
	// login page mid-action
	list := r.NewRoute().Subrouter()
	list.Use(flashMiddleware)
	list.Use(requireUserMiddleware)
	list.HandleFunc("/wanttogo", wantListHandler.ListPage).Methods(http.MethodGet)
	list.HandleFunc("/wanttogo", wantListHandler.Add).Methods(http.MethodPost)

	return r
}
