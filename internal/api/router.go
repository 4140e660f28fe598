package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jtarrant/wanttogo/internal/api/handler"
	"github.com/jtarrant/wanttogo/internal/api/middleware"
	"github.com/jtarrant/wanttogo/internal/services/auth"
	"github.com/jtarrant/wanttogo/internal/services/wantlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	WantListService *wantlist.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	wantListHandler := handler.NewWantListHandler(cfg.WantListService)
	destinationHandler := handler.NewDestinationHandler()

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// User routes (no auth required for registering/logging in)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Protected user routes
	userProtected := api.PathPrefix("/users").Subrouter()
	userProtected.Use(authMiddleware)
	userProtected.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)

	// Want-to-go list routes (all require auth)
	list := api.PathPrefix("/wantlist").Subrouter()
	list.Use(authMiddleware)
	list.HandleFunc("", wantListHandler.Get).Methods(http.MethodGet)
	list.HandleFunc("", wantListHandler.Add).Methods(http.MethodPost)

	// Destination catalog (no auth; it is static data)
	api.HandleFunc("/destinations", destinationHandler.List).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// healthHandler reports service liveness
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
