// Package httpapi exposes the authentication and food-catalog HTTP API.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/platefeed/server/internal/model"
	"github.com/platefeed/server/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth          service.AuthService
	foods         service.FoodService
	log           *zap.Logger
	secureCookies bool
	maxUploadSize int64
}

// Config carries the immutable handler settings read once at startup.
type Config struct {
	// SecureCookies marks the session cookie Secure (production).
	SecureCookies bool
	// MaxUploadSize caps multipart request bodies, in bytes.
	MaxUploadSize int64
}

// New constructs an HTTP server with injected services.
func New(auth service.AuthService, foods service.FoodService, log *zap.Logger, cfg Config) *Server {
	return &Server{
		auth:          auth,
		foods:         foods,
		log:           log,
		secureCookies: cfg.SecureCookies,
		maxUploadSize: cfg.MaxUploadSize,
	}
}

// Router builds the route table. Auth endpoints are public; the catalog
// is guarded per kind: partners create, users browse.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware, s.loggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/user/sign-up", s.handleSignUp(model.KindUser)).Methods(http.MethodPost)
	auth.HandleFunc("/user/sign-in", s.handleSignIn(model.KindUser)).Methods(http.MethodPost)
	auth.HandleFunc("/user/logout", s.handleLogout(model.KindUser)).Methods(http.MethodPost)
	auth.HandleFunc("/food-partner/sign-up", s.handleSignUp(model.KindFoodPartner)).Methods(http.MethodPost)
	auth.HandleFunc("/food-partner/sign-in", s.handleSignIn(model.KindFoodPartner)).Methods(http.MethodPost)
	auth.HandleFunc("/food-partner/logout", s.handleLogout(model.KindFoodPartner)).Methods(http.MethodPost)

	r.Handle("/api/food", s.requireIdentity(model.KindFoodPartner, http.HandlerFunc(s.handleCreateFood))).Methods(http.MethodPost)
	r.Handle("/api/food", s.requireIdentity(model.KindUser, http.HandlerFunc(s.handleListFood))).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
