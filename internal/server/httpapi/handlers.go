// Package httpapi is the HTTP gateway of the server: routing, session
// decoding, route-level authorization and the JSON handlers.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/newsgate/internal/common"
	"github.com/dmitrijs2005/newsgate/internal/logging"
	"github.com/dmitrijs2005/newsgate/internal/server/auth"
	"github.com/dmitrijs2005/newsgate/internal/server/authz"
	"github.com/dmitrijs2005/newsgate/internal/server/config"
	"github.com/dmitrijs2005/newsgate/internal/server/services"
)

// Server wires the services into the HTTP surface.
type Server struct {
	addr          string
	users         *services.UserService
	news          *services.NewsService
	logger        logging.Logger
	jwtSecret     []byte
	secureCookies bool
	rules         authz.Rules
}

func NewServer(cfg *config.Config, users *services.UserService, news *services.NewsService, logger logging.Logger) *Server {
	return &Server{
		addr:          cfg.EndpointAddrHTTP,
		users:         users,
		news:          news,
		logger:        logger,
		jwtSecret:     []byte(cfg.SecretKey),
		secureCookies: cfg.SecureCookies,
		rules:         authz.DefaultRules(),
	}
}

// Handler builds the router. The gateway middleware runs on every route,
// including the public ones: an expired session forces logout no matter
// where the request was headed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.withRequestLog)
	r.Use(s.sessionGate)
	r.Use(s.routeGuard)

	r.Get("/", s.handleWelcome)
	r.Get("/error", s.handleError)
	r.Post("/signup", s.handleSignup)
	r.Post("/signin", s.handleSignin)
	r.Post("/signout", s.handleSignout)
	r.Get("/news", s.handleNewsList)
	r.Get("/news/{id}", s.handleNewsItem)
	r.Get("/user/dashboard", s.handleUserDashboard)
	r.Get("/admin/dashboard", s.handleAdminDashboard)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "error writing response", "error", err)
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	msg := "Welcome."
	if sess := SessionFromContext(r.Context()); sess != nil {
		msg = fmt.Sprintf("Welcome back, user %d.", sess.UserID)
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// handleError renders the human-readable message for a reason code. Unknown
// or absent codes fall back to the generic message.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request) {
	reason := Reason(r.URL.Query().Get("error"))
	s.writeJSON(w, http.StatusOK, messageResponse{Message: reason.Message()})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields"})
		return
	}

	_, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Signup successful"})
	case errors.Is(err, common.ErrorMissingRequired):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields"})
	case errors.Is(err, common.ErrEmailExists):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: "Email already exists"})
	default:
		s.logger.Error(r.Context(), "signup failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

type signinRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	KeepSigned bool   `json:"keepSigned"`
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: string(ReasonCredentialsSignin)})
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password, req.KeepSigned)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: string(ReasonCredentialsSignin)})
			return
		}
		s.logger.Error(r.Context(), "signin failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: string(ReasonDefault)})
		return
	}

	// The cookie lifetime mirrors the expiry embedded in the token itself.
	sess, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Error(r.Context(), "signin failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: string(ReasonDefault)})
		return
	}
	s.setSessionCookie(w, token, sess.ExpiresAt)

	s.writeJSON(w, http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (s *Server) handleSignout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w)
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Signed out"})
}

type newsListItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (s *Server) handleNewsList(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "news list failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: string(ReasonDefault)})
		return
	}

	out := make([]newsListItem, 0, len(items))
	for _, it := range items {
		out = append(out, newsListItem{ID: it.ID, Title: it.Title})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleNewsItem serves a single item. A denied caller still gets a 200
// with redacted text; only a missing item is a 404.
func (s *Server) handleNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	view, err := s.news.Get(r.Context(), id, SessionFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error(r.Context(), "news read failed", "error", err, "id", id)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: string(ReasonDefault)})
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUserDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"userId": sess.UserID,
		"role":   sess.Role,
	})
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"userId": sess.UserID,
		"role":   sess.Role,
		"admin":  true,
	})
}
