// Package api exposes the authentication service over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"mailauth/internal/auth"
)

// cookieName is the session cookie carrying the signed token.
const cookieName = "token"

// Server holds the HTTP handlers for the auth endpoints.
type Server struct {
	auth *auth.Service
}

// NewServer returns a Server backed by the given service.
func NewServer(svc *auth.Service) *Server {
	return &Server{auth: svc}
}

// Routes registers all API endpoints on the router.
func (s *Server) Routes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", s.registerHandler).Methods("POST")
	router.HandleFunc("/api/auth/login", s.loginHandler).Methods("POST")
	router.HandleFunc("/api/auth/logout", s.logoutHandler).Methods("POST")
	router.HandleFunc("/api/auth/send-reset-otp", s.sendResetOTPHandler).Methods("POST")
	router.HandleFunc("/api/auth/reset-password", s.resetPasswordHandler).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(s.sessionMiddleware)
	protected.HandleFunc("/api/auth/is-auth", s.isAuthHandler).Methods("GET")
	protected.HandleFunc("/api/auth/send-verify-otp", s.sendVerifyOTPHandler).Methods("POST")
	protected.HandleFunc("/api/auth/verify-account", s.verifyAccountHandler).Methods("POST")
	protected.HandleFunc("/api/user/data", s.userDataHandler).Methods("GET")
}

// response is the common JSON envelope for all endpoints.
type response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *auth.Profile `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: message})
}

// writeError maps a service error onto an HTTP status and failure envelope.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), response{Success: false, Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrAlreadyVerified):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, auth.ErrInvalidCode), errors.Is(err, auth.ErrExpiredCode),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, auth.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// setSessionCookie issues the HTTP-only session cookie with the token's TTL.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
