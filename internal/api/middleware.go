package api

import (
	"context"
	"net/http"
)

type contextKey struct{}

var accountIDKey contextKey

// AccountID returns the account id attached by sessionMiddleware, or an
// empty string outside an authenticated request.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

// sessionMiddleware validates the session cookie and attaches the account
// id to the request context. Absent, malformed, or expired tokens reject
// the request before it reaches the handler.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "not authorized, login again"})
			return
		}
		id, err := s.auth.Authenticate(cookie.Value)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "not authorized, login again"})
			return
		}
		ctx := context.WithValue(r.Context(), accountIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
