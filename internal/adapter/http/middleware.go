package adapthttp

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"newsroom/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// authMiddleware extracts the bearer token, verifies it, and binds the
// resulting identity into the request context. Requests without a valid
// token are rejected before any handler logic runs.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "no token provided")
			return
		}

		ident, err := s.tokens.Verify(token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom returns the identity bound by authMiddleware.
func identityFrom(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(domain.Identity)
	return ident, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status, and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
