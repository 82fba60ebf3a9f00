// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"newsroom/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth   *app.AuthService
	posts  *app.PostService
	tokens *app.TokenService
	oidc   *OIDCConfig
	webDir string
	apiURL string
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, posts *app.PostService, tokens *app.TokenService, oidc *OIDCConfig, webDir, apiURL string) *Server {
	if oidc == nil {
		oidc = &OIDCConfig{}
	}
	return &Server{auth: auth, posts: posts, tokens: tokens, oidc: oidc, webDir: webDir, apiURL: apiURL}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.Handle("/auth/validate", s.authMiddleware(http.HandlerFunc(s.handleValidate)))

	api.Handle("/posts", s.authMiddleware(http.HandlerFunc(s.handlePosts)))
	api.Handle("/posts/", s.authMiddleware(http.HandlerFunc(s.handlePostByID)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	root.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	root.HandleFunc("/config.js", s.handleConfigJS)
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
