package adapthttp

import (
	"errors"
	"fmt"
	"net/http"

	"newsroom/internal/app"
	"newsroom/internal/domain"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "all fields are required")
		return
	}

	// The role is taken from the request body, matching the original API.
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleEditor
	}
	if !role.Valid() {
		writeMessage(w, http.StatusBadRequest, `role must be "admin" or "editor"`)
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password, role)
	if errors.Is(err, app.ErrUserExists) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error registering user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "user registered successfully",
		"userId":  user.ID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error logging in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ident, ok := identityFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token provided")
		return
	}

	user, err := s.auth.Lookup(r.Context(), ident.UserID)
	if errors.Is(err, app.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "error validating token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sso_enabled": s.oidc.Enabled,
	})
}

// handleConfigJS emits the frontend bootstrap config as a script that
// sets window.APP_CONFIG.
func (s *Server) handleConfigJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprintf(w, "window.APP_CONFIG = {\n  \"API_URL\": %q\n};\n", s.apiURL)
}
