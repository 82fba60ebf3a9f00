package adapthttp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"newsroom/internal/app"
	"newsroom/internal/domain"
)

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token provided")
		return
	}

	switch r.Method {
	case http.MethodGet:
		posts, err := s.posts.List(r.Context(), ident)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "error fetching posts")
			return
		}
		if posts == nil {
			posts = []domain.Post{}
		}
		writeJSON(w, http.StatusOK, posts)

	case http.MethodPost:
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Status  string `json:"status"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		post, err := s.posts.Create(r.Context(), ident, req.Title, req.Content, domain.Status(req.Status))
		if errors.Is(err, app.ErrMissingFields) || errors.Is(err, app.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "error creating post")
			return
		}
		writeJSON(w, http.StatusCreated, post)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePostByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token provided")
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/posts/"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		post, err := s.posts.Get(r.Context(), ident, id)
		if err != nil {
			writePostError(w, err, "error fetching post")
			return
		}
		writeJSON(w, http.StatusOK, post)

	case http.MethodPut:
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Status  string `json:"status"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		if err := s.posts.Update(r.Context(), ident, id, req.Title, req.Content, domain.Status(req.Status)); err != nil {
			writePostError(w, err, "error updating post")
			return
		}
		writeMessage(w, http.StatusOK, "post updated successfully")

	case http.MethodDelete:
		if err := s.posts.Delete(r.Context(), ident, id); err != nil {
			writePostError(w, err, "error deleting post")
			return
		}
		writeMessage(w, http.StatusOK, "post deleted successfully")

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// writePostError maps post service errors to status codes; anything
// unexpected collapses to a 500 with the given message.
func writePostError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, app.ErrForbidden):
		writeError(w, http.StatusForbidden, err)
	case errors.Is(err, app.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeMessage(w, http.StatusInternalServerError, internalMsg)
	}
}
