package app

import (
	"context"
	"errors"
	"strings"

	"newsroom/internal/domain"
)

var (
	// ErrNotFound indicates that the requested post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrForbidden indicates that the requester is authenticated but not permitted.
	ErrForbidden = errors.New("access denied")
	// ErrMissingFields indicates a create request with an empty title or content.
	ErrMissingFields = errors.New("title and content are required")
	// ErrInvalidStatus indicates a status outside draft/published.
	ErrInvalidStatus = errors.New(`status must be "draft" or "published"`)
)

// PostService encapsulates post CRUD use cases, gated by the
// authorization policy.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and stores a new post. The author is always the
// requester, whatever the request body claimed.
func (s *PostService) Create(ctx context.Context, ident domain.Identity, title, content string, status domain.Status) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingFields
	}
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.posts.Create(ctx, title, content, status, ident.UserID)
}

// Get returns a single post. A missing id is ErrNotFound before any
// authorization check; an existing post the requester may not view is
// ErrForbidden.
func (s *PostService) Get(ctx context.Context, ident domain.Identity, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !domain.CanView(ident, post) {
		return nil, ErrForbidden
	}
	return post, nil
}

// Update overwrites title, content, and status. Same not-found-before-
// forbidden ordering as Get, but gated by CanModify.
func (s *PostService) Update(ctx context.Context, ident domain.Identity, id int64, title, content string, status domain.Status) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !domain.CanModify(ident, post) {
		return ErrForbidden
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.posts.Update(ctx, id, title, content, status)
}

// Delete removes a post, gated like Update.
func (s *PostService) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !domain.CanModify(ident, post) {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}

// List returns the posts the requester may see, newest first.
func (s *PostService) List(ctx context.Context, ident domain.Identity) ([]domain.Post, error) {
	return s.posts.List(ctx, domain.ListScope(ident))
}
