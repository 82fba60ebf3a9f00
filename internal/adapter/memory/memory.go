// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"newsroom/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu    sync.Mutex
	users []*domain.User
	posts []*domain.Post

	userIDCounter int64
	postIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// Create adds a user.
func (db *DB) Create(ctx context.Context, username, email, passwordHash string, role domain.Role) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)

	cp := *u
	return &cp, nil
}

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ExistsByUsernameOrEmail reports whether either identifier is taken.
func (db *DB) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// --- PostRepository ---

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create adds a post.
func (r *PostRepo) Create(ctx context.Context, title, content string, status domain.Status, authorID int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.postIDCounter++
	p := &domain.Post{
		ID:        r.db.postIDCounter,
		Title:     title,
		Content:   content,
		Status:    status,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	r.db.posts = append(r.db.posts, p)

	cp := *p
	return &cp, nil
}

// GetByID retrieves a post by ID, or (nil, nil) when absent.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			cp := *p
			cp.AuthorName = r.db.usernameLocked(p.AuthorID)
			return &cp, nil
		}
	}
	return nil, nil
}

// Update overwrites title, content, and status.
func (r *PostRepo) Update(ctx context.Context, id int64, title, content string, status domain.Status) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			p.Title = title
			p.Content = content
			p.Status = status
			return nil
		}
	}
	return nil
}

// Delete removes a post by ID.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.posts {
		if p.ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns posts matching the scope, newest first.
func (r *PostRepo) List(ctx context.Context, scope domain.PostScope) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []domain.Post
	for _, p := range r.db.posts {
		if scope.Restricted && p.Status != domain.StatusPublished && p.AuthorID != scope.OwnerID {
			continue
		}
		cp := *p
		cp.AuthorName = r.db.usernameLocked(p.AuthorID)
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// usernameLocked resolves an author's username; callers hold db.mu.
func (db *DB) usernameLocked(id int64) string {
	for _, u := range db.users {
		if u.ID == id {
			return u.Username
		}
	}
	return ""
}
