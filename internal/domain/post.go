package domain

import (
	"context"
	"time"
)

// Status is the publication state of a post.
type Status string

const (
	// StatusDraft posts are visible only to their author and admins.
	StatusDraft Status = "draft"
	// StatusPublished posts are visible to every authenticated user.
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post represents a single piece of content. AuthorID is set at creation
// and never reassigned.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Status     Status    `json:"status"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostScope narrows a post listing to what the requester may see.
// When Restricted is false the listing is unfiltered.
type PostScope struct {
	Restricted bool
	OwnerID    int64
}

// PostRepository defines the port for post persistence operations.
// GetByID returns (nil, nil) when no post with that id exists.
type PostRepository interface {
	Create(ctx context.Context, title, content string, status Status, authorID int64) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, title, content string, status Status) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, scope PostScope) ([]Post, error)
}
