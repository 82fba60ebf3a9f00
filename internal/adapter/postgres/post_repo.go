package postgres

import (
	"context"
	"database/sql"
	"time"

	"newsroom/internal/domain"
)

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create inserts a new post owned by authorID and returns the stored row.
func (r *PostRepo) Create(ctx context.Context, title, content string, status domain.Status, authorID int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO posts (title, content, status, author_id, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, title, content, status, author_id, created_at",
		title, content, status, authorID, time.Now(),
	).Scan(&p.ID, &p.Title, &p.Content, &p.Status, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a post with its author's username joined in.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT p.id, p.title, p.content, p.status, p.author_id, u.username, p.created_at FROM posts p JOIN users u ON p.author_id = u.id WHERE p.id = $1",
		id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.Status, &p.AuthorID, &p.AuthorName, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites title, content, and status.
func (r *PostRepo) Update(ctx context.Context, id int64, title, content string, status domain.Status) error {
	_, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $1, content = $2, status = $3 WHERE id = $4",
		title, content, status, id,
	)
	return err
}

// Delete removes a post by ID.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// List returns posts newest first. A restricted scope narrows the result
// to published posts plus the owner's own drafts, in the query itself.
func (r *PostRepo) List(ctx context.Context, scope domain.PostScope) ([]domain.Post, error) {
	query := "SELECT p.id, p.title, p.content, p.status, p.author_id, u.username, p.created_at FROM posts p JOIN users u ON p.author_id = u.id"
	args := []any{}
	if scope.Restricted {
		query += " WHERE p.status = 'published' OR p.author_id = $1"
		args = append(args, scope.OwnerID)
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Status, &p.AuthorID, &p.AuthorName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
