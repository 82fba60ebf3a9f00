package app_test

import (
	"context"
	"testing"

	"newsroom/internal/app"
	"newsroom/internal/domain"
)

type mockPostRepo struct {
	createFn func(ctx context.Context, title, content string, status domain.Status, authorID int64) (*domain.Post, error)
	getFn    func(ctx context.Context, id int64) (*domain.Post, error)
	updateFn func(ctx context.Context, id int64, title, content string, status domain.Status) error
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context, scope domain.PostScope) ([]domain.Post, error)
}

func (m *mockPostRepo) Create(ctx context.Context, title, content string, status domain.Status, authorID int64) (*domain.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, content, status, authorID)
	}
	return &domain.Post{ID: 1, Title: title, Content: content, Status: status, AuthorID: authorID}, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, title, content string, status domain.Status) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title, content, status)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) List(ctx context.Context, scope domain.PostScope) ([]domain.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, scope)
	}
	return nil, nil
}

var (
	editor1 = domain.Identity{UserID: 1, Role: domain.RoleEditor}
	editor2 = domain.Identity{UserID: 2, Role: domain.RoleEditor}
	admin   = domain.Identity{UserID: 9, Role: domain.RoleAdmin}
)

func TestCreatePost_Validation(t *testing.T) {
	svc := app.NewPostService(&mockPostRepo{})

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "body"},
		{"empty content", "A", ""},
		{"whitespace title", "   ", "body"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), editor1, tc.title, tc.content, domain.StatusDraft)
			if err != app.ErrMissingFields {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

// The author always comes from the verified identity, never from the
// request body.
func TestCreatePost_ForcesAuthor(t *testing.T) {
	var gotAuthor int64
	repo := &mockPostRepo{
		createFn: func(_ context.Context, title, content string, status domain.Status, authorID int64) (*domain.Post, error) {
			gotAuthor = authorID
			return &domain.Post{ID: 1, Title: title, Content: content, Status: status, AuthorID: authorID}, nil
		},
	}
	svc := app.NewPostService(repo)

	ident := domain.Identity{UserID: 7, Role: domain.RoleEditor}
	post, err := svc.Create(context.Background(), ident, "A", "x", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuthor != 7 || post.AuthorID != 7 {
		t.Fatalf("expected author 7, got repo=%d post=%d", gotAuthor, post.AuthorID)
	}
}

func TestCreatePost_DefaultsToDraft(t *testing.T) {
	svc := app.NewPostService(&mockPostRepo{})

	post, err := svc.Create(context.Background(), editor1, "A", "x", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Status != domain.StatusDraft {
		t.Fatalf("expected draft, got %q", post.Status)
	}
}

func TestCreatePost_RejectsUnknownStatus(t *testing.T) {
	svc := app.NewPostService(&mockPostRepo{})

	_, err := svc.Create(context.Background(), editor1, "A", "x", "archived")
	if err != app.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestGetPost_NotFoundBeforeForbidden(t *testing.T) {
	svc := app.NewPostService(&mockPostRepo{})

	// Absent id is NotFound for everyone, owner or not.
	for _, ident := range []domain.Identity{editor1, editor2, admin} {
		if _, err := svc.Get(context.Background(), ident, 99); err != app.ErrNotFound {
			t.Fatalf("expected ErrNotFound for %+v, got %v", ident, err)
		}
	}
}

func TestGetPost_ForbiddenForForeignDraft(t *testing.T) {
	repo := &mockPostRepo{
		getFn: func(_ context.Context, id int64) (*domain.Post, error) {
			return &domain.Post{ID: id, Status: domain.StatusDraft, AuthorID: 1}, nil
		},
	}
	svc := app.NewPostService(repo)

	if _, err := svc.Get(context.Background(), editor2, 10); err != app.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), editor1, 10); err != nil {
		t.Fatalf("owner should read own draft, got %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, 10); err != nil {
		t.Fatalf("admin should read any draft, got %v", err)
	}
}

func TestUpdatePost_PublishedNotEditableByOthers(t *testing.T) {
	repo := &mockPostRepo{
		getFn: func(_ context.Context, id int64) (*domain.Post, error) {
			return &domain.Post{ID: id, Status: domain.StatusPublished, AuthorID: 1}, nil
		},
	}
	svc := app.NewPostService(repo)

	// Visible but not editable.
	if _, err := svc.Get(context.Background(), editor2, 10); err != nil {
		t.Fatalf("published post should be visible, got %v", err)
	}
	err := svc.Update(context.Background(), editor2, 10, "B", "y", domain.StatusPublished)
	if err != app.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeletePost_Gating(t *testing.T) {
	var deleted int64
	repo := &mockPostRepo{
		getFn: func(_ context.Context, id int64) (*domain.Post, error) {
			return &domain.Post{ID: id, Status: domain.StatusDraft, AuthorID: 1}, nil
		},
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := app.NewPostService(repo)

	if err := svc.Delete(context.Background(), editor2, 10); err != app.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if deleted != 0 {
		t.Fatal("delete must not reach the repository when forbidden")
	}

	if err := svc.Delete(context.Background(), admin, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 10 {
		t.Fatalf("expected delete of 10, got %d", deleted)
	}
}

func TestListPosts_AppliesScope(t *testing.T) {
	var gotScope domain.PostScope
	repo := &mockPostRepo{
		listFn: func(_ context.Context, scope domain.PostScope) ([]domain.Post, error) {
			gotScope = scope
			return nil, nil
		},
	}
	svc := app.NewPostService(repo)

	if _, err := svc.List(context.Background(), editor2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotScope.Restricted || gotScope.OwnerID != 2 {
		t.Fatalf("expected restricted scope for owner 2, got %+v", gotScope)
	}

	if _, err := svc.List(context.Background(), admin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotScope.Restricted {
		t.Fatal("expected unrestricted scope for admin")
	}
}
