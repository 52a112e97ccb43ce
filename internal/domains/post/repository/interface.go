package repository

import (
	"context"

	"miniblog/internal/domains/post/model"
)

// RepositoryInterface is the post data access contract. Listing operations
// return posts newest first (created_at descending, id as tiebreaker).
type RepositoryInterface interface {
	// Create inserts a post; the store assigns id and both timestamps and
	// applies the title placeholder when Title is empty.
	Create(ctx context.Context, p *model.Post) (*model.Post, error)

	// GetByID returns a single post.
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// ListAll returns every post, newest first.
	ListAll(ctx context.Context) ([]model.Post, error)

	// ListByAuthor returns one author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error)

	// Update persists title/content and refreshes changed_at.
	Update(ctx context.Context, p *model.Post) (*model.Post, error)

	// Delete removes a post.
	Delete(ctx context.Context, id int64) error
}
