package service

import (
	"context"

	"miniblog/internal/domains/post/model"
)

// ServiceInterface is the post business logic contract.
type ServiceInterface interface {
	// Feed returns every post, newest first.
	Feed(ctx context.Context) ([]model.Post, error)

	// Get returns a single post.
	Get(ctx context.Context, id int64) (*model.Post, error)

	// ListByAuthor returns one author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error)

	// Create resolves the author by username and inserts a new post. The
	// author username comes from the caller (today: configured default, a
	// session once one exists).
	Create(ctx context.Context, authorUsername string, form model.PostForm) (*model.Post, error)

	// Update overwrites a post's title and content, bumping changed_at.
	Update(ctx context.Context, id int64, form model.PostForm) (*model.Post, error)

	// Delete removes a post.
	Delete(ctx context.Context, id int64) error
}
