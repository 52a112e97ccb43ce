package repository

import (
	"context"

	"miniblog/internal/domains/author/model"
)

// RepositoryInterface is the author data access contract.
type RepositoryInterface interface {
	// Create inserts a new author and returns it with the generated id.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByUsername returns the author with the given unique username.
	GetByUsername(ctx context.Context, username string) (*model.Author, error)

	// Delete removes an author; the schema cascades to their posts.
	Delete(ctx context.Context, id int64) error
}
