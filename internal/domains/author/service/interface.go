package service

import (
	"context"

	"miniblog/internal/domains/author/model"
)

// ServiceInterface is the author business logic contract.
type ServiceInterface interface {
	GetByUsername(ctx context.Context, username string) (*model.Author, error)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
}
