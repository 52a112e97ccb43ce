package service

import (
	"context"
	"fmt"
	"strings"

	"miniblog/internal/domains/author/model"
	"miniblog/internal/domains/author/repository"
)

// authorService implements ServiceInterface. The repository is an interface
// so tests can substitute an in-memory fake.
type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) GetByUsername(ctx context.Context, username string) (*model.Author, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.ErrAuthorNotFound
	}

	return s.repo.GetByUsername(ctx, username)
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author: %w", err)
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
