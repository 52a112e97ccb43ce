package service

import (
	"context"
	"fmt"

	authorservice "miniblog/internal/domains/author/service"
	"miniblog/internal/domains/post/model"
	"miniblog/internal/domains/post/repository"
)

// postService implements ServiceInterface. Author resolution goes through
// the author service so this package never touches the authors table.
type postService struct {
	repo    repository.RepositoryInterface
	authors authorservice.ServiceInterface
}

func NewPostService(repo repository.RepositoryInterface, authors authorservice.ServiceInterface) ServiceInterface {
	return &postService{
		repo:    repo,
		authors: authors,
	}
}

func (s *postService) Feed(ctx context.Context) ([]model.Post, error) {
	return s.repo.ListAll(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *postService) Create(ctx context.Context, authorUsername string, form model.PostForm) (*model.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post form: %w", err)
	}

	// Missing author is a deployment problem, not user error; the not-found
	// error propagates as-is.
	author, err := s.authors.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Post{
		AuthorID: author.ID,
		Title:    form.Title,
		Content:  form.Content,
	})
}

func (s *postService) Update(ctx context.Context, id int64, form model.PostForm) (*model.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post form: %w", err)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title = form.Title
	current.Content = form.Content

	return s.repo.Update(ctx, current)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrPostNotFound
	}
	return s.repo.Delete(ctx, id)
}
