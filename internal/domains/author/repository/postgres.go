package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"miniblog/internal/domains/author/model"
	"miniblog/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool with a
// cache-aside Redis layer for username lookups (every page under /user/ and
// every post creation resolves an author by username).
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorUsernameKeyPrefix = "author:username:"
	authorCacheTTL          = 15 * time.Minute

	// Post caches key off this prefix; an author delete cascades to posts,
	// so the whole post cache goes with it.
	postKeyPattern = "posts:*"
)

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (username, email, description, password)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, email, description, password
    `

	var created model.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Username,
		a.Email,
		a.Description,
		a.Password,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.Description,
		&created.Password,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, model.ErrDuplicateUsername
			}
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, model.ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*model.Author, error) {
	cacheKey := authorUsernameKeyPrefix + username

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, username, email, description, password
        FROM authors
        WHERE username = $1
    `

	err := r.pool.QueryRow(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.Description,
		&a.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by username: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, authorCacheTTL)

	return &a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// Username needed for cache invalidation.
	var username string
	err := r.pool.QueryRow(ctx, "SELECT username FROM authors WHERE id = $1", id).Scan(&username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to load author for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.cache.Delete(ctx, authorUsernameKeyPrefix+username)
	// Their posts are gone with them.
	r.cache.DeletePattern(ctx, postKeyPattern)

	return nil
}
