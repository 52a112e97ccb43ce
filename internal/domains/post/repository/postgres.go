package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"miniblog/internal/domains/post/model"
	"miniblog/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool. Single-post
// reads and the global feed go through a cache-aside Redis layer; every
// write invalidates both. Cache errors are soft and fall through to the
// database.
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
	postIDKeyPrefix = "posts:id:"
	feedCacheKey    = "posts:feed"

	postCacheTTL = 15 * time.Minute
	// The feed changes on every write; keep it short-lived.
	feedCacheTTL = time.Minute
)

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	title := p.Title
	if title == "" {
		title = model.DefaultTitle
	}

	query := `
        INSERT INTO posts (author_id, title, content)
        VALUES ($1, $2, $3)
        RETURNING id, author_id, title, content, created_at, changed_at
    `

	var created model.Post
	err := r.pool.QueryRow(ctx, query, p.AuthorID, title, p.Content).Scan(
		&created.ID,
		&created.AuthorID,
		&created.Title,
		&created.Content,
		&created.CreatedAt,
		&created.ChangedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	r.cache.Delete(ctx, feedCacheKey)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	cacheKey := postIDKeyPrefix + strconv.FormatInt(id, 10)

	var p model.Post
	if found, err := r.cache.Get(ctx, cacheKey, &p); err == nil && found {
		return &p, nil
	}

	query := `
        SELECT id, author_id, title, content, created_at, changed_at
        FROM posts
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Content,
		&p.CreatedAt,
		&p.ChangedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, p, postCacheTTL)

	return &p, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	var cached []model.Post
	if found, err := r.cache.Get(ctx, feedCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, author_id, title, content, created_at, changed_at
        FROM posts
        ORDER BY created_at DESC, id DESC
    `

	posts, err := r.queryPosts(ctx, query)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, feedCacheKey, posts, feedCacheTTL)

	return posts, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	query := `
        SELECT id, author_id, title, content, created_at, changed_at
        FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC, id DESC
    `

	return r.queryPosts(ctx, query, authorID)
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	query := `
        UPDATE posts
        SET title = $1, content = $2, changed_at = NOW()
        WHERE id = $3
        RETURNING id, author_id, title, content, created_at, changed_at
    `

	var updated model.Post
	err := r.pool.QueryRow(ctx, query, p.Title, p.Content, p.ID).Scan(
		&updated.ID,
		&updated.AuthorID,
		&updated.Title,
		&updated.Content,
		&updated.CreatedAt,
		&updated.ChangedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.invalidatePost(ctx, p.ID)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	r.invalidatePost(ctx, id)

	return nil
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.Title,
			&p.Content,
			&p.CreatedAt,
			&p.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) invalidatePost(ctx context.Context, id int64) {
	r.cache.Delete(ctx, postIDKeyPrefix+strconv.FormatInt(id, 10), feedCacheKey)
}
