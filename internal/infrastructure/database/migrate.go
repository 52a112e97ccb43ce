package database

import (
	"context"
	"fmt"
)

// Schema is created idempotently at startup. Column limits mirror the domain
// validation rules; posts cascade when their author is deleted.
const (
	createAuthorsTable = `
        CREATE TABLE IF NOT EXISTS authors (
            id          BIGSERIAL PRIMARY KEY,
            username    VARCHAR(70)   NOT NULL UNIQUE,
            email       VARCHAR(200)  NOT NULL UNIQUE,
            description VARCHAR(1024) NOT NULL DEFAULT '',
            password    VARCHAR(300)  NOT NULL
        )
    `

	createPostsTable = `
        CREATE TABLE IF NOT EXISTS posts (
            id         BIGSERIAL PRIMARY KEY,
            author_id  BIGINT        NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
            title      VARCHAR(124)  NOT NULL DEFAULT 'none title',
            content    VARCHAR(1024) NOT NULL,
            created_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
            changed_at TIMESTAMPTZ   NOT NULL DEFAULT NOW()
        )
    `

	createPostsAuthorIndex = `
        CREATE INDEX IF NOT EXISTS idx_posts_author_created
        ON posts (author_id, created_at DESC)
    `
)

// InitSchema creates the blog tables if they do not exist yet.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range []string{createAuthorsTable, createPostsTable, createPostsAuthorIndex} {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	return nil
}
