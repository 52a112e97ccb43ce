package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"miniblog/internal/config"
	infracache "miniblog/internal/infrastructure/cache"
	"miniblog/internal/infrastructure/database"
	"miniblog/pkg/cache"

	authorHandler "miniblog/internal/domains/author/handler"
	authorRepo "miniblog/internal/domains/author/repository"
	authorService "miniblog/internal/domains/author/service"
	postHandler "miniblog/internal/domains/post/handler"
	postRepo "miniblog/internal/domains/post/repository"
	postService "miniblog/internal/domains/post/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the lifetime of the process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo authorRepo.RepositoryInterface
	PostRepo   postRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	PostService   postService.ServiceInterface

	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer builds the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(ctx); err != nil {
		// Cache is an optimization; the repositories fall through to the
		// database on every miss or error.
		log.Warn().Err(err).Msg("Redis unavailable, continuing without warm cache")
	}
	c.Cache = redisCache

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.AuthorService)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.PostService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, cfg.Blog.DefaultAuthor)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infracache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close Redis client")
		}
	}
}
