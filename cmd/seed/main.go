// Command seed inserts the default author the create handler attributes
// posts to. Running it is a deployment precondition: without the author,
// POST /create/ renders a not-found page.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"miniblog/internal/config"
	authormodel "miniblog/internal/domains/author/model"
	"miniblog/pkg/container"
	"miniblog/pkg/logger"
)

func main() {
	var (
		username    = flag.String("username", "", "author username (defaults to BLOG_DEFAULT_AUTHOR)")
		email       = flag.String("email", "test_user@example.com", "author email")
		description = flag.String("description", "", "author description")
		password    = flag.String("password", "changeme", "author password")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.App.Environment)

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer appContainer.Cleanup()

	name := *username
	if name == "" {
		name = cfg.Blog.DefaultAuthor
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	author, err := appContainer.AuthorService.Create(ctx, &authormodel.CreateAuthorRequest{
		Username:    name,
		Email:       *email,
		Description: *description,
		Password:    *password,
	})
	if err != nil {
		if errors.Is(err, authormodel.ErrDuplicateUsername) || errors.Is(err, authormodel.ErrDuplicateEmail) {
			log.Info().Str("username", name).Msg("author already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("failed to seed author")
	}

	log.Info().Int64("id", author.ID).Str("username", author.Username).Msg("author created")
}
