package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"miniblog/internal/domains/author/model"
	"miniblog/internal/domains/author/service"
	postservice "miniblog/internal/domains/post/service"
	"miniblog/internal/shared/render"
)

// AuthorHandler serves the author page. It needs the post service to list
// the author's entries next to their profile.
type AuthorHandler struct {
	authors service.ServiceInterface
	posts   postservice.ServiceInterface
}

func NewAuthorHandler(authors service.ServiceInterface, posts postservice.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		authors: authors,
		posts:   posts,
	}
}

// UserPage handles GET /user/:username. An author with zero posts is still
// a page; only an unknown username is a 404.
func (h *AuthorHandler) UserPage(c *gin.Context) {
	username := c.Param("username")

	author, err := h.authors.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.renderError(c, err)
		return
	}

	posts, err := h.posts.ListByAuthor(c.Request.Context(), author.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	render.Page(c, "user_page.html", gin.H{
		"author": author,
		"posts":  posts,
	})
}

func (h *AuthorHandler) renderError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("author handler failed")
	}

	render.Error(c, status)
}
