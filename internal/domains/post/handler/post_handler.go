package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	authormodel "miniblog/internal/domains/author/model"
	"miniblog/internal/domains/post/model"
	"miniblog/internal/domains/post/service"
	"miniblog/internal/shared/render"
)

// PostHandler serves the feed and the post pages. defaultAuthor is the
// username new posts are attributed to; it stands in for a session until an
// authentication layer exists.
type PostHandler struct {
	service       service.ServiceInterface
	defaultAuthor string
}

func NewPostHandler(svc service.ServiceInterface, defaultAuthor string) *PostHandler {
	return &PostHandler{
		service:       svc,
		defaultAuthor: defaultAuthor,
	}
}

// Feed handles GET /.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.service.Feed(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	render.Page(c, "index.html", gin.H{"posts": posts})
}

// Read handles GET /post/:post_id.
func (h *PostHandler) Read(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		render.NotFound(c)
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	render.Page(c, "post.html", gin.H{"post": post})
}

// CreateForm handles GET /create/.
func (h *PostHandler) CreateForm(c *gin.Context) {
	render.Page(c, "create.html", nil)
}

// Create handles POST /create/. An incomplete form skips the insert but
// still redirects to the feed; only store and author-resolution failures
// surface as error pages.
func (h *PostHandler) Create(c *gin.Context) {
	form := postForm(c)

	if form.IsComplete() {
		if _, err := h.service.Create(c.Request.Context(), h.defaultAuthor, form); err != nil {
			h.renderError(c, err)
			return
		}
	}

	render.Redirect(c, "/")
}

// EditForm handles GET /edit/:post_id.
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		render.NotFound(c)
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	render.Page(c, "edit.html", gin.H{"post": post})
}

// Edit handles POST /edit/:post_id. An unknown id is a 404 even when the
// form is incomplete; an incomplete form on an existing post leaves it
// unchanged and redirects as if it succeeded.
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		render.NotFound(c)
		return
	}

	form := postForm(c)

	if form.IsComplete() {
		if _, err := h.service.Update(c.Request.Context(), id, form); err != nil {
			h.renderError(c, err)
			return
		}
	} else {
		if _, err := h.service.Get(c.Request.Context(), id); err != nil {
			h.renderError(c, err)
			return
		}
	}

	render.Redirect(c, "/")
}

// Delete handles POST /delete/:post_id.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		render.NotFound(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	render.Redirect(c, "/")
}

// renderError maps a domain error to its page. Author errors surface here
// because post creation resolves the author.
func (h *PostHandler) renderError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		status = authormodel.ToHTTPStatus(err)
	}

	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("post handler failed")
	}

	render.Error(c, status)
}

// postID normalizes the :post_id route parameter to a single integer type
// at the boundary.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func postForm(c *gin.Context) model.PostForm {
	return model.PostForm{
		Title:   c.PostForm("post__title"),
		Content: c.PostForm("post__content"),
	}
}
