// Package render holds the thin contract between handlers and the view
// layer: a handler hands over a template name plus named data objects, or
// issues a redirect. Template internals stay out of the handlers.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page renders a view with the given data under a 200 status.
func Page(c *gin.Context, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(http.StatusOK, view, data)
}

// Redirect sends the browser to a new location after a mutation
// (POST-redirect-GET).
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Error renders the error page for the given status code. Handlers derive
// the status from their domain error taxonomy and hand it over here.
func Error(c *gin.Context, status int) {
	message := "internal server error"
	switch status {
	case http.StatusNotFound:
		message = "page not found"
	case http.StatusConflict:
		message = "already exists"
	}

	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": message,
	})
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

// ServerError renders the generic 500 page. Handlers do not recover from
// store failures; they surface here.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}
