package middleware

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Logger(), Recovery())
	router.SetHTMLTemplate(template.Must(
		template.New("error.html").Parse(`error {{.status}}`)))
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupRouter()
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestIDReusesClientHeader(t *testing.T) {
	router := setupRouter()
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(router, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestChainPassesStatusThrough(t *testing.T) {
	router := setupRouter()
	router.GET("/gone", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/gone", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecoveryTurnsPanicIntoErrorPage(t *testing.T) {
	router := setupRouter()
	router.GET("/boom", func(c *gin.Context) { panic("broken handler") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "500")
}
