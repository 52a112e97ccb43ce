package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"miniblog/internal/domains/author/model"
	postmodel "miniblog/internal/domains/post/model"
)

type fakeAuthorService struct {
	authors map[string]*model.Author
}

func (s *fakeAuthorService) GetByUsername(_ context.Context, username string) (*model.Author, error) {
	a, ok := s.authors[username]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (s *fakeAuthorService) Create(_ context.Context, _ *model.CreateAuthorRequest) (*model.Author, error) {
	panic("not used")
}

func (s *fakeAuthorService) Delete(_ context.Context, _ int64) error {
	panic("not used")
}

type fakePostService struct {
	byAuthor map[int64][]postmodel.Post
}

func (s *fakePostService) Feed(context.Context) ([]postmodel.Post, error) { panic("not used") }

func (s *fakePostService) Get(_ context.Context, _ int64) (*postmodel.Post, error) {
	panic("not used")
}

func (s *fakePostService) ListByAuthor(_ context.Context, authorID int64) ([]postmodel.Post, error) {
	posts, ok := s.byAuthor[authorID]
	if !ok {
		return []postmodel.Post{}, nil
	}
	return posts, nil
}

func (s *fakePostService) Create(_ context.Context, _ string, _ postmodel.PostForm) (*postmodel.Post, error) {
	panic("not used")
}

func (s *fakePostService) Update(_ context.Context, _ int64, _ postmodel.PostForm) (*postmodel.Post, error) {
	panic("not used")
}

func (s *fakePostService) Delete(_ context.Context, _ int64) error { panic("not used") }

func setupRouter(authors *fakeAuthorService, posts *fakePostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl := template.Must(template.New("user_page.html").Parse(
		`{{.author.Username}}{{range .posts}} [{{.Title}}]{{end}}`))
	template.Must(tmpl.New("error.html").Parse(`error {{.status}}`))
	router.SetHTMLTemplate(tmpl)

	h := NewAuthorHandler(authors, posts)
	router.GET("/user/:username", h.UserPage)

	return router
}

func getUserPage(router *gin.Engine, username string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/"+username, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestUserPage(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	authors := &fakeAuthorService{
		authors: map[string]*model.Author{
			"test_user": {ID: 7, Username: "test_user", Email: "t@example.com"},
		},
	}
	posts := &fakePostService{
		byAuthor: map[int64][]postmodel.Post{
			7: {
				{ID: 2, AuthorID: 7, Title: "newer", Content: "b", CreatedAt: now.Add(time.Hour), ChangedAt: now.Add(time.Hour)},
				{ID: 1, AuthorID: 7, Title: "older", Content: "a", CreatedAt: now, ChangedAt: now},
			},
		},
	}
	router := setupRouter(authors, posts)

	w := getUserPage(router, "test_user")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test_user [newer] [older]", w.Body.String())
}

func TestUserPageNoPosts(t *testing.T) {
	authors := &fakeAuthorService{
		authors: map[string]*model.Author{
			"quiet": {ID: 3, Username: "quiet", Email: "q@example.com"},
		},
	}
	router := setupRouter(authors, &fakePostService{byAuthor: map[int64][]postmodel.Post{}})

	w := getUserPage(router, "quiet")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "quiet", w.Body.String())
}

func TestUserPageUnknownAuthor(t *testing.T) {
	router := setupRouter(&fakeAuthorService{authors: map[string]*model.Author{}}, &fakePostService{})

	w := getUserPage(router, "ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
