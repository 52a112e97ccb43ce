package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "miniblog/internal/domains/author/model"
	"miniblog/internal/domains/post/model"
)

// fakePostRepo mirrors the store contract in memory: ids are assigned once
// and never reused, both timestamps are set on create, changed_at is
// refreshed on update, listings come back newest first, and an empty title
// gets the placeholder.
type fakePostRepo struct {
	nextID int64
	posts  map[int64]model.Post
	now    func() time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: map[int64]model.Post{},
		now:   time.Now,
	}
}

func (r *fakePostRepo) Create(_ context.Context, p *model.Post) (*model.Post, error) {
	r.nextID++
	created := *p
	created.ID = r.nextID
	if created.Title == "" {
		created.Title = model.DefaultTitle
	}
	created.CreatedAt = r.now()
	created.ChangedAt = created.CreatedAt
	r.posts[created.ID] = created
	return &created, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &p, nil
}

func (r *fakePostRepo) ListAll(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	all, _ := r.ListAll(ctx)
	out := []model.Post{}
	for _, p := range all {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *model.Post) (*model.Post, error) {
	current, ok := r.posts[p.ID]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	current.Title = p.Title
	current.Content = p.Content
	current.ChangedAt = r.now()
	r.posts[p.ID] = current
	return &current, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// fakeAuthorService resolves usernames from a fixed map.
type fakeAuthorService struct {
	authors map[string]*authormodel.Author
}

func (s *fakeAuthorService) GetByUsername(_ context.Context, username string) (*authormodel.Author, error) {
	a, ok := s.authors[username]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return a, nil
}

func (s *fakeAuthorService) Create(_ context.Context, _ *authormodel.CreateAuthorRequest) (*authormodel.Author, error) {
	panic("not used")
}

func (s *fakeAuthorService) Delete(_ context.Context, _ int64) error {
	panic("not used")
}

func setupPostService(t *testing.T) (ServiceInterface, *fakePostRepo) {
	t.Helper()
	repo := newFakePostRepo()
	authors := &fakeAuthorService{
		authors: map[string]*authormodel.Author{
			"test_user": {ID: 7, Username: "test_user", Email: "t@example.com"},
		},
	}
	return NewPostService(repo, authors), repo
}

func TestCreateResolvesAuthor(t *testing.T) {
	svc, repo := setupPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "test_user", model.PostForm{Title: "Hi", Content: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.AuthorID)
	assert.Equal(t, "Hi", created.Title)
	assert.Equal(t, "Hello", created.Content)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.ChangedAt)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestCreateUnknownAuthor(t *testing.T) {
	svc, repo := setupPostService(t)

	_, err := svc.Create(context.Background(), "nobody", model.PostForm{Title: "Hi", Content: "Hello"})
	assert.ErrorIs(t, err, authormodel.ErrAuthorNotFound)
	assert.Empty(t, repo.posts)
}

func TestCreateAppliesTitlePlaceholder(t *testing.T) {
	svc, _ := setupPostService(t)

	created, err := svc.Create(context.Background(), "test_user", model.PostForm{Content: "body only"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTitle, created.Title)
}

func TestCreateRejectsOverlongFields(t *testing.T) {
	svc, repo := setupPostService(t)

	_, err := svc.Create(context.Background(), "test_user", model.PostForm{
		Title:   strings.Repeat("t", model.MaxTitleLength+1),
		Content: "ok",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), "test_user", model.PostForm{
		Title:   "ok",
		Content: strings.Repeat("c", model.MaxContentLength+1),
	})
	assert.Error(t, err)
	assert.Empty(t, repo.posts)
}

func TestFeedNewestFirst(t *testing.T) {
	svc, repo := setupPostService(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		repo.now = func() time.Time { return ts }
		_, err := svc.Create(ctx, "test_user", model.PostForm{Title: "p", Content: content})
		require.NoError(t, err)
	}

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].Content)
	assert.Equal(t, "second", feed[1].Content)
	assert.Equal(t, "first", feed[2].Content)
}

func TestUpdateBumpsChangedAtOnly(t *testing.T) {
	svc, repo := setupPostService(t)
	ctx := context.Background()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return createdAt }
	created, err := svc.Create(ctx, "test_user", model.PostForm{Title: "old", Content: "old body"})
	require.NoError(t, err)

	editedAt := createdAt.Add(time.Hour)
	repo.now = func() time.Time { return editedAt }
	updated, err := svc.Update(ctx, created.ID, model.PostForm{Title: "new", Content: "new body"})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "new body", updated.Content)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, editedAt, updated.ChangedAt)
	assert.True(t, !updated.ChangedAt.Before(updated.CreatedAt))
}

func TestUpdateMissingPostLeavesStoreUnchanged(t *testing.T) {
	svc, repo := setupPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "test_user", model.PostForm{Title: "keep", Content: "me"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID+100, model.PostForm{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", stored.Title)
	assert.Len(t, repo.posts, 1)
}

func TestDeleteMissingPost(t *testing.T) {
	svc, _ := setupPostService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), model.ErrPostNotFound)
}

func TestGetRejectsNonPositiveID(t *testing.T) {
	svc, _ := setupPostService(t)
	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
	_, err = svc.Get(context.Background(), -3)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}
