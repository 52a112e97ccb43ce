package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength   = 124
	MaxContentLength = 1024

	// DefaultTitle is stored when a post is created without a title.
	DefaultTitle = "none title"
)

// Post is a single timestamped entry written by one author.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at"`
}

// PostForm carries the create/edit form fields. An empty field means the
// submission is skipped entirely, so Validate only guards the upper bounds.
type PostForm struct {
	Title   string
	Content string
}

// IsComplete reports whether both fields were submitted non-empty. An
// incomplete form is silently ignored by the handlers (the write is skipped
// and the redirect happens anyway).
func (f PostForm) IsComplete() bool {
	return f.Title != "" && f.Content != ""
}

func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Length(0, MaxTitleLength),
		),
		validation.Field(&f.Content,
			validation.Length(0, MaxContentLength),
		),
	)
}
