package storage

import (
	"context"
	"errors"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
)

var (
	// ErrNotFound is returned when a blog or user with the given id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a username is already taken.
	ErrDuplicate = errors.New("record already exists")
)

// BlogStore defines the persistence operations for blogs.
type BlogStore interface {
	// ListBlogs returns every blog in creation order.
	ListBlogs(ctx context.Context) ([]v1.Blog, error)

	// StreamBlogs calls fn for each blog in creation order without
	// materializing the whole table. Returning an error from fn stops the scan
	// and is returned as-is.
	StreamBlogs(ctx context.Context, fn func(v1.Blog) error) error

	// ListBlogsByUser returns the blogs owned by userID in creation order.
	ListBlogsByUser(ctx context.Context, userID string) ([]v1.Blog, error)

	GetBlog(ctx context.Context, id string) (*v1.Blog, error)
	CreateBlog(ctx context.Context, blog *v1.Blog) error

	// UpdateBlog replaces title, author, url and likes of an existing blog.
	UpdateBlog(ctx context.Context, blog *v1.Blog) error
	DeleteBlog(ctx context.Context, id string) error
}

// UserStore defines the persistence operations for users.
type UserStore interface {
	// CreateUser returns ErrDuplicate when the username is taken.
	CreateUser(ctx context.Context, user *v1.User) error
	GetUser(ctx context.Context, id string) (*v1.User, error)
	GetUserByUsername(ctx context.Context, username string) (*v1.User, error)
	ListUsers(ctx context.Context) ([]v1.User, error)
}

// Store bundles both stores; the postgres and memory adapters implement it.
type Store interface {
	BlogStore
	UserStore
}
