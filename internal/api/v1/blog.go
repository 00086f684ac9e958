package v1

import (
	"fmt"
	"strings"
	"time"

	coreagg "github.com/bloglist-lab/bloglist/internal/core/aggregation"
)

// Blog is a stored blog record.
type Blog struct {
	// ID is assigned by the server on creation (UUID string).
	ID string `json:"id"`

	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int64  `json:"likes"`

	// UserID is the owning user. Only the owner may update or delete the blog.
	UserID string `json:"user_id"`

	// User is the populated owner summary, set when blogs are listed.
	User *Owner `json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// Owner is the user summary embedded in listed blogs.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Post returns the aggregation view of the blog.
func (b Blog) Post() coreagg.Post {
	return coreagg.Post{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		UserID: b.UserID,
	}
}

// Posts converts blogs for aggregation without touching the input slice.
func Posts(blogs []Blog) []coreagg.Post {
	posts := make([]coreagg.Post, len(blogs))
	for i := range blogs {
		posts[i] = blogs[i].Post()
	}
	return posts
}

// CreateBlogRequest is the body of POST /api/blogs.
// Likes is optional and defaults to 0.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int64 `json:"likes"`
}

// Validate ensures the request carries every required field.
func (r *CreateBlogRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if r.Likes != nil && *r.Likes < 0 {
		return fmt.Errorf("likes must be non-negative")
	}
	return nil
}

// NewBlog builds the blog to store for the given owner.
func (r *CreateBlogRequest) NewBlog(id, userID string, now time.Time) Blog {
	var likes int64
	if r.Likes != nil {
		likes = *r.Likes
	}
	return Blog{
		ID:        id,
		Title:     r.Title,
		Author:    r.Author,
		URL:       r.URL,
		Likes:     likes,
		UserID:    userID,
		CreatedAt: now,
	}
}

// UpdateBlogRequest is the body of PATCH /api/blogs/:id.
// Nil fields are left unchanged.
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int64  `json:"likes"`
}

// Validate rejects present-but-invalid fields.
func (r *UpdateBlogRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if r.URL != nil && strings.TrimSpace(*r.URL) == "" {
		return fmt.Errorf("url must not be empty")
	}
	if r.Likes != nil && *r.Likes < 0 {
		return fmt.Errorf("likes must be non-negative")
	}
	return nil
}

// Apply returns a copy of b with the request's fields applied.
func (r *UpdateBlogRequest) Apply(b Blog) Blog {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.URL != nil {
		b.URL = *r.URL
	}
	if r.Likes != nil {
		b.Likes = *r.Likes
	}
	return b
}
