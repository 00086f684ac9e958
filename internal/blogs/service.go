package blogs

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service implements the blog CRUD endpoints.
type Service struct {
	blogs            storage.BlogStore
	users            storage.UserStore
	authenticate     gin.HandlerFunc
	maxBodySizeBytes int
	nowFn            func() time.Time
	newID            func() string
}

// NewService creates a blog service. authenticate guards every mutating route
// and must attach the caller (see auth.Service.UserExtractor).
func NewService(blogs storage.BlogStore, users storage.UserStore, authenticate gin.HandlerFunc, maxBodySizeMB int) *Service {
	if blogs == nil {
		panic("blogs: blog store must not be nil")
	}
	if users == nil {
		panic("blogs: user store must not be nil")
	}
	if authenticate == nil {
		panic("blogs: authenticate middleware must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		blogs:            blogs,
		users:            users,
		authenticate:     authenticate,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		newID: func() string {
			return uuid.NewString()
		},
	}
}

// RegisterRoutes registers the blog routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api/blogs")
	g.GET("", s.ListHandler)
	g.GET("/:id", s.GetHandler)
	g.POST("", s.authenticate, s.CreateHandler)
	g.PATCH("/:id", s.authenticate, s.UpdateHandler)
	g.PUT("/:id", s.authenticate, s.UpdateHandler)
	g.DELETE("/:id", s.authenticate, s.DeleteHandler)
}

// ListBlogs returns every blog with its owner summary populated.
// Blogs and users are loaded concurrently.
func (s *Service) ListBlogs(ctx context.Context) ([]v1.Blog, error) {
	var (
		blogs []v1.Blog
		users []v1.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blogs, err = s.blogs.ListBlogs(gctx)
		if err != nil {
			return fmt.Errorf("failed to list blogs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(gctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	owners := make(map[string]*v1.Owner, len(users))
	for _, u := range users {
		owners[u.ID] = u.Owner()
	}
	for i := range blogs {
		blogs[i].User = owners[blogs[i].UserID]
	}
	return blogs, nil
}
