package users

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

// PasswordHasher turns a plain password into the stored hash.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Service implements user registration and listing.
type Service struct {
	users  storage.UserStore
	blogs  storage.BlogStore
	hasher PasswordHasher
	nowFn  func() time.Time
	newID  func() string
}

func NewService(users storage.UserStore, blogs storage.BlogStore, hasher PasswordHasher) *Service {
	if users == nil {
		panic("users: user store must not be nil")
	}
	if blogs == nil {
		panic("users: blog store must not be nil")
	}
	if hasher == nil {
		panic("users: password hasher must not be nil")
	}
	return &Service{
		users:  users,
		blogs:  blogs,
		hasher: hasher,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		newID: func() string {
			return uuid.NewString()
		},
	}
}

// RegisterRoutes registers the user routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/users", s.CreateHandler)
	r.GET("/api/users", s.ListHandler)
}

// CreateUser validates req, hashes the password and stores the user.
// Returns storage.ErrDuplicate when the username is taken.
func (s *Service) CreateUser(ctx context.Context, req v1.CreateUserRequest) (*v1.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &v1.User{
		ID:           s.newID(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Blogs:        []v1.Blog{},
		CreatedAt:    s.nowFn(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", req.Username, err)
	}
	return user, nil
}

// ListUsers returns every user with their blogs populated.
// Users and blogs are loaded concurrently.
func (s *Service) ListUsers(ctx context.Context) ([]v1.User, error) {
	var (
		users []v1.User
		blogs []v1.Blog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(gctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		blogs, err = s.blogs.ListBlogs(gctx)
		if err != nil {
			return fmt.Errorf("failed to list blogs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byUser := make(map[string][]v1.Blog, len(users))
	for _, b := range blogs {
		byUser[b.UserID] = append(byUser[b.UserID], b)
	}
	for i := range users {
		users[i].Blogs = byUser[users[i].ID]
		if users[i].Blogs == nil {
			users[i].Blogs = []v1.Blog{}
		}
	}
	return users, nil
}
