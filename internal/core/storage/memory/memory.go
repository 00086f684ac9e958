package memory

import (
	"context"
	"sync"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
)

// Store is an in-memory implementation of storage.BlogStore and storage.UserStore.
// Useful for testing and development. Records keep insertion order.
type Store struct {
	mu        sync.RWMutex
	blogs     map[string]*v1.Blog
	blogOrder []string
	users     map[string]*v1.User
	userOrder []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		blogs: make(map[string]*v1.Blog),
		users: make(map[string]*v1.User),
	}
}

func (s *Store) ListBlogs(ctx context.Context) ([]v1.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.Blog, 0, len(s.blogOrder))
	for _, id := range s.blogOrder {
		out = append(out, *s.blogs[id])
	}
	return out, nil
}

// StreamBlogs iterates over a snapshot so fn may call back into the store.
func (s *Store) StreamBlogs(ctx context.Context, fn func(v1.Blog) error) error {
	blogs, _ := s.ListBlogs(ctx)
	for _, b := range blogs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListBlogsByUser(ctx context.Context, userID string) ([]v1.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.Blog, 0)
	for _, id := range s.blogOrder {
		if b := s.blogs[id]; b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *Store) GetBlog(ctx context.Context, id string) (*v1.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, exists := s.blogs[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy to prevent external modification
	copy := *b
	return &copy, nil
}

func (s *Store) CreateBlog(ctx context.Context, blog *v1.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blogs[blog.ID]; exists {
		return storage.ErrDuplicate
	}

	// Store a copy to prevent external modification
	copy := *blog
	copy.User = nil
	s.blogs[blog.ID] = &copy
	s.blogOrder = append(s.blogOrder, blog.ID)
	return nil
}

func (s *Store) UpdateBlog(ctx context.Context, blog *v1.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, exists := s.blogs[blog.ID]
	if !exists {
		return storage.ErrNotFound
	}

	b.Title = blog.Title
	b.Author = blog.Author
	b.URL = blog.URL
	b.Likes = blog.Likes
	return nil
}

func (s *Store) DeleteBlog(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blogs[id]; !exists {
		return storage.ErrNotFound
	}

	delete(s.blogs, id)
	for i, bid := range s.blogOrder {
		if bid == id {
			s.blogOrder = append(s.blogOrder[:i], s.blogOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, user *v1.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrDuplicate
		}
	}
	if _, exists := s.users[user.ID]; exists {
		return storage.ErrDuplicate
	}

	copy := *user
	copy.Blogs = nil
	s.users[user.ID] = &copy
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*v1.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[id]
	if !exists {
		return nil, storage.ErrNotFound
	}
	copy := *u
	return &copy, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*v1.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]v1.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, *s.users[id])
	}
	return out, nil
}

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
