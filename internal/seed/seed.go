package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixtures is the on-disk YAML shape of a seed file.
type Fixtures struct {
	User  FixtureUser   `yaml:"user"`
	Blogs []FixtureBlog `yaml:"blogs"`
}

type FixtureUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type FixtureBlog struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	URL    string `yaml:"url"`
	Likes  *int64 `yaml:"likes"`
}

// UserRegistrar creates users the same way POST /api/users does.
type UserRegistrar interface {
	CreateUser(ctx context.Context, req v1.CreateUserRequest) (*v1.User, error)
}

// Load reads and validates a seed file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes seed YAML and validates every entry against the API request rules.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	userReq := f.User.request()
	if err := userReq.Validate(); err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	for i, b := range f.Blogs {
		req := b.request()
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("blogs[%d]: %w", i, err)
		}
	}
	return &f, nil
}

// Apply creates the seed user and its blogs. If the user already exists the
// store is assumed to be seeded and nothing is written.
func Apply(ctx context.Context, f *Fixtures, users UserRegistrar, blogs storage.BlogStore) error {
	user, err := users.CreateUser(ctx, f.User.request())
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Seed user already exists, skipping seed", "username", f.User.Username)
			return nil
		}
		return fmt.Errorf("create seed user: %w", err)
	}

	now := time.Now().UTC()
	for i, b := range f.Blogs {
		req := b.request()
		// Distinct timestamps keep the file order as creation order.
		blog := req.NewBlog(uuid.NewString(), user.ID, now.Add(time.Duration(i)*time.Microsecond))
		if err := blogs.CreateBlog(ctx, &blog); err != nil {
			return fmt.Errorf("create seed blog %d (%q): %w", i, b.Title, err)
		}
	}

	slog.Info("Seed data loaded", "username", user.Username, "blogs", len(f.Blogs))
	return nil
}

func (u FixtureUser) request() v1.CreateUserRequest {
	return v1.CreateUserRequest{
		Username: strings.TrimSpace(u.Username),
		Name:     u.Name,
		Password: u.Password,
	}
}

func (b FixtureBlog) request() v1.CreateBlogRequest {
	return v1.CreateBlogRequest{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}
