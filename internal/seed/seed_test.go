package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloglist-lab/bloglist/internal/auth"
	"github.com/bloglist-lab/bloglist/internal/core/storage/memory"
	"github.com/bloglist-lab/bloglist/internal/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const validSeed = `
user:
  username: root
  name: Superuser
  password: salainen
blogs:
  - title: React patterns
    author: Michael Chan
    url: https://reactpatterns.com/
    likes: 7
  - title: Type wars
    author: Robert C. Martin
    url: http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(validSeed))
	require.NoError(t, err)
	require.Equal(t, "root", f.User.Username)
	require.Len(t, f.Blogs, 2)
	require.NotNil(t, f.Blogs[0].Likes)
	require.Equal(t, int64(7), *f.Blogs[0].Likes)
	require.Nil(t, f.Blogs[1].Likes)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{name: "malformed yaml", yaml: "user: [", contains: "parse yaml"},
		{name: "short password", yaml: "user:\n  username: root\n  password: pw\n", contains: "at least 3 characters"},
		{name: "blog without url", yaml: "user:\n  username: root\n  password: salainen\nblogs:\n  - title: T\n", contains: "blogs[0]: url is required"},
		{name: "negative likes", yaml: "user:\n  username: root\n  password: salainen\nblogs:\n  - title: T\n    url: https://x\n    likes: -1\n", contains: "non-negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	ctx := context.Background()
	store := memory.NewStore()
	authSvc := auth.NewService(store, "test-secret", time.Hour, bcrypt.MinCost)
	userSvc := users.NewService(store, store, authSvc)

	require.NoError(t, Apply(ctx, f, userSvc, store))

	blogs, err := store.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	require.Equal(t, "React patterns", blogs[0].Title)
	require.Equal(t, int64(0), blogs[1].Likes)

	user, err := authSvc.Authenticate(ctx, "root", "salainen")
	require.NoError(t, err)
	require.Equal(t, user.ID, blogs[0].UserID)

	// A second run finds the user and leaves the store alone.
	require.NoError(t, Apply(ctx, f, userSvc, store))
	blogs, err = store.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
