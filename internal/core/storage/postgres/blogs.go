package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
)

// ListBlogs returns every blog ordered by created_at ASC.
func (a *Adapter) ListBlogs(ctx context.Context) ([]v1.Blog, error) {
	blogs := make([]v1.Blog, 0)
	err := a.StreamBlogs(ctx, func(b v1.Blog) error {
		blogs = append(blogs, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// StreamBlogs scans the blogs table row by row, handing each blog to fn.
// Used by the stats endpoints so aggregation runs over a cursor.
func (a *Adapter) StreamBlogs(ctx context.Context, fn func(v1.Blog) error) error {
	rows, err := a.stmtListBlogs.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		blog, err := scanBlogRow(rows)
		if err != nil {
			return err
		}
		if err := fn(*blog); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating blogs: %w", err)
	}
	return nil
}

// ListBlogsByUser returns the blogs owned by userID ordered by created_at ASC.
func (a *Adapter) ListBlogsByUser(ctx context.Context, userID string) ([]v1.Blog, error) {
	rows, err := a.stmtListBlogsByUser.QueryContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs by user: %w", err)
	}
	defer rows.Close()

	blogs := make([]v1.Blog, 0)
	for rows.Next() {
		blog, scanErr := scanBlogRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs by user: %w", err)
	}
	return blogs, nil
}

// GetBlog returns storage.ErrNotFound when no blog has the given id.
func (a *Adapter) GetBlog(ctx context.Context, id string) (*v1.Blog, error) {
	blog, err := scanBlogRow(a.stmtGetBlog.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// CreateBlog inserts a blog. ID, UserID and CreatedAt must be set by the caller.
func (a *Adapter) CreateBlog(ctx context.Context, blog *v1.Blog) error {
	_, err := a.stmtInsertBlog.ExecContext(ctx,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	slog.Debug("[Postgres] Saved blog", "blog_id", blog.ID, "user_id", blog.UserID)
	return nil
}

// UpdateBlog returns storage.ErrNotFound when no row was updated.
func (a *Adapter) UpdateBlog(ctx context.Context, blog *v1.Blog) error {
	res, err := a.stmtUpdateBlog.ExecContext(ctx,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	return requireAffected(res)
}

// DeleteBlog returns storage.ErrNotFound when no row was deleted.
func (a *Adapter) DeleteBlog(ctx context.Context, id string) error {
	res, err := a.stmtDeleteBlog.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
