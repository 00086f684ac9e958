package postgres

import (
	"fmt"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBlogRow scans a row selected with blogColumns.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanBlogRow(row scanner) (*v1.Blog, error) {
	var b v1.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.URL,
		&b.Likes,
		&b.UserID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan blog row: %w", err)
	}
	return &b, nil
}

// scanUserRow scans a row selected with userColumns.
func scanUserRow(row scanner) (*v1.User, error) {
	var u v1.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &u, nil
}
