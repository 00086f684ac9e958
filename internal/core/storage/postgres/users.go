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

// CreateUser inserts a user.
// Returns storage.ErrDuplicate if the username is already taken.
func (a *Adapter) CreateUser(ctx context.Context, user *v1.User) error {
	var id string
	err := a.stmtInsertUser.QueryRowContext(ctx,
		user.ID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&id)

	if err == sql.ErrNoRows {
		// ON CONFLICT DO NOTHING - username already exists
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	slog.Debug("[Postgres] Saved user", "user_id", id, "username", user.Username)
	return nil
}

// GetUser returns storage.ErrNotFound when no user has the given id.
func (a *Adapter) GetUser(ctx context.Context, id string) (*v1.User, error) {
	return a.getUser(a.stmtGetUser.QueryRowContext(ctx, id))
}

// GetUserByUsername returns storage.ErrNotFound when the username is unknown.
func (a *Adapter) GetUserByUsername(ctx context.Context, username string) (*v1.User, error) {
	return a.getUser(a.stmtGetUserByUsername.QueryRowContext(ctx, username))
}

func (a *Adapter) getUser(row *sql.Row) (*v1.User, error) {
	user, err := scanUserRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns every user ordered by created_at ASC. Blogs are not populated.
func (a *Adapter) ListUsers(ctx context.Context) ([]v1.User, error) {
	rows, err := a.stmtListUsers.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]v1.User, 0)
	for rows.Next() {
		user, scanErr := scanUserRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
