package postgres

// SQL queries for blog and user storage. Every query is prepared once by Adapter.Prepare.

const (
	blogColumns = `id, title, author, url, likes, user_id, created_at`
	userColumns = `id, username, name, password_hash, created_at`

	// queryListBlogs returns every blog in creation order.
	// id breaks ties between rows created in the same instant so order is stable.
	queryListBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at ASC, id ASC
	`

	queryListBlogsByUser = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	queryGetBlog = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1
	`

	queryInsertBlog = `
		INSERT INTO blogs (id, title, author, url, likes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// queryUpdateBlog never touches user_id: ownership is fixed at creation.
	queryUpdateBlog = `
		UPDATE blogs
		SET title = $2, author = $3, url = $4, likes = $5
		WHERE id = $1
	`

	queryDeleteBlog = `DELETE FROM blogs WHERE id = $1`

	// queryInsertUser enforces unique usernames.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	queryInsertUser = `
		INSERT INTO users (id, username, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`

	queryGetUser = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryGetUserByUsername = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	queryListUsers = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at ASC, id ASC
	`
)
